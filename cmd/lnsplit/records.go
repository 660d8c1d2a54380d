package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/lnsplit"
	lncsv "github.com/fwojciec/lnsplit/csv"
	"github.com/fwojciec/lnsplit/extract"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	corpus, err := findCorpusByName(deps, c.Name)
	if err != nil {
		return err
	}

	records, err := deps.Records.FindRecordsByCorpus(deps.Ctx, corpus.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "Corpus %q has no records.\n", c.Name)
		return nil
	}

	if c.Full {
		schema, err := corpus.Schema()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}
		return lncsv.NewWriter(deps.Stdout).WriteAll(deps.Ctx, schema, records)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Position),
			rec.Get(lnsplit.AttrDocID),
			rec.Get(lnsplit.AttrDate),
			extract.TruncateCell(rec.Get(lnsplit.AttrTitle), 60),
		})
	}

	fmt.Fprint(deps.Stdout, extract.FormatTable([]string{"POS", "ID_DOC", "DATE", "TITLE"}, rows))
	return nil
}

// findCorpusByName resolves a corpus name for the commands that take one.
func findCorpusByName(deps *Dependencies, name string) (*lnsplit.Corpus, error) {
	corpora, err := deps.Corpora.FindCorpora(deps.Ctx, lnsplit.CorpusFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return nil, err
	}
	if len(corpora) == 0 {
		fmt.Fprintf(deps.Stderr, "error: corpus %q not found. Use 'lnsplit list' to see stored corpora.\n", name)
		return nil, lnsplit.Errorf(lnsplit.ENOTFOUND, "corpus %q not found", name)
	}
	return corpora[0], nil
}
