package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/lnsplit"
	"github.com/fwojciec/lnsplit/extract"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	corpora, err := deps.Corpora.FindCorpora(deps.Ctx, lnsplit.CorpusFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	if len(corpora) == 0 {
		fmt.Fprintln(deps.Stdout, "No corpora found. Use 'lnsplit import' to create one.")
		return nil
	}

	rows := make([][]string, 0, len(corpora))
	for _, corpus := range corpora {
		rows = append(rows, []string{
			corpus.Name,
			strconv.Itoa(corpus.DocumentCount),
			corpus.CreatedAt.Format("2006-01-02"),
			corpus.SourcePath,
		})
	}

	fmt.Fprint(deps.Stdout, extract.FormatTable([]string{"NAME", "DOCS", "CREATED", "SOURCE"}, rows))
	return nil
}
