package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/lnsplit"
	lncsv "github.com/fwojciec/lnsplit/csv"
	"github.com/fwojciec/lnsplit/extract"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	corpus, err := findCorpusByName(deps, c.Name)
	if err != nil {
		return err
	}

	schema, err := corpus.Schema()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	records, err := deps.Records.FindRecordsByCorpus(deps.Ctx, corpus.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	outPath := c.Out
	if outPath == "" {
		outPath = c.Name + ".csv"
	}

	if err := lncsv.WriteFile(outPath, schema, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	size := 0
	if info, err := os.Stat(outPath); err == nil {
		size = int(info.Size())
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s (%s)\n", len(records), outPath, extract.FormatBytes(size))
	return nil
}
