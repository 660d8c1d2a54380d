package main

import (
	"fmt"

	"github.com/fwojciec/lnsplit"
	"github.com/fwojciec/lnsplit/extract"
	lnfs "github.com/fwojciec/lnsplit/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	cfg, err := c.ResolveConfig()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	// Resolve name conflicts before the pipeline does any work.
	existing, err := deps.Corpora.FindCorpora(deps.Ctx, lnsplit.CorpusFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		if !c.Force {
			err := lnsplit.Errorf(lnsplit.ECONFLICT, "corpus %q already exists, use --force to replace it", c.Name)
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}
		if err := deps.Corpora.DeleteCorpus(deps.Ctx, existing[0].ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}
	}

	corpusText, err := lnfs.ReadCorpus(c.Path, lnfs.Encoding(c.Encoding))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	pipeline := &extract.Pipeline{
		Config:      cfg,
		Reporter:    deps.Reporter,
		Concurrency: c.Concurrency,
	}

	result, err := pipeline.Run(deps.Ctx, corpusText)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	corpus := &lnsplit.Corpus{
		Name:          c.Name,
		SourcePath:    c.Path,
		ContentHash:   extract.ComputeHash(corpusText),
		Attributes:    result.Schema.Attributes(),
		DocumentCount: len(result.Records),
	}

	if err := deps.Corpora.CreateCorpus(deps.Ctx, corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	if err := deps.Records.CreateRecords(deps.Ctx, corpus.ID, result.Schema, result.Records); err != nil {
		// Don't leave a corpus row without its records behind.
		_ = deps.Corpora.DeleteCorpus(deps.Ctx, corpus.ID)
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported corpus %q (%s)\n", c.Name, corpus.ID)
	fmt.Fprintf(deps.Stdout, "  %d records, %d anomalous\n", len(result.Records), result.Anomalies)
	return nil
}
