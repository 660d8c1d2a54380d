package main

import (
	"fmt"

	"github.com/fwojciec/lnsplit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return lnsplit.Errorf(lnsplit.EINVALID, "use --force to confirm deletion")
	}

	corpus, err := findCorpusByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Corpora.DeleteCorpus(deps.Ctx, corpus.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted corpus %q\n", corpus.Name)
	return nil
}
