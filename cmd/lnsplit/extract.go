package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/lnsplit"
	lncsv "github.com/fwojciec/lnsplit/csv"
	"github.com/fwojciec/lnsplit/extract"
	lnfs "github.com/fwojciec/lnsplit/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	paths, err := expandGlobs(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	if c.Out != "" && len(paths) > 1 {
		err := lnsplit.Errorf(lnsplit.EINVALID, "--out requires a single input file, got %d", len(paths))
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	cfg, err := c.ResolveConfig()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
		return err
	}

	for _, path := range paths {
		corpus, err := lnfs.ReadCorpus(path, lnfs.Encoding(c.Encoding))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}

		pipeline := &extract.Pipeline{
			Config:      cfg,
			Reporter:    deps.Reporter,
			Concurrency: c.Concurrency,
		}

		result, err := pipeline.Run(deps.Ctx, corpus)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}

		if c.Preview {
			fmt.Fprintf(deps.Stdout, "%s: %d documents\n", path, len(result.Records))
			for _, attr := range result.Schema.Attributes() {
				fmt.Fprintf(deps.Stdout, "  %s\n", attr)
			}
			continue
		}

		outPath := c.Out
		if outPath == "" {
			outPath = lncsv.OutputPath(path)
		}

		if err := lncsv.WriteFile(outPath, result.Schema, result.Records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lnsplit.ErrorMessage(err))
			return err
		}

		size := 0
		if info, err := os.Stat(outPath); err == nil {
			size = int(info.Size())
		}
		fmt.Fprintf(deps.Stdout, "%s: wrote %d records to %s (%s)\n",
			path, len(result.Records), outPath, extract.FormatBytes(size))
		if result.Anomalies > 0 {
			fmt.Fprintf(deps.Stdout, "  %d records flagged as anomalous\n", result.Anomalies)
		}
	}

	return nil
}

// expandGlobs resolves each argument as a glob pattern. Arguments that
// match nothing pass through unchanged and fail at read time.
func expandGlobs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, lnsplit.Errorf(lnsplit.EINVALID, "invalid glob pattern %q", arg)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
