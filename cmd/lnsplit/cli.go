package main

import (
	"context"
	"io"

	"github.com/fwojciec/lnsplit"
	"github.com/fwojciec/lnsplit/sqlite"
	lnyaml "github.com/fwojciec/lnsplit/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Corpora  lnsplit.CorpusService
	Records  lnsplit.RecordService
	Reporter lnsplit.Reporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Split export files into CSV files"`
	Import  ImportCmd  `cmd:"" help:"Split an export file and store it as a corpus"`
	List    ListCmd    `cmd:"" help:"List stored corpora"`
	Records RecordsCmd `cmd:"" help:"Show records of a stored corpus"`
	Export  ExportCmd  `cmd:"" help:"Write a stored corpus out as CSV"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a corpus and its records"`
}

// PipelineFlags are shared by the commands that run the extraction
// pipeline. File settings load first; explicit flags win over the file.
type PipelineFlags struct {
	Config          string   `help:"YAML config file" type:"path"`
	Threshold       *float64 `help:"Tag frequency threshold (0 <= t < 1)"`
	Deny            []string `help:"Exclude a tag from discovery (repeatable)"`
	MinText         *int     `name:"min-text" help:"Anomaly threshold for TEXT length in runes"`
	KeepBoilerplate bool     `help:"Keep copyright boilerplate paragraphs in TEXT"`
	Encoding        string   `default:"utf-8" enum:"utf-8,latin-1,windows-1252" help:"Input file encoding"`
	Concurrency     int      `short:"c" default:"8" help:"Concurrent document extraction limit"`
	Quiet           bool     `short:"q" help:"Suppress diagnostics"`
}

// ResolveConfig layers the YAML file and flag overrides over the defaults.
func (f *PipelineFlags) ResolveConfig() (lnsplit.Config, error) {
	cfg := lnsplit.DefaultConfig()

	if f.Config != "" {
		var err error
		if cfg, err = lnyaml.LoadConfig(f.Config); err != nil {
			return lnsplit.Config{}, err
		}
	}

	if f.Threshold != nil {
		cfg.TagThreshold = *f.Threshold
	}
	if len(f.Deny) > 0 {
		cfg.TagDenylist = f.Deny
	}
	if f.MinText != nil {
		cfg.MinTextLength = *f.MinText
	}
	if f.KeepBoilerplate {
		cfg.DropBoilerplate = false
	}

	return cfg, cfg.Validate()
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths   []string `arg:"" help:"Export files to split (globs allowed)"`
	Out     string   `short:"o" help:"Output CSV path (single input only)"`
	Preview bool     `short:"p" help:"Show discovered attributes without writing"`

	PipelineFlags `embed:""`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name  string `arg:"" help:"Corpus name"`
	Path  string `arg:"" help:"Export file to split"`
	Force bool   `short:"f" help:"Replace an existing corpus of the same name"`

	PipelineFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Name string `arg:"" help:"Corpus name"`
	Full bool   `help:"Print every field as CSV instead of the summary table"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Corpus name"`
	Out  string `short:"o" help:"Output CSV path (default: <name>.csv)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Corpus name"`
	Force bool   `help:"Confirm deletion"`
}
