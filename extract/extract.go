// Package extract provides the segmentation and field-extraction engine
// for LexisNexis plain-text exports. It coordinates boundary splitting,
// corpus-adaptive tag discovery, positional field scanning, and date
// normalization.
package extract

import (
	"context"

	"github.com/fwojciec/lnsplit"
	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates one corpus run: split the corpus, discover the
// schema, then extract every document. Tag discovery always completes
// before the first extraction starts because every record depends on the
// final schema.
type Pipeline struct {
	// Config holds the extraction settings. Start from
	// lnsplit.DefaultConfig; the zero value rejects nothing and reports
	// every record as anomalous.
	Config lnsplit.Config

	// Reporter receives diagnostic events. May be nil to drop them.
	Reporter lnsplit.Reporter

	// Concurrency bounds the number of documents extracted in parallel.
	// Values below 1 mean sequential extraction.
	Concurrency int
}

// Result holds the outcome of a corpus run. Records are in corpus order,
// exactly one per document, regardless of extraction concurrency.
type Result struct {
	Schema  lnsplit.Schema
	Records []*lnsplit.Record

	// Anomalies counts records flagged by the anomaly check.
	Anomalies int
}

// extractResult carries one worker's output back to the collector.
type extractResult struct {
	record       *lnsplit.Record
	dateFailures []string
}

// Run processes a whole corpus. Malformed documents never fail the run
// because extraction degrades field by field, so the only errors are an
// invalid configuration or a canceled context.
func (p *Pipeline) Run(ctx context.Context, corpus string) (*Result, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}

	documents := SplitDocuments(corpus)
	if len(documents) == 0 {
		if p.Reporter != nil {
			p.Reporter.NoDocuments()
		}
		return &Result{Schema: lnsplit.NewSchema(nil)}, nil
	}

	tags := DiscoverTags(corpus, len(documents), p.Config)
	schema := lnsplit.NewSchema(tags)
	if p.Reporter != nil {
		p.Reporter.SchemaDiscovered(schema)
	}

	concurrency := p.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Workers write to disjoint positions, which keeps records in corpus
	// order without a collector goroutine.
	results := make([]extractResult, len(documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for position, document := range documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			record, dateFailures := ExtractRecord(document, schema, p.Config, position)
			results[position] = extractResult{record: record, dateFailures: dateFailures}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{
		Schema:  schema,
		Records: make([]*lnsplit.Record, 0, len(documents)),
	}
	for position, res := range results {
		out.Records = append(out.Records, res.record)

		for _, raw := range res.dateFailures {
			if p.Reporter != nil {
				p.Reporter.DateParseFailure(position, raw)
			}
		}
		if res.record.Anomalous(p.Config.MinTextLength) {
			out.Anomalies++
			if p.Reporter != nil {
				p.Reporter.DocumentAnomaly(position, res.record)
			}
		}
	}

	return out, nil
}
