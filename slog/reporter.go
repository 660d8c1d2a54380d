// Package slog emits extraction diagnostics through the standard
// structured logger.
package slog

import (
	"log/slog"
	"unicode/utf8"

	"github.com/fwojciec/lnsplit"
)

// Ensure Reporter implements lnsplit.Reporter.
var _ lnsplit.Reporter = (*Reporter)(nil)

// Reporter logs extraction diagnostics. Schema discovery logs at info;
// missing documents, anomalies, and date parse failures log at warn.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter creates a Reporter on top of logger.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// SchemaDiscovered logs the final attribute list for the run.
func (r *Reporter) SchemaDiscovered(schema lnsplit.Schema) {
	r.logger.Info("schema discovered",
		"attributes", schema.Attributes(),
		"discovered_tags", schema.Tags(),
	)
}

// NoDocuments logs that the corpus had no recognizable boundaries.
func (r *Reporter) NoDocuments() {
	r.logger.Warn("no document boundaries found, nothing to extract")
}

// DateParseFailure logs a date that matched no supported form.
func (r *Reporter) DateParseFailure(position int, raw string) {
	r.logger.Warn("date could not be parsed",
		"position", position,
		"raw", raw,
	)
}

// DocumentAnomaly logs the identifying fields of a suspect record.
func (r *Reporter) DocumentAnomaly(position int, record *lnsplit.Record) {
	r.logger.Warn("document extraction anomaly",
		"position", position,
		"id_doc", record.Get(lnsplit.AttrDocID),
		"title", record.Get(lnsplit.AttrTitle),
		"date", record.Get(lnsplit.AttrDate),
		"text_runes", utf8.RuneCountInString(record.Get(lnsplit.AttrText)),
	)
}
