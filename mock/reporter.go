package mock

import "github.com/fwojciec/lnsplit"

var _ lnsplit.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of lnsplit.Reporter. Unset functions
// drop their events, mirroring the optional nature of diagnostics.
type Reporter struct {
	SchemaDiscoveredFn func(schema lnsplit.Schema)
	NoDocumentsFn      func()
	DateParseFailureFn func(position int, raw string)
	DocumentAnomalyFn  func(position int, record *lnsplit.Record)
}

func (r *Reporter) SchemaDiscovered(schema lnsplit.Schema) {
	if r.SchemaDiscoveredFn != nil {
		r.SchemaDiscoveredFn(schema)
	}
}

func (r *Reporter) NoDocuments() {
	if r.NoDocumentsFn != nil {
		r.NoDocumentsFn()
	}
}

func (r *Reporter) DateParseFailure(position int, raw string) {
	if r.DateParseFailureFn != nil {
		r.DateParseFailureFn(position, raw)
	}
}

func (r *Reporter) DocumentAnomaly(position int, record *lnsplit.Record) {
	if r.DocumentAnomalyFn != nil {
		r.DocumentAnomalyFn(position, record)
	}
}
