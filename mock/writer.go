package mock

import (
	"context"

	"github.com/fwojciec/lnsplit"
)

var _ lnsplit.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of lnsplit.RecordWriter.
type RecordWriter struct {
	WriteAllFn func(ctx context.Context, schema lnsplit.Schema, records []*lnsplit.Record) error
}

func (w *RecordWriter) WriteAll(ctx context.Context, schema lnsplit.Schema, records []*lnsplit.Record) error {
	return w.WriteAllFn(ctx, schema, records)
}
