package mock

import (
	"context"

	"github.com/fwojciec/lnsplit"
)

var _ lnsplit.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of lnsplit.RecordService.
type RecordService struct {
	CreateRecordsFn         func(ctx context.Context, corpusID string, schema lnsplit.Schema, records []*lnsplit.Record) error
	FindRecordsByCorpusFn   func(ctx context.Context, corpusID string) ([]*lnsplit.Record, error)
	DeleteRecordsByCorpusFn func(ctx context.Context, corpusID string) error
}

func (s *RecordService) CreateRecords(ctx context.Context, corpusID string, schema lnsplit.Schema, records []*lnsplit.Record) error {
	return s.CreateRecordsFn(ctx, corpusID, schema, records)
}

func (s *RecordService) FindRecordsByCorpus(ctx context.Context, corpusID string) ([]*lnsplit.Record, error) {
	return s.FindRecordsByCorpusFn(ctx, corpusID)
}

func (s *RecordService) DeleteRecordsByCorpus(ctx context.Context, corpusID string) error {
	return s.DeleteRecordsByCorpusFn(ctx, corpusID)
}
