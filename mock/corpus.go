package mock

import (
	"context"

	"github.com/fwojciec/lnsplit"
)

var _ lnsplit.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of lnsplit.CorpusService.
type CorpusService struct {
	CreateCorpusFn   func(ctx context.Context, corpus *lnsplit.Corpus) error
	FindCorpusByIDFn func(ctx context.Context, id string) (*lnsplit.Corpus, error)
	FindCorporaFn    func(ctx context.Context, filter lnsplit.CorpusFilter) ([]*lnsplit.Corpus, error)
	DeleteCorpusFn   func(ctx context.Context, id string) error
}

func (s *CorpusService) CreateCorpus(ctx context.Context, corpus *lnsplit.Corpus) error {
	return s.CreateCorpusFn(ctx, corpus)
}

func (s *CorpusService) FindCorpusByID(ctx context.Context, id string) (*lnsplit.Corpus, error) {
	return s.FindCorpusByIDFn(ctx, id)
}

func (s *CorpusService) FindCorpora(ctx context.Context, filter lnsplit.CorpusFilter) ([]*lnsplit.Corpus, error) {
	return s.FindCorporaFn(ctx, filter)
}

func (s *CorpusService) DeleteCorpus(ctx context.Context, id string) error {
	return s.DeleteCorpusFn(ctx, id)
}
