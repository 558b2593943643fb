package mock

import (
	"context"

	"github.com/fwojciec/torrench"
)

var _ torrench.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of torrench.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q torrench.SearchQuery) (*torrench.ResultSet, error)
}

func (s *Searcher) Search(ctx context.Context, q torrench.SearchQuery) (*torrench.ResultSet, error) {
	return s.SearchFn(ctx, q)
}
