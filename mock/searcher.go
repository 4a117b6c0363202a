package mock

import (
	"context"

	"github.com/fwojciec/wikimd"
)

var _ wikimd.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of wikimd.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, text string) (*wikimd.Article, error)
}

func (s *Searcher) Search(ctx context.Context, text string) (*wikimd.Article, error) {
	return s.SearchFn(ctx, text)
}
