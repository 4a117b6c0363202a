package search

import (
	"context"
	"sync"

	"github.com/fwojciec/wikimd"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of searches a Batch runs at once.
const DefaultConcurrency = 3

// Outcome is the result of one query in a batch.
// Exactly one of Article and Err is set.
type Outcome struct {
	Query   string
	Article *wikimd.Article
	Err     error
}

// Progress reports a finished query.
type Progress struct {
	Query     string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as queries finish. Calls are serialized.
type ProgressFunc func(Progress)

// Batch runs many searches concurrently. A failed query never cancels
// the others.
type Batch struct {
	Searcher    wikimd.Searcher
	Concurrency int
}

// SearchAll searches every query and returns outcomes in input order.
func (b *Batch) SearchAll(ctx context.Context, queries []string, progress ProgressFunc) []Outcome {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(queries))
	var (
		mu        sync.Mutex
		completed int
	)

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, query := range queries {
		g.Go(func() error {
			outcome := Outcome{Query: query}
			if err := ctx.Err(); err != nil {
				outcome.Err = err
			} else {
				outcome.Article, outcome.Err = b.Searcher.Search(ctx, query)
			}
			outcomes[i] = outcome

			mu.Lock()
			defer mu.Unlock()
			completed++
			if progress != nil {
				progress(Progress{
					Query:     query,
					Completed: completed,
					Total:     len(queries),
					Err:       outcome.Err,
				})
			}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
