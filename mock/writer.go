package mock

import (
	"context"

	"github.com/fwojciec/wikimd"
)

var _ wikimd.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of wikimd.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *wikimd.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *wikimd.Article) error {
	return w.CreateArticleFn(ctx, article)
}
