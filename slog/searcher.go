package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikimd"
)

// Ensure LoggingSearcher implements wikimd.Searcher.
var _ wikimd.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging of every lookup.
type LoggingSearcher struct {
	next   wikimd.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next wikimd.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, text string) (article *wikimd.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{"query", text, "duration", time.Since(begin)}
		if article != nil {
			attrs = append(attrs, "url", article.URL, "bytes", len(article.Markdown))
		}
		if err != nil {
			attrs = append(attrs, "code", wikimd.ErrorCode(err), "err", err)
			s.logger.Warn("search", attrs...)
			return
		}
		s.logger.Info("search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, text)
}
