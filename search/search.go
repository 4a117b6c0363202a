// Package search composes fetching and extraction into Wikipedia article
// lookups, one at a time or in concurrent batches.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/wikimd"
)

// Ensure Searcher implements wikimd.Searcher at compile time.
var _ wikimd.Searcher = (*Searcher)(nil)

// Searcher looks up articles in one Wikipedia language edition.
// The Extractor should be configured for the same language.
// Searcher holds no per-call state and is safe for concurrent use.
type Searcher struct {
	Fetcher   wikimd.Fetcher
	Extractor wikimd.Extractor

	// Language is the Wikipedia language code; empty means DefaultLanguage.
	Language string

	// Now returns the fetch timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Search fetches the article for text and converts it to Markdown.
// Fetch and extraction errors are returned unchanged.
func (s *Searcher) Search(ctx context.Context, text string) (*wikimd.Article, error) {
	if strings.TrimSpace(text) == "" {
		return nil, wikimd.Errorf(wikimd.EINVALID, "search text required")
	}

	lang := s.Language
	if lang == "" {
		lang = wikimd.DefaultLanguage
	}
	if err := wikimd.ValidateLanguage(lang); err != nil {
		return nil, err
	}

	title := wikimd.EncodeTitle(text)
	url := wikimd.ArticleURL(lang, title)

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	markdown, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	return &wikimd.Article{
		Query:     text,
		Language:  lang,
		Title:     title,
		URL:       url,
		Markdown:  markdown,
		FetchedAt: now().UTC(),
	}, nil
}
