package wikimd

import (
	"context"
	"time"
)

// Article represents a fetched Wikipedia article converted to Markdown.
type Article struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Markdown    string    `json:"markdown"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Language == "" {
		return Errorf(EINVALID, "article language required")
	}
	if err := ValidateLanguage(a.Language); err != nil {
		return err
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// Searcher looks up a Wikipedia article by free-form query text.
type Searcher interface {
	// Search fetches the article for text and returns it as Markdown.
	// Fetch failures are returned as *FetchError; a page without a main
	// content region returns ENOTFOUND. No partial article accompanies
	// an error.
	Search(ctx context.Context, text string) (*Article, error)
}

// ArticleWriter writes articles to storage.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing saved articles.
type ArticleService interface {
	// CreateArticle stores a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID       *string `json:"id"`
	Language *string `json:"language"`
	Title    *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Result is the wire envelope for a search: either Data holds the
// Markdown, or Error (and optionally Details) describe the failure.
type Result struct {
	Data    *string `json:"data,omitempty"`
	Error   string  `json:"Error,omitempty"`
	Details string  `json:"Details,omitempty"`
}

// NewResult builds the envelope for a search outcome.
func NewResult(article *Article, err error) Result {
	if err != nil {
		return Result{
			Error:   ErrorMessage(err),
			Details: ErrorDetails(err),
		}
	}
	markdown := article.Markdown
	return Result{Data: &markdown}
}
