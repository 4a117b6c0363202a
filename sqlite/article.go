package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikimd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wikimd.ArticleService = (*ArticleService)(nil)

const articleColumns = "id, query, language, title, url, markdown, content_hash, fetched_at"

// ArticleService implements wikimd.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent returns the xxHash of content as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreateArticle stores a new article. It assigns the ID and content hash,
// and stamps FetchedAt when the caller left it empty.
func (s *ArticleService) CreateArticle(ctx context.Context, article *wikimd.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ContentHash = hashContent(article.Markdown)
	if article.FetchedAt.IsZero() {
		article.FetchedAt = time.Now()
	}
	article.FetchedAt = article.FetchedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Query, article.Language, article.Title, article.URL,
		article.Markdown, article.ContentHash, article.FetchedAt.Format(timeLayout))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*wikimd.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)

	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wikimd.Errorf(wikimd.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter wikimd.ArticleFilter) ([]*wikimd.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*wikimd.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wikimd.Errorf(wikimd.ENOTFOUND, "article not found")
	}

	return nil
}

func scanArticle(s scanner) (*wikimd.Article, error) {
	var article wikimd.Article
	var fetchedAt string

	if err := s.Scan(&article.ID, &article.Query, &article.Language, &article.Title, &article.URL,
		&article.Markdown, &article.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	t, err := parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	article.FetchedAt = t

	return &article, nil
}
