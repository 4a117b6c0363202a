// Package fs provides file-based storage for converted articles.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikimd"
)

// ArticlePath returns the relative file path of an article:
// the language code as directory and the encoded title as file name.
// Example: fa/نظریه_گراف.md
func ArticlePath(article *wikimd.Article) (string, error) {
	if err := wikimd.ValidateLanguage(article.Language); err != nil {
		return "", err
	}
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(article.Title)
	if name == "" || name == "." || name == ".." {
		return "", wikimd.Errorf(wikimd.EINVALID, "article title %q is not a valid file name", article.Title)
	}
	return filepath.Join(article.Language, name+".md"), nil
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(article *wikimd.Article) string {
	title := article.Query
	if title == "" {
		title = strings.ReplaceAll(article.Title, "_", " ")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\nlanguage: ")
	b.WriteString(article.Language)
	b.WriteString("\nfetched: ")
	b.WriteString(article.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n")
	if !strings.HasPrefix(article.Markdown, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(article.Markdown)
	return b.String()
}

// Ensure Writer implements wikimd.ArticleWriter at compile time.
var _ wikimd.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateArticle writes an article to disk, replacing any previous copy.
func (w *Writer) CreateArticle(ctx context.Context, article *wikimd.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	relPath, err := ArticlePath(article)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatArticle(article)), 0644)
}
