package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikimd"
	"github.com/fwojciec/wikimd/fs"
	"github.com/fwojciec/wikimd/goquery"
	"github.com/fwojciec/wikimd/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikimd/http"
	"github.com/fwojciec/wikimd/search"
	wikislog "github.com/fwojciec/wikimd/slog"
	"github.com/fwojciec/wikimd/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Articles is the saved-article history.
	Articles wikimd.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikimd"),
		kong.Description("Fetch Wikipedia articles as Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikimd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// A plain "get" never touches the history database.
	if cmd != "get" || cli.Get.Save {
		if err := m.openDB(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WIKIMD_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Articles = sqlite.NewArticleService(m.DB)
		deps.Articles = m.Articles
	}

	if cmd == "get" {
		fetcher := newFetcher(&cli.Get, stderr)
		defer fetcher.Close()

		deps.Searcher = newSearcher(&cli.Get, fetcher, stderr)
		if cli.Get.Out != "" {
			deps.Writer = fs.NewWriter(cli.Get.Out)
		}
	}

	return kongCtx.Run(deps)
}

// openDB creates the database directory if needed and opens the database.
func (m *Main) openDB() error {
	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
		return err
	}
	m.DB = sqlite.NewDB(m.DBPath)
	return m.DB.Open()
}

// newLogger returns a text logger on stderr in verbose mode and a
// discarding logger otherwise.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(c *GetCmd, stderr io.Writer) wikimd.Fetcher {
	fetcher := wikihttp.NewFetcher(
		wikihttp.WithTimeout(c.Timeout),
		wikihttp.WithLimiter(search.NewDomainLimiter(c.Interval)),
	)
	return wikislog.NewLoggingFetcher(fetcher, newLogger(c.Verbose, stderr))
}

func newSearcher(c *GetCmd, fetcher wikimd.Fetcher, stderr io.Writer) wikimd.Searcher {
	var opts []goquery.Option
	if c.Engine == engineHTMLToMarkdown {
		opts = append(opts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}
	if c.DedupeMath {
		opts = append(opts, goquery.WithMathTextDeduplication())
	}

	searcher := &search.Searcher{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(c.Lang, opts...),
		Language:  c.Lang,
	}
	return wikislog.NewLoggingSearcher(searcher, newLogger(c.Verbose, stderr))
}

func defaultDBPath() string {
	if path := os.Getenv("WIKIMD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikimd.db"
	}
	return filepath.Join(home, ".wikimd", "wikimd.db")
}
