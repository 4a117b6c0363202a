package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/wikimd"
	"github.com/fwojciec/wikimd/search"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	batch := &search.Batch{Searcher: deps.Searcher, Concurrency: c.Concurrency}

	var progress search.ProgressFunc
	if len(c.Queries) > 1 && !c.JSON {
		progress = func(p search.Progress) {
			status := "ok"
			if p.Err != nil {
				status = "failed"
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, p.Query, status)
		}
	}

	outcomes := batch.SearchAll(deps.Ctx, c.Queries, progress)

	var failed int
	var firstErr error
	var printed bool
	for _, o := range outcomes {
		if o.Err == nil {
			o.Err = c.store(deps, o.Article)
		}
		if o.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = o.Err
			}
		}

		if c.JSON {
			if err := json.NewEncoder(deps.Stdout).Encode(wikimd.NewResult(o.Article, o.Err)); err != nil {
				return err
			}
			continue
		}

		if o.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.Query, wikimd.ErrorMessage(o.Err))
			continue
		}
		if printed {
			fmt.Fprintln(deps.Stdout, "\n---")
		}
		c.print(deps, o.Article)
		printed = true
	}

	switch {
	case failed == 0:
		return nil
	case len(outcomes) == 1:
		return firstErr
	default:
		return fmt.Errorf("%d of %d queries failed", failed, len(outcomes))
	}
}

func (c *GetCmd) print(deps *Dependencies, article *wikimd.Article) {
	if c.Outline {
		fmt.Fprint(deps.Stdout, wikimd.FormatOutline(wikimd.Outline(article.Markdown)))
		return
	}
	fmt.Fprint(deps.Stdout, article.Markdown)
}

// store writes the article to the output directory and the history
// database when requested.
func (c *GetCmd) store(deps *Dependencies, article *wikimd.Article) error {
	if deps.Writer != nil {
		if err := deps.Writer.CreateArticle(deps.Ctx, article); err != nil {
			return fmt.Errorf("write article: %w", err)
		}
	}
	if c.Save {
		if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
			return fmt.Errorf("save article: %w", err)
		}
	}
	return nil
}
