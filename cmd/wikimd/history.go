package main

import (
	"fmt"

	"github.com/fwojciec/wikimd"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := wikimd.ArticleFilter{Limit: c.Limit}
	if c.Lang != "" {
		filter.Language = &c.Lang
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikimd.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved articles. Use 'wikimd get --save' to save one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ID, a.FetchedAt.Format("2006-01-02 15:04"), a.Language, a.Title)
	}

	return nil
}
