package main

import (
	"fmt"

	"github.com/fwojciec/wikimd"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if wikimd.ErrorCode(err) == wikimd.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'wikimd history' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikimd.ErrorMessage(err))
		}
		return err
	}

	if c.Outline {
		fmt.Fprint(deps.Stdout, wikimd.FormatOutline(wikimd.Outline(article.Markdown)))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\nSource: %s\n", article.Title, article.URL)
	fmt.Fprint(deps.Stdout, article.Markdown)
	return nil
}
