package main

import (
	"fmt"

	"github.com/fwojciec/wikimd"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if wikimd.ErrorCode(err) == wikimd.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'wikimd history' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikimd.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
