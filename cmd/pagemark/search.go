package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := deps.Search.SearchPages(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, match := range matches {
		title := match.Page.Title
		if title == "" {
			title = match.Page.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", match.Page.ID, title)
		if match.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", match.Snippet)
		}
	}

	return nil
}
