package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagemark.PageFilter{Limit: c.Limit}

	if c.Collection != "" {
		collection, err := deps.Collections.FindCollectionByName(deps.Ctx, c.Collection)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
			return err
		}
		filter.CollectionID = &collection.ID
	}
	if c.Language != "" {
		filter.Language = &c.Language
	}
	if c.MinQuality > 0 {
		filter.MinQuality = &c.MinQuality
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'pagemark save' to save one.")
		return nil
	}

	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = p.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %.2f  %s  %s\n", p.ID, p.Quality, title, p.URL)
	}

	return nil
}
