package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := pagemark.PageFilter{}
	if c.Collection != "" {
		collection, err := deps.Collections.FindCollectionByName(deps.Ctx, c.Collection)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
			return err
		}
		filter.CollectionID = &collection.ID
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to export.")
		return nil
	}

	// Stage everything, then swap the export into place in one step
	exporter := deps.NewExporter(c.Dir)
	for _, page := range pages {
		if err := exporter.Save(deps.Ctx, page); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", page.URL, pagemark.ErrorMessage(err))
			return err
		}
	}
	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(pages), c.Dir)
	return nil
}
