package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagemark.Errorf(pagemark.EINVALID, "use --force to confirm deletion")
	}

	page, err := findPage(deps, c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if err := deps.Pages.DeletePage(deps.Ctx, page.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	title := page.Title
	if title == "" {
		title = page.URL
	}
	fmt.Fprintf(deps.Stdout, "Deleted %q\n", title)
	return nil
}
