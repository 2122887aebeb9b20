package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	opts := pagemark.SummaryOptions{
		MaxLength: c.MaxLength,
		Language:  c.Lang,
		Style:     pagemark.SummaryStyle(c.Style),
	}

	// Prefer the stored markdown so the heading structure reaches the
	// prompt; pages without markdown fall back to the plain text.
	input := page.Content
	if input == "" {
		input = page.Text
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, input, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if _, err := deps.Pages.UpdatePage(deps.Ctx, page.ID, pagemark.PageUpdate{Summary: &summary}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
