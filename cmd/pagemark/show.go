package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagemark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if len(c.Refs) > 1 {
		return c.runMulti(deps)
	}

	page, err := findPage(deps, c.Refs[0])
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	switch {
	case c.Summary:
		if page.Summary == "" {
			fmt.Fprintln(deps.Stdout, "No summary. Use 'pagemark summarize' to generate one.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, page.Summary)

	case c.Outline:
		outline := pagemark.Outline(page.Content)
		if len(outline) == 0 {
			fmt.Fprintln(deps.Stdout, "No headings found.")
			return nil
		}
		fmt.Fprintln(deps.Stdout, pagemark.FormatOutline(outline))

	case c.Text:
		fmt.Fprintln(deps.Stdout, page.Text)

	default:
		title := page.Title
		if title == "" {
			title = page.URL
		}
		fmt.Fprintf(deps.Stdout, "%s\n%s\n", title, page.URL)
		fmt.Fprintf(deps.Stdout, "saved %s  quality %.2f  %d words  source %s\n\n",
			page.SavedAt.Format("2006-01-02"), page.Quality, page.WordCount, page.Source)
		if page.Summary != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", page.Summary)
		}
		content := page.Content
		if content == "" {
			content = page.Text
		}
		fmt.Fprintln(deps.Stdout, content)
	}

	return nil
}

// runMulti prints several pages as one readable block. The single-page
// view flags do not combine with multiple pages.
func (c *ShowCmd) runMulti(deps *Dependencies) error {
	if c.Text || c.Summary || c.Outline {
		err := pagemark.Errorf(pagemark.EINVALID, "view flags apply to a single page")
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	pages := make([]*pagemark.SavedPage, 0, len(c.Refs))
	for _, ref := range c.Refs {
		page, err := findPage(deps, ref)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
			return err
		}
		pages = append(pages, page)
	}

	fmt.Fprintln(deps.Stdout, pagemark.FormatPages(pages))
	return nil
}

// findPage resolves a page by ID or, when ref looks like a URL, by URL.
func findPage(deps *Dependencies, ref string) (*pagemark.SavedPage, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return deps.Pages.FindPageByURL(deps.Ctx, ref)
	}
	return deps.Pages.FindPageByID(deps.Ctx, ref)
}
