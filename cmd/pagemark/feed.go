package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/pagemark"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	// Compile filters early so pattern errors surface before any fetch
	filter, err := c.entryFilter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	entries, err := deps.Feeds.Entries(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No feed entries matched.")
		return nil
	}

	urls := make([]string, len(entries))
	for i, entry := range entries {
		urls[i] = entry.URL
	}

	return saveURLs(deps, urls, c.SaveFlags)
}

// entryFilter compiles the include/exclude patterns into an EntryFilter.
func (c *FeedCmd) entryFilter() (*pagemark.EntryFilter, error) {
	if len(c.Include) == 0 && len(c.Exclude) == 0 {
		return nil, nil
	}

	filter := &pagemark.EntryFilter{}
	for _, pattern := range c.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, pagemark.Errorf(pagemark.EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range c.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, pagemark.Errorf(pagemark.EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
