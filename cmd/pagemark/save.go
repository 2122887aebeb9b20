package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/save"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	return saveURLs(deps, c.URLs, c.SaveFlags)
}

// saveURLs runs the batch save pipeline over urls and prints progress.
// Shared by the save and feed commands.
func saveURLs(deps *Dependencies, urls []string, flags SaveFlags) error {
	opts := save.Options{
		NoSummary: flags.NoSummary,
		DryRun:    flags.DryRun,
	}

	if flags.Collection != "" && !flags.DryRun {
		id, err := resolveCollection(deps, flags.Collection)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
			return err
		}
		opts.CollectionID = id
	}

	// Dry run: run the pipeline per URL and print what would be stored
	if flags.DryRun {
		for _, pageURL := range urls {
			page, err := deps.Saver.SavePage(deps.Ctx, pageURL, opts)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", pageURL, pagemark.ErrorMessage(err))
				return err
			}
			printExtraction(deps.Stdout, page)
		}
		return nil
	}

	progress := func(event save.ProgressEvent) {
		switch event.Type {
		case save.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Saving %d pages\n", event.Total)
		case save.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  saved %s\n", save.TruncateURL(event.URL, 70))
		case save.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", save.TruncateURL(event.URL, 70), event.Error)
		case save.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Saver.SaveAll(deps.Ctx, urls, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s, %s)\n",
		result.Saved, save.FormatBytes(result.Bytes), save.FormatTokens(result.Tokens))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d pages failed\n", result.Failed)
	}

	return nil
}

// resolveCollection returns the ID of the named collection, creating the
// collection if it does not exist yet.
func resolveCollection(deps *Dependencies, name string) (string, error) {
	collection, err := deps.Collections.FindCollectionByName(deps.Ctx, name)
	if err == nil {
		return collection.ID, nil
	}
	if pagemark.ErrorCode(err) != pagemark.ENOTFOUND {
		return "", err
	}

	collection = &pagemark.Collection{Name: name}
	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		return "", err
	}
	return collection.ID, nil
}

// printExtraction shows what a save would store without storing it.
func printExtraction(w io.Writer, page *pagemark.SavedPage) {
	fmt.Fprintln(w, page.URL)
	fmt.Fprintf(w, "  title:    %s\n", page.Title)
	fmt.Fprintf(w, "  source:   %s\n", page.Source)
	fmt.Fprintf(w, "  quality:  %.2f\n", page.Quality)
	fmt.Fprintf(w, "  language: %s\n", page.Language)
	fmt.Fprintf(w, "  words:    %d\n", page.WordCount)
	fmt.Fprintln(w)
	fmt.Fprintln(w, page.Text)
}
