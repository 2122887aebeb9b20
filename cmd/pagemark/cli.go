package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/save"
	"github.com/fwojciec/pagemark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Pages       pagemark.PageService
	Search      pagemark.SearchService
	Collections pagemark.CollectionService
	Feeds       pagemark.FeedService
	Saver       *save.Saver
	Summarizer  pagemark.Summarizer

	// NewExporter builds an exporter targeting dir.
	NewExporter func(dir string) pagemark.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline operations to stderr"`

	Save        SaveCmd        `cmd:"" help:"Save one or more pages"`
	Feed        FeedCmd        `cmd:"" help:"Save pages discovered from an RSS or Atom feed"`
	List        ListCmd        `cmd:"" help:"List saved pages"`
	Show        ShowCmd        `cmd:"" help:"Show one or more saved pages"`
	Search      SearchCmd      `cmd:"" help:"Search saved pages"`
	Summarize   SummarizeCmd   `cmd:"" help:"Re-summarize a saved page"`
	Delete      DeleteCmd      `cmd:"" help:"Delete a saved page"`
	Export      ExportCmd      `cmd:"" help:"Export saved pages to markdown files"`
	Collections CollectionsCmd `cmd:"" help:"Manage collections"`
}

// SaveFlags are shared by the commands that run the save pipeline.
type SaveFlags struct {
	Collection  string  `short:"C" help:"Collection to file saved pages under (created if missing)"`
	Engine      string  `default:"native" enum:"native,readability,trafilatura" help:"Extraction engine"`
	Browser     bool    `short:"b" help:"Refetch JavaScript shells with a headless browser"`
	NoSummary   bool    `help:"Skip summary generation"`
	DryRun      bool    `help:"Run extraction and print the result without saving"`
	MaxLength   int     `help:"Cap extracted text at this many bytes"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64 `name:"rps" default:"2" help:"Per-domain request rate"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs      []string `arg:"" name:"url" help:"Page URLs to save"`
	SaveFlags `embed:""`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL       string   `arg:"" help:"Feed URL"`
	Limit     int      `short:"l" help:"Save at most this many entries"`
	Include   []string `short:"i" help:"Only save entries matching a regex (repeatable)"`
	Exclude   []string `short:"x" help:"Skip entries matching a regex (repeatable)"`
	SaveFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Collection string  `short:"C" help:"Only pages in this collection"`
	Language   string  `help:"Only pages in this language"`
	MinQuality float64 `help:"Only pages with at least this extraction quality"`
	Limit      int     `short:"l" help:"Maximum number of pages to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Refs    []string `arg:"" name:"id" help:"Page IDs or URLs"`
	Text    bool     `help:"Print the extracted text instead of the markdown content"`
	Summary bool     `help:"Print only the summary"`
	Outline bool     `help:"Print the heading outline of the content"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to search for"`
	Limit int    `short:"l" default:"10" help:"Maximum number of results"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Ref       string `arg:"" name:"id" help:"Page ID or URL"`
	Style     string `default:"brief" enum:"brief,detailed,bullets" help:"Summary style"`
	Lang      string `help:"Language to write the summary in"`
	MaxLength int    `help:"Maximum summary length in characters"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Ref   string `arg:"" name:"id" help:"Page ID or URL"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir        string `arg:"" help:"Directory to export into"`
	Collection string `short:"C" help:"Only export pages in this collection"`
}

// CollectionsCmd groups the collection management subcommands.
type CollectionsCmd struct {
	Create CollectionsCreateCmd `cmd:"" help:"Create a collection"`
	List   CollectionsListCmd   `cmd:"" help:"List collections"`
	Delete CollectionsDeleteCmd `cmd:"" help:"Delete a collection"`
}

// CollectionsCreateCmd is the "collections create" subcommand.
type CollectionsCreateCmd struct {
	Name string `arg:"" help:"Collection name"`
}

// CollectionsListCmd is the "collections list" subcommand.
type CollectionsListCmd struct{}

// CollectionsDeleteCmd is the "collections delete" subcommand.
type CollectionsDeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}
