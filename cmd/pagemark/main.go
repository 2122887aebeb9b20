package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/fs"
	"github.com/fwojciec/pagemark/gemini"
	"github.com/fwojciec/pagemark/goquery"
	"github.com/fwojciec/pagemark/htmltomarkdown"
	pmhttp "github.com/fwojciec/pagemark/http"
	"github.com/fwojciec/pagemark/readability"
	"github.com/fwojciec/pagemark/rod"
	"github.com/fwojciec/pagemark/save"
	pmslog "github.com/fwojciec/pagemark/slog"
	"github.com/fwojciec/pagemark/sqlite"
	"github.com/fwojciec/pagemark/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService       pagemark.PageService
	SearchService     pagemark.SearchService
	CollectionService pagemark.CollectionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemark"),
		kong.Description("Save web pages as clean, summarized markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemark --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// With --verbose, pipeline components are wrapped in logging
	// decorators writing to stderr.
	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PageService = sqlite.NewPageService(m.DB)
	m.SearchService = sqlite.NewSearchService(m.DB)
	m.CollectionService = sqlite.NewCollectionService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService
	deps.Search = m.SearchService
	deps.Collections = m.CollectionService
	deps.Feeds = pmhttp.NewFeedService(nil)
	if logger != nil {
		deps.Feeds = pmslog.NewLoggingFeedService(deps.Feeds, logger)
	}
	deps.NewExporter = func(dir string) pagemark.Exporter {
		return fs.NewExporter(dir)
	}

	// Wire command-specific dependencies based on the parsed command.
	// kongCtx.Command() is used rather than args[0] so global flags may
	// precede the command name.
	command, _, _ := strings.Cut(kongCtx.Command(), " ")
	switch command {
	case "save", "feed":
		flags := cli.Save.SaveFlags
		if command == "feed" {
			flags = cli.Feed.SaveFlags
		}

		saver, cleanup, err := m.newSaver(ctx, flags, logger, stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Saver = saver

	case "summarize":
		client, err := newGeminiClient(ctx, stderr)
		if err != nil {
			return err
		}
		deps.Summarizer = gemini.NewSummarizer(client)
		if logger != nil {
			deps.Summarizer = pmslog.NewLoggingSummarizer(deps.Summarizer, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newSaver wires the full save pipeline for the given flags. The
// returned cleanup func releases the fetchers. A non-nil logger wraps
// the pipeline components in logging decorators.
func (m *Main) newSaver(ctx context.Context, flags SaveFlags, logger *slog.Logger, stderr io.Writer) (*save.Saver, func(), error) {
	fetcher := pmhttp.NewFetcher()
	cleanup := func() { _ = fetcher.Close() }

	saver := &save.Saver{
		Fetcher:     fetcher,
		Prober:      goquery.NewDetector(),
		Extractor:   newExtractor(flags.Engine),
		Converter:   htmltomarkdown.NewConverter(),
		Pages:       m.PageService,
		RateLimiter: save.NewDomainLimiter(flags.RPS),
		Concurrency: flags.Concurrency,
		ExtractConfig: pagemark.ExtractConfig{
			MaxContentLength: flags.MaxLength,
		},
	}
	if logger != nil {
		saver.Fetcher = pmslog.NewLoggingFetcher(saver.Fetcher, logger)
		saver.Prober = pmslog.NewLoggingProber(saver.Prober, logger)
		saver.Extractor = pmslog.NewLoggingExtractor(saver.Extractor, logger)
	}

	if flags.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			cleanup()
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		httpCleanup := cleanup
		cleanup = func() {
			_ = browser.Close()
			httpCleanup()
		}
		saver.Browser = browser
		if logger != nil {
			saver.Browser = pmslog.NewLoggingFetcher(browser, logger)
		}
	}

	// Summaries need a Gemini API key. Without one, pages are saved
	// unsummarized; 'pagemark summarize' can fill them in later.
	if !flags.NoSummary && !flags.DryRun {
		if os.Getenv("GEMINI_API_KEY") != "" {
			client, err := newGeminiClient(ctx, stderr)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			saver.Summarizer = gemini.NewSummarizer(client)
			if logger != nil {
				saver.Summarizer = pmslog.NewLoggingSummarizer(saver.Summarizer, logger)
			}

			if counter, err := gemini.NewTokenCounter(""); err == nil {
				saver.TokenCounter = counter
			}
		}
	}

	return saver, cleanup, nil
}

// newExtractor selects the extraction engine by name.
func newExtractor(engine string) pagemark.ContentExtractor {
	switch engine {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// newGeminiClient connects to the Gemini API using GEMINI_API_KEY.
func newGeminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemark.db"
	}
	dir := filepath.Join(home, ".pagemark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagemark.db")
}
