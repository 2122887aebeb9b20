// Package save provides page saving orchestration.
// It coordinates fetching, extraction, markdown conversion,
// summarization, and storage of web pages.
package save

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker count for batch saves when none is
// configured.
const DefaultConcurrency = 4

// DefaultSummaryThreshold is the minimum extraction quality for which a
// summary is generated. Low-quality extractions are mostly boilerplate
// and produce misleading summaries.
const DefaultSummaryThreshold = 0.5

// Saver orchestrates the saving of web pages.
type Saver struct {
	Fetcher pagemark.Fetcher

	// Browser is an optional rendering fetcher used when Prober reports
	// that the fetched document is a JavaScript shell.
	Browser pagemark.Fetcher

	Prober           pagemark.Prober
	Extractor        pagemark.ContentExtractor
	Converter        pagemark.Converter
	Summarizer       pagemark.Summarizer
	TokenCounter     pagemark.TokenCounter
	Pages            pagemark.PageService
	RateLimiter      pagemark.DomainLimiter
	Concurrency      int
	RetryDelays      []time.Duration
	SummaryThreshold float64
	ExtractConfig    pagemark.ExtractConfig
}

// Options controls a save operation.
type Options struct {
	// CollectionID assigns the saved page to a collection. Empty leaves
	// the page uncollected.
	CollectionID string

	// NoSummary skips summary generation.
	NoSummary bool

	// DryRun runs the pipeline without summarizing or persisting.
	DryRun bool
}

// Result holds the outcome of a batch save operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
	Tokens int
}

// ProgressEvent reports progress during a batch save operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting save progress.
type ProgressFunc func(event ProgressEvent)

// saveOutcome holds the outcome of processing a single URL.
type saveOutcome struct {
	position int
	url      string
	page     *pagemark.SavedPage
	err      error
}

// SavePage fetches, extracts, and stores a single page. The returned
// page reflects what was (or, for dry runs, would have been) stored.
//
// Extraction failures degrade to fallback content instead of failing
// the save; fetch failures fail it.
func (s *Saver) SavePage(ctx context.Context, rawURL string, opts Options) (*pagemark.SavedPage, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "invalid URL: %s", rawURL)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	// Refetch with the browser when the page is a JavaScript shell.
	// A browser failure keeps the plain HTML rather than failing the save.
	if s.Browser != nil && s.Prober != nil && s.Prober.NeedsRendering(html) {
		if rendered, err := s.Browser.Fetch(ctx, rawURL); err == nil {
			html = rendered
		}
	}

	page, err := s.buildPage(ctx, rawURL, html, opts)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		return page, nil
	}

	if err := s.Pages.CreatePage(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

// buildPage runs extraction, markdown conversion, and summarization.
func (s *Saver) buildPage(ctx context.Context, rawURL, html string, opts Options) (*pagemark.SavedPage, error) {
	result, err := s.Extractor.Extract(html, s.ExtractConfig)
	if err != nil {
		return nil, err
	}

	page := &pagemark.SavedPage{
		URL:          rawURL,
		CollectionID: opts.CollectionID,
	}

	if result.Success {
		page.Title = result.Metadata.Title
		page.Text = result.Content
		page.Language = result.Metadata.Language
		page.Source = result.Metadata.Source
		page.Quality = result.Metadata.Quality

		// Conversion failure degrades to a text-only page
		if s.Converter != nil && result.Metadata.ContentHTML != "" {
			if markdown, err := s.Converter.Convert(result.Metadata.ContentHTML, rawURL); err == nil {
				page.Content = markdown
			}
		}
	} else {
		if result.Fallback == nil {
			return nil, pagemark.Errorf(pagemark.EINTERNAL, "extraction produced no result for %s", rawURL)
		}
		page.Text = result.Fallback.Content
		page.Source = result.Fallback.Source
		page.Quality = result.Fallback.Quality
	}
	page.WordCount = pagemark.CountWords(page.Text)

	if s.shouldSummarize(page, opts) {
		// Summarize the markdown when available so the heading
		// structure reaches the prompt. A failed summary leaves the
		// page unsummarized rather than failing the save.
		input := page.Content
		if input == "" {
			input = page.Text
		}
		if summary, err := s.Summarizer.Summarize(ctx, input, pagemark.SummaryOptions{}); err == nil {
			page.Summary = summary
		}
	}

	return page, nil
}

// shouldSummarize reports whether a summary should be generated for the
// page under the given options.
func (s *Saver) shouldSummarize(page *pagemark.SavedPage, opts Options) bool {
	if s.Summarizer == nil || opts.NoSummary || opts.DryRun {
		return false
	}
	threshold := s.SummaryThreshold
	if threshold == 0 {
		threshold = DefaultSummaryThreshold
	}
	return page.Quality >= threshold
}

// SaveAll saves a batch of URLs concurrently. Duplicate URLs are
// dropped before processing. The progress callback, if provided,
// receives events as saving proceeds.
func (s *Saver) SaveAll(ctx context.Context, urls []string, opts Options, progress ProgressFunc) (*Result, error) {
	urls = dedupURLs(urls)
	total := len(urls)
	if total == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan saveOutcome, total)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			g.Go(func() error {
				page, err := s.SavePage(gctx, pageURL, opts)
				resultCh <- saveOutcome{position: i, url: pageURL, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	outcomes := make([]saveOutcome, total)
	for outcome := range resultCh {
		completed.Add(1)
		outcomes[outcome.position] = outcome

		if progress == nil {
			continue
		}
		if outcome.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       outcome.url,
				Error:     outcome.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressSaved,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       outcome.url,
			})
		}
	}

	// Accumulate stats
	var result Result
	for _, outcome := range outcomes {
		if outcome.err != nil {
			result.Failed++
			continue
		}
		result.Saved++
		result.Bytes += len(outcome.page.Text)
		if s.TokenCounter != nil {
			if tokens, err := s.TokenCounter.CountTokens(ctx, outcome.page.Text); err == nil {
				result.Tokens += tokens
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// dedupFalsePositiveRate is the acceptable false positive rate for
// batch URL deduplication.
const dedupFalsePositiveRate = 0.01

// dedupURLs drops duplicate URLs, keeping first occurrences in order.
// URLs differing only by fragment or trailing slash count as duplicates.
func dedupURLs(urls []string) []string {
	if len(urls) < 2 {
		return urls
	}

	filter := bloom.NewFilter(uint(len(urls)), dedupFalsePositiveRate)
	deduped := make([]string, 0, len(urls))
	for _, u := range urls {
		if filter.Test(u) {
			continue
		}
		filter.Add(u)
		deduped = append(deduped, u)
	}
	return deduped
}
