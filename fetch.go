package pagemark

import "context"

// Fetcher retrieves HTML documents from URLs.
// Implementations may use plain HTTP or browser automation.
type Fetcher interface {
	// Fetch retrieves the document at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Prober inspects fetched HTML to decide whether it needs browser
// rendering. Single-page applications serve an empty shell whose content
// only appears after script execution; those documents should be
// refetched with a rendering Fetcher before extraction.
type Prober interface {
	// NeedsRendering reports whether the document is a JavaScript
	// application shell.
	NeedsRendering(html string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
