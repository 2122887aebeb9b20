// Package rod provides a browser-based Fetcher for pages that require
// JavaScript rendering before their content can be extracted.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements pagemark.Fetcher at compile time.
var _ pagemark.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds a single page fetch, including rendering time.
const DefaultFetchTimeout = 30 * time.Second

// stableWindow is how long the DOM and network must stay quiet before a
// page counts as rendered.
const stableWindow = 300 * time.Millisecond

// serializeScript returns the full document HTML with open shadow roots
// inlined as declarative shadow DOM templates. Plain outerHTML omits
// shadow root content, so web component text would be invisible to
// extraction without this.
const serializeScript = `() => {
	const collectShadowRoots = (root, acc) => {
		for (const el of root.querySelectorAll('*')) {
			if (el.shadowRoot) {
				acc.push(el.shadowRoot);
				collectShadowRoots(el.shadowRoot, acc);
			}
		}
		return acc;
	};
	const root = document.documentElement;
	let inner;
	if (root.getHTML) {
		inner = root.getHTML({serializableShadowRoots: true, shadowRoots: collectShadowRoots(document, [])});
	} else if (root.getInnerHTML) {
		inner = root.getInnerHTML({includeShadowRoots: true});
	} else {
		inner = root.innerHTML;
	}
	const attrs = Array.from(root.attributes)
		.map((a) => ' ' + a.name + '="' + a.value.replace(/"/g, '&quot;') + '"')
		.join('');
	return '<!DOCTYPE html>\n<html' + attrs + '>' + inner + '</html>';
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Pages are serialized only after scripts and late requests have settled, so
// client-rendered content is present in the returned HTML.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// The browser is recycled after DefaultMaxPages pages to keep memory bounded
// during long save batches. Close must be called when the Fetcher is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML, including
// content inside open shadow roots. The fetch is bounded by the configured
// timeout in addition to any deadline on ctx.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pagemark.Errorf(pagemark.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Acquire().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Scope all page operations to the fetch context
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitStable(stableWindow); err != nil {
		return "", err
	}

	obj, err := page.Eval(serializeScript)
	if err != nil {
		return "", err
	}

	f.manager.PageDone()
	return obj.Value.Str(), nil
}

// LauncherPID returns the process ID of the underlying browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
