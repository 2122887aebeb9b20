package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagemark"
)

// Ensure FeedService implements pagemark.FeedService.
var _ pagemark.FeedService = (*FeedService)(nil)

// FeedService reads page URLs from RSS 2.0 and Atom feeds via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// Entries fetches the feed at feedURL and returns its entries in feed
// order. Returns ENOTFOUND if the document is not a recognizable feed.
func (s *FeedService) Entries(ctx context.Context, feedURL string, filter *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
	// Check for context cancellation early
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := fetchURL(ctx, s.client, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "not a feed: %s", feedURL)
	}

	root := doc.Root()
	if root == nil {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "not a feed: %s", feedURL)
	}

	var entries []pagemark.FeedEntry
	switch root.Tag {
	case "rss":
		entries = parseRSS(root)
	case "feed":
		entries = parseAtom(root)
	default:
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "not a feed: %s", feedURL)
	}

	if filter == nil {
		return entries, nil
	}

	filtered := make([]pagemark.FeedEntry, 0, len(entries))
	for _, entry := range entries {
		if filter.Match(entry.URL) {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}

// parseRSS extracts entries from an RSS 2.0 document (rss/channel/item).
func parseRSS(root *etree.Element) []pagemark.FeedEntry {
	var entries []pagemark.FeedEntry

	channel := root.SelectElement("channel")
	if channel == nil {
		return entries
	}

	for _, item := range channel.SelectElements("item") {
		entry := pagemark.FeedEntry{
			URL:   elementText(item, "link"),
			Title: elementText(item, "title"),
		}
		if entry.URL == "" {
			continue
		}
		entry.Published = parseFeedTime(elementText(item, "pubDate"), time.RFC1123Z, time.RFC1123)
		entries = append(entries, entry)
	}

	return entries
}

// parseAtom extracts entries from an Atom document (feed/entry).
func parseAtom(root *etree.Element) []pagemark.FeedEntry {
	var entries []pagemark.FeedEntry

	for _, item := range root.SelectElements("entry") {
		entry := pagemark.FeedEntry{
			URL:   atomLink(item),
			Title: elementText(item, "title"),
		}
		if entry.URL == "" {
			continue
		}
		entry.Published = parseFeedTime(elementText(item, "published"), time.RFC3339)
		if entry.Published.IsZero() {
			entry.Published = parseFeedTime(elementText(item, "updated"), time.RFC3339)
		}
		entries = append(entries, entry)
	}

	return entries
}

// atomLink returns an entry's link href, preferring rel="alternate".
// A link element with no rel attribute counts as alternate.
func atomLink(entry *etree.Element) string {
	var fallback string
	for _, link := range entry.SelectElements("link") {
		href := strings.TrimSpace(link.SelectAttrValue("href", ""))
		if href == "" {
			continue
		}
		if link.SelectAttrValue("rel", "alternate") == "alternate" {
			return href
		}
		if fallback == "" {
			fallback = href
		}
	}
	return fallback
}

// elementText returns the trimmed text of a named child element.
func elementText(parent *etree.Element, name string) string {
	el := parent.SelectElement(name)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// parseFeedTime tries each layout in turn, returning the zero time if
// none match.
func parseFeedTime(value string, layouts ...string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fetchURL fetches a URL and returns the response body.
func fetchURL(ctx context.Context, client *http.Client, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
