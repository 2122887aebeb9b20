package pagemark

import (
	"context"
	"regexp"
	"time"
)

// FeedEntry is a single entry discovered in an RSS or Atom feed.
type FeedEntry struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Published time.Time `json:"published"`
}

// FeedService discovers page URLs from syndication feeds.
type FeedService interface {
	// Entries fetches the feed at feedURL and returns its entries in
	// feed order. Both RSS 2.0 and Atom are supported.
	// Returns ENOTFOUND if the document is not a recognizable feed.
	//
	// The filter can be used to include/exclude entries by URL pattern.
	// If filter is nil, all entries are returned.
	Entries(ctx context.Context, feedURL string, filter *EntryFilter) ([]FeedEntry, error)
}

// EntryFilter specifies patterns for including/excluding feed entries.
type EntryFilter struct {
	// Include patterns - if set, only entry URLs matching at least one
	// pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - entry URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *EntryFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, URL must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check exclude patterns
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
