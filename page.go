package pagemark

import (
	"context"
	"time"
)

// SavedPage represents a web page captured by a save operation.
type SavedPage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`

	// Content is the markdown rendition of the extracted content region.
	Content string `json:"content"`

	// Text is the processed extraction payload used for summarization.
	Text string `json:"text"`

	// Summary is the AI-generated summary, empty until one is produced.
	Summary string `json:"summary"`

	Language    string        `json:"language"`
	Source      ContentSource `json:"source"`
	Quality     float64       `json:"quality"`
	WordCount   int           `json:"wordCount"`
	ContentHash string        `json:"contentHash"`

	// CollectionID groups the page into a collection, empty for none.
	CollectionID string `json:"collectionId,omitempty"`

	SavedAt   time.Time `json:"savedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *SavedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Text == "" {
		return Errorf(EINVALID, "page text required")
	}
	if p.Quality < 0 || p.Quality > 1 {
		return Errorf(EINVALID, "page quality must be between 0 and 1")
	}
	return nil
}

// PageService represents a service for managing saved pages.
type PageService interface {
	// CreatePage persists a page. Saving a URL that already exists
	// updates the stored record in place, preserving its ID and SavedAt.
	CreatePage(ctx context.Context, page *SavedPage) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*SavedPage, error)

	// FindPageByURL retrieves a page by its exact URL.
	// Returns ENOTFOUND if page does not exist.
	FindPageByURL(ctx context.Context, url string) (*SavedPage, error)

	// FindPages retrieves pages matching the filter, newest first.
	FindPages(ctx context.Context, filter PageFilter) ([]*SavedPage, error)

	// UpdatePage updates an existing page.
	// Returns ENOTFOUND if page does not exist.
	UpdatePage(ctx context.Context, id string, upd PageUpdate) (*SavedPage, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID           *string  `json:"id"`
	URL          *string  `json:"url"`
	CollectionID *string  `json:"collectionId"`
	Language     *string  `json:"language"`
	Source       *string  `json:"source"`
	MinQuality   *float64 `json:"minQuality"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageUpdate represents fields that can be updated on a saved page.
type PageUpdate struct {
	Title        *string `json:"title"`
	Summary      *string `json:"summary"`
	CollectionID *string `json:"collectionId"`
}

// PageMatch pairs a page with a snippet windowing the first query hit.
type PageMatch struct {
	Page    *SavedPage `json:"page"`
	Snippet string     `json:"snippet"`
}

// SearchService searches the stored text of saved pages.
type SearchService interface {
	// SearchPages returns pages whose title, text, or summary contain
	// the query, newest first, up to limit results.
	SearchPages(ctx context.Context, query string, limit int) ([]*PageMatch, error)
}

// Exporter writes saved pages to an external location with atomic
// semantics. Save stages pages in a temporary location; Commit makes
// the staged export visible; Abort discards it.
type Exporter interface {
	Save(ctx context.Context, page *SavedPage) error
	Commit() error
	Abort() error
}
