package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemark"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemark.PageService = (*PageService)(nil)

// pageColumns is the column list consumed by scanPage. The two must
// stay in sync.
const pageColumns = "id, url, title, content, text, summary, language, source, quality, word_count, content_hash, collection_id, saved_at, updated_at"

// PageService implements pagemark.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// nullableID maps an empty string to NULL for optional foreign keys.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPage reads one pageColumns row into a SavedPage.
func scanPage(row scanner) (*pagemark.SavedPage, error) {
	var page pagemark.SavedPage
	var source string
	var collectionID sql.NullString
	var savedAt, updatedAt string

	if err := row.Scan(&page.ID, &page.URL, &page.Title, &page.Content, &page.Text,
		&page.Summary, &page.Language, &source, &page.Quality, &page.WordCount,
		&page.ContentHash, &collectionID, &savedAt, &updatedAt); err != nil {
		return nil, err
	}

	page.Source = pagemark.ContentSource(source)
	if collectionID.Valid {
		page.CollectionID = collectionID.String
	}

	var err error
	page.SavedAt, err = parseTime("saved_at", savedAt)
	if err != nil {
		return nil, err
	}
	page.UpdatedAt, err = parseTime("updated_at", updatedAt)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// CreatePage persists a page. Saving a URL that was saved before
// replaces the stored record in place, preserving its ID and SavedAt.
func (s *PageService) CreatePage(ctx context.Context, page *pagemark.SavedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	page.ContentHash = hashContent(page.Text)
	page.UpdatedAt = now

	existing, err := s.FindPageByURL(ctx, page.URL)
	if err != nil && pagemark.ErrorCode(err) != pagemark.ENOTFOUND {
		return err
	}

	if existing != nil {
		page.ID = existing.ID
		page.SavedAt = existing.SavedAt

		_, err := s.db.ExecContext(ctx, `
			UPDATE pages
			SET title = ?, content = ?, text = ?, summary = ?, language = ?, source = ?,
				quality = ?, word_count = ?, content_hash = ?, collection_id = ?, updated_at = ?
			WHERE id = ?
		`, page.Title, page.Content, page.Text, page.Summary, page.Language, string(page.Source),
			page.Quality, page.WordCount, page.ContentHash, nullableID(page.CollectionID),
			formatTime(page.UpdatedAt), page.ID)

		return err
	}

	page.ID = uuid.New().String()
	page.SavedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, content, text, summary, language, source,
			quality, word_count, content_hash, collection_id, saved_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Content, page.Text, page.Summary, page.Language,
		string(page.Source), page.Quality, page.WordCount, page.ContentHash,
		nullableID(page.CollectionID), formatTime(page.SavedAt),
		formatTime(page.UpdatedAt))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagemark.SavedPage, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FindPageByURL retrieves a page by its exact URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*pagemark.SavedPage, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE url = ?", url)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter pagemark.PageFilter) ([]*pagemark.SavedPage, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.MinQuality != nil {
		query.WriteString(" AND quality >= ?")
		args = append(args, *filter.MinQuality)
	}

	// saved_at has second precision, so rowid breaks ties between
	// pages saved within the same second.
	query.WriteString(" ORDER BY saved_at DESC, rowid DESC")

	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagemark.SavedPage
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// UpdatePage updates an existing page. Setting CollectionID to an
// empty string detaches the page from its collection.
func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagemark.PageUpdate) (*pagemark.SavedPage, error) {
	// First check if page exists
	page, err := s.FindPageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Title != nil {
		page.Title = *upd.Title
	}
	if upd.Summary != nil {
		page.Summary = *upd.Summary
	}
	if upd.CollectionID != nil {
		page.CollectionID = *upd.CollectionID
	}

	// Validate before persisting
	if err := page.Validate(); err != nil {
		return nil, err
	}

	page.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE pages
		SET title = ?, summary = ?, collection_id = ?, updated_at = ?
		WHERE id = ?
	`, page.Title, page.Summary, nullableID(page.CollectionID),
		formatTime(page.UpdatedAt), id)

	if err != nil {
		return nil, err
	}

	return page, nil
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
	}

	return nil
}
