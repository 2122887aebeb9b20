package sqlite

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var _ pagemark.SearchService = (*SearchService)(nil)

// snippetRadius is the number of runes of context kept on each side of
// a snippet's first query hit.
const snippetRadius = 80

// SearchService implements pagemark.SearchService using SQLite LIKE
// queries over the pages table. LIKE folds ASCII case, so searches are
// case-insensitive for Latin text.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// SearchPages returns pages whose title, text, or summary contain the
// query, newest first, up to limit results.
func (s *SearchService) SearchPages(ctx context.Context, query string, limit int) ([]*pagemark.PageMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "search query required")
	}

	pattern := "%" + escapeLike(query) + "%"

	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT " + pageColumns + " FROM pages")
	sb.WriteString(` WHERE title LIKE ? ESCAPE '\' OR text LIKE ? ESCAPE '\' OR summary LIKE ? ESCAPE '\'`)
	sb.WriteString(" ORDER BY saved_at DESC, rowid DESC")
	args = append(args, pattern, pattern, pattern)

	paginate(&sb, &args, limit, 0)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*pagemark.PageMatch
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &pagemark.PageMatch{
			Page:    page,
			Snippet: snippet(page, query),
		})
	}

	return matches, rows.Err()
}

// escapeLike escapes LIKE wildcards in a user query.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// snippet windows the first query hit, checking the same fields the
// search matched on: text, then summary, then title.
func snippet(page *pagemark.SavedPage, query string) string {
	for _, field := range []string{page.Text, page.Summary, page.Title} {
		if s, ok := snippetIn(field, query); ok {
			return s
		}
	}
	// SQLite folded case differently than Go did. Fall back to the
	// start of the text.
	s, _ := snippetIn(page.Text, "")
	return s
}

// snippetIn returns a whitespace-collapsed window of text around the
// first case-insensitive occurrence of query.
func snippetIn(text, query string) (string, bool) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return "", false
	}

	// Work in runes so the window never splits a multi-byte character.
	runes := []rune(text)
	center := utf8.RuneCountInString(text[:min(idx, len(text))])

	start := max(center-snippetRadius, 0)
	end := min(center+utf8.RuneCountInString(query)+snippetRadius, len(runes))

	out := strings.Join(strings.Fields(string(runes[start:end])), " ")
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out += "..."
	}

	return out, true
}
