package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Timestamps are stored as RFC 3339 TEXT so rows stay readable from the
// sqlite3 shell.

// formatTime renders a timestamp for a TEXT column.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// parseTime parses a TEXT timestamp column. Values are written by this
// package in RFC 3339 form, so a parse failure means the row is corrupt.
func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt %s timestamp %q: %w", column, value, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET clauses for positive values.
func paginate(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
