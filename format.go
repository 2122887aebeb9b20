package pagemark

import "strings"

// FormatPages formats saved pages for display or LLM context.
// Uses title if available, falls back to URL. Pages stored without
// markdown fall back to their plain text.
// Pages are separated by blank lines.
func FormatPages(pages []*SavedPage) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		header := page.Title
		if header == "" {
			header = page.URL
		}
		body := page.Content
		if body == "" {
			body = page.Text
		}
		parts = append(parts, "## Page: "+header+"\n"+body)
	}

	return strings.Join(parts, "\n\n")
}
