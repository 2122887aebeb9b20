// Package fs provides file-based export of saved pages.
package fs

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/pagemark"
)

// URLToPath converts a page URL to a relative file path grouped by host.
// Example: https://example.com/blog/post → example.com/blog/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "URL host required: %s", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	switch {
	case path == "":
		path = "index.md"
	case strings.HasSuffix(path, "/"):
		// Trailing slash becomes index.md in that directory
		path += "index.md"
	default:
		path += ".md"
	}

	rel := host + "/" + path
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", pagemark.Errorf(pagemark.EINVALID, "path traversal in URL: %s", rawURL)
	}

	return rel, nil
}

// FormatPage formats a page as markdown with YAML frontmatter. The body is
// the markdown content when available, the processed text otherwise.
func FormatPage(page *pagemark.SavedPage) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	if page.Language != "" {
		b.WriteString("\nlanguage: ")
		b.WriteString(page.Language)
	}
	b.WriteString("\nquality: ")
	b.WriteString(strconv.FormatFloat(page.Quality, 'f', 2, 64))
	b.WriteString("\nsaved: ")
	b.WriteString(page.SavedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	if page.Content != "" {
		b.WriteString(page.Content)
	} else {
		b.WriteString(page.Text)
	}
	return b.String()
}
