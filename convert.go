package pagemark

// Converter renders a page's winning content region as Markdown for
// storage and export.
type Converter interface {
	// Convert transforms content HTML into Markdown. pageURL, when
	// non-empty, is the URL the HTML came from; relative links and
	// images are resolved against it so the Markdown stands alone.
	// Returns EINVALID if html is empty.
	Convert(html, pageURL string) (string, error)
}
