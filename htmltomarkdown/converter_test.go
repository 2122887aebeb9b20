package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagemark.Converter at compile time.
var _ pagemark.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="/about">about page</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "https://example.com/blog/post")

		require.NoError(t, err)
		assert.Contains(t, md, "(https://example.com/about)")
	})

	t.Run("resolves relative image sources against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<p><img src="/images/chart.png" alt="Chart"></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "https://example.com/reports/q3")

		require.NoError(t, err)
		assert.Contains(t, md, "![Chart](https://example.com/images/chart.png)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "- Third")
	})

	t.Run("converts ordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>First</li><li>Second</li><li>Third</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "1. First")
		assert.Contains(t, md, "2. Second")
		assert.Contains(t, md, "3. Third")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		html := `<blockquote><p>This is a quote.</p></blockquote>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "> This is a quote.")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Bold</strong> and <em>italic</em> text.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts images with alt text", func(t *testing.T) {
		t.Parallel()

		html := `<p><img src="https://example.com/chart.png" alt="Quarterly results chart"></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "![Quarterly results chart](https://example.com/chart.png)")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		html := `<p>Run <code>go build</code> to compile.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "`go build`")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr><tr><td>Bob</td><td>25</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("output has no surrounding whitespace or blank-line runs", func(t *testing.T) {
		t.Parallel()

		html := `<div><h1>Title</h1><div></div><div></div><p>Body.</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "")

		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(md), md)
		assert.NotContains(t, md, "\n\n\n")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("", "")

		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})

	t.Run("handles an extracted article region", func(t *testing.T) {
		t.Parallel()

		html := `<article>
<h1>The Case for Reading Offline</h1>
<p>An argument in three parts, <strong>summarized</strong> below.</p>
<h2>Attention</h2>
<p>Offline reading removes the machinery of distraction.</p>
<blockquote><p>The page you saved is the page you read.</p></blockquote>
<h2>Ownership</h2>
<ul>
<li>Saved copies survive link rot</li>
<li>Search works without a network</li>
</ul>
<figure>
<img src="https://example.com/desk.jpg" alt="A reading desk by a window">
<figcaption>The reading corner</figcaption>
</figure>
</article>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html, "https://example.com/essays/offline")

		require.NoError(t, err)
		assert.Contains(t, md, "# The Case for Reading Offline")
		assert.Contains(t, md, "## Attention")
		assert.Contains(t, md, "**summarized**")
		assert.Contains(t, md, "> The page you saved is the page you read.")
		assert.Contains(t, md, "- Saved copies survive link rot")
		assert.Contains(t, md, "![A reading desk by a window](https://example.com/desk.jpg)")
	})
}
