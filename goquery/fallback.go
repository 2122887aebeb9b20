package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
)

// failureText is the tier-3 output when nothing at all can be extracted.
const failureText = "Unable to extract content from this page."

// Fallback tier qualities.
const (
	fallbackBodyQuality = 0.3
	fallbackMetaQuality = 0.1
)

// extractFallback produces degraded but non-empty output when the
// primary pipeline fails. The tiers are an ordered list of fallible
// steps: whole-body text, then title plus meta description, then a
// fixed failure marker. The first step to produce a result wins and
// later tiers never run.
func extractFallback(root *goquery.Selection, cfg pagemark.ExtractConfig) *pagemark.FallbackResult {
	cfg = cfg.WithDefaults()

	steps := []func() *pagemark.FallbackResult{
		func() *pagemark.FallbackResult { return fallbackBody(root, cfg) },
		func() *pagemark.FallbackResult { return fallbackMeta(root) },
	}
	if root != nil {
		for _, step := range steps {
			if result := step(); result != nil {
				return result
			}
		}
	}

	return &pagemark.FallbackResult{
		Content: failureText,
		Source:  pagemark.SourceFallbackError,
		Quality: 0,
	}
}

// fallbackBody extracts the whole-document text, normalized and
// truncated to the length budget. Rejected when the result is too short
// to be worth summarizing.
func fallbackBody(root *goquery.Selection, cfg pagemark.ExtractConfig) *pagemark.FallbackResult {
	scope := root.Find("body")
	if scope.Length() == 0 {
		scope = root
	}
	text := pagemark.NormalizeWhitespace(scope.Text())
	text = pagemark.TruncateContent(text, cfg.MaxContentLength)
	if len(text) <= cfg.MinContentLength {
		return nil
	}
	return &pagemark.FallbackResult{
		Content: text,
		Source:  pagemark.SourceFallbackBody,
		Quality: fallbackBodyQuality,
	}
}

// fallbackMeta combines the document title with its meta description.
// Always produces a result, possibly with empty content: there is no
// richer fallback left, and callers must be able to represent "nothing
// extractable" without crashing.
func fallbackMeta(root *goquery.Selection) *pagemark.FallbackResult {
	title := strings.TrimSpace(root.Find("title").First().Text())

	description := strings.TrimSpace(root.Find(`meta[name="description"]`).First().AttrOr("content", ""))
	if description == "" {
		description = strings.TrimSpace(root.Find(`meta[property="og:description"]`).First().AttrOr("content", ""))
	}

	parts := make([]string, 0, 2)
	if title != "" {
		parts = append(parts, title)
	}
	if description != "" {
		parts = append(parts, description)
	}

	return &pagemark.FallbackResult{
		Content: strings.Join(parts, " "),
		Source:  pagemark.SourceFallbackMeta,
		Quality: fallbackMetaQuality,
	}
}
