package pagemark

import (
	"regexp"
	"strings"
)

// OutlineItem represents a heading in a markdown document.
type OutlineItem struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

var (
	outlineHeadingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	outlineCodeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Outline parses markdown and returns all headings (H1-H6) in document
// order. Fenced code blocks are ignored so # inside code is not
// mistaken for a heading.
func Outline(markdown string) []OutlineItem {
	if markdown == "" {
		return nil
	}

	cleaned := outlineCodeBlockRe.ReplaceAllString(markdown, "")

	matches := outlineHeadingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	items := make([]OutlineItem, 0, len(matches))
	for _, match := range matches {
		items = append(items, OutlineItem{
			Level: len(match[1]),
			Title: strings.TrimSpace(match[2]),
		})
	}

	return items
}

// FormatOutline renders an outline as an indented list, two spaces per
// heading level below the first.
func FormatOutline(items []OutlineItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		indent := item.Level - 1
		if indent < 0 {
			indent = 0
		}
		b.WriteString(strings.Repeat("  ", indent) + "- " + item.Title)
	}
	return b.String()
}
