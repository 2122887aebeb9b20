package pagemark

import (
	"regexp"
	"strings"
)

// TruncationMarker is appended to text that was cut to fit the length
// budget. It is bracketed so downstream consumers and the validator can
// distinguish it from page content.
const TruncationMarker = "[Content truncated for length]"

// truncationHeadroom is reserved below MaxContentLength during boundary
// accumulation so the marker always fits within the budget.
const truncationHeadroom = 50

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLineRunRe    = regexp.MustCompile(`\n{3,}`)
	sentenceRe        = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// ProcessContent assembles structured content into a single text block,
// normalizes whitespace, detects language, and truncates to the
// configured length budget at paragraph or sentence boundaries.
func ProcessContent(sc *StructuredContent, cfg ExtractConfig) *ProcessedContent {
	cfg = cfg.WithDefaults()

	text := NormalizeWhitespace(assembleSections(sc, cfg))
	language := DetectLanguage(text)
	text = TruncateContent(text, cfg.MaxContentLength)

	return &ProcessedContent{
		Text:      text,
		Language:  language,
		Structure: sc.Structure,
		WordCount: CountWords(text),
	}
}

// ProcessText runs the flat-text half of the pipeline for extraction
// engines that produce prose without structured records. Paragraph
// statistics are estimated from blank-line separated blocks.
func ProcessText(text string, cfg ExtractConfig) *ProcessedContent {
	cfg = cfg.WithDefaults()

	normalized := NormalizeWhitespace(text)
	language := DetectLanguage(normalized)
	truncated := TruncateContent(normalized, cfg.MaxContentLength)
	words := CountWords(truncated)

	blocks := 0
	for _, block := range strings.Split(normalized, "\n\n") {
		if strings.TrimSpace(block) != "" {
			blocks++
		}
	}
	stats := StructureStats{ParagraphCount: blocks, TotalWords: words}
	if blocks > 0 {
		stats.AvgParagraphWords = float64(words) / float64(blocks)
	}

	return &ProcessedContent{
		Text:      truncated,
		Language:  language,
		Structure: stats,
		WordCount: words,
	}
}

// assembleSections renders the structured records as labeled sections,
// in fixed order, skipping empty sources and omitted section kinds.
func assembleSections(sc *StructuredContent, cfg ExtractConfig) string {
	var sections []string

	if !cfg.OmitHeadings && len(sc.Headings) > 0 {
		var b strings.Builder
		b.WriteString("Main Topics:")
		for _, h := range sc.Headings {
			depth := h.Level
			if depth > 3 {
				depth = 3
			}
			b.WriteString("\n" + strings.Repeat("#", depth) + " " + h.Text)
		}
		sections = append(sections, b.String())
	}

	if len(sc.Paragraphs) > 0 {
		parts := make([]string, 0, len(sc.Paragraphs))
		for _, p := range sc.Paragraphs {
			parts = append(parts, p.Text)
		}
		sections = append(sections, "Content:\n"+strings.Join(parts, "\n\n"))
	}

	if !cfg.OmitLists && len(sc.Lists) > 0 {
		var b strings.Builder
		b.WriteString("Key Points:")
		for _, list := range sc.Lists {
			for _, item := range list.Items {
				b.WriteString("\n- " + item)
			}
		}
		sections = append(sections, b.String())
	}

	if !cfg.OmitQuotes && len(sc.Quotes) > 0 {
		var b strings.Builder
		b.WriteString("Notable Quotes:")
		for _, q := range sc.Quotes {
			b.WriteString("\n\"" + q.Text + "\"")
		}
		sections = append(sections, b.String())
	}

	if len(sc.Images) > 0 {
		var b strings.Builder
		b.WriteString("Visual Content:")
		for _, img := range sc.Images {
			line := img.Alt
			if line == "" {
				line = img.Caption
			} else if img.Caption != "" {
				line += " (" + img.Caption + ")"
			}
			b.WriteString("\nImage: " + line)
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n\n")
}

// NormalizeWhitespace collapses runs of horizontal whitespace to a single
// space, trims every line, and collapses runs of blank lines to exactly
// one, preserving paragraph breaks.
func NormalizeWhitespace(s string) string {
	s = horizontalSpaceRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = blankLineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// TruncateContent bounds text to maxLen bytes. Text under the budget is
// returned unchanged, which makes truncation idempotent. Oversized text
// is cut at paragraph boundaries when that retains at least 70% of the
// budget, otherwise at sentence boundaries, and the truncation marker is
// appended.
func TruncateContent(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	budget := maxLen - truncationHeadroom

	// Try whole paragraphs first.
	var kept []string
	length := 0
	for _, para := range strings.Split(text, "\n\n") {
		addition := len(para)
		if len(kept) > 0 {
			addition += 2
		}
		if length+addition > budget {
			break
		}
		kept = append(kept, para)
		length += addition
	}
	if length >= (maxLen*7)/10 {
		return strings.Join(kept, "\n\n") + "\n\n" + TruncationMarker
	}

	// Fall back to whole sentences.
	var sentences []string
	length = 0
	for _, sentence := range sentenceRe.FindAllString(text, -1) {
		sentence = strings.TrimSpace(sentence)
		addition := len(sentence)
		if len(sentences) > 0 {
			addition++
		}
		if length+addition > budget {
			break
		}
		sentences = append(sentences, sentence)
		length += addition
	}
	if len(sentences) == 0 {
		return TruncationMarker
	}
	return strings.Join(sentences, " ") + "\n\n" + TruncationMarker
}

// Truncated reports whether text carries the truncation marker.
func Truncated(text string) bool {
	return strings.Contains(text, TruncationMarker)
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
