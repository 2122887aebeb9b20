package goquery

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
)

// Extraction bounds for structured records.
const (
	maxHeadings        = 20
	maxHeadingLength   = 200
	minParagraphLength = 10
	maxParagraphLength = 2000
	maxLists           = 5
	maxListItems       = 10
	maxListItemLength  = 500
	maxQuotes          = 5
	minQuoteLength     = 20
	maxQuoteLength     = 1000
	maxImages          = 10
	minAltLength       = 5
)

// navIndicators are substrings that mark navigation chrome. A short
// paragraph containing several of them is boilerplate, not content.
var navIndicators = []string{
	"home", "about", "contact", "login", "sign in", "register",
	"next page", "previous", "read more", "skip to", "back to top",
	"privacy policy", "terms of", "copyright", "all rights reserved", "cookie",
}

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)

// extractStructured pulls typed records out of the winning content
// region. The region is cleaned again first; cleaning is idempotent so
// this is safe when the region came from an already cleaned tree.
func extractStructured(root *goquery.Selection, cfg pagemark.ExtractConfig) *pagemark.StructuredContent {
	cfg = cfg.WithDefaults()
	clean := cleanTree(root)

	sc := &pagemark.StructuredContent{
		OriginalLength: len(strings.TrimSpace(clean.Text())),
	}

	clean.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(sc.Headings) >= maxHeadings {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if len(text) == 0 || len(text) >= maxHeadingLength {
			return true
		}
		sc.Headings = append(sc.Headings, pagemark.Heading{
			Level:     headingLevel(goquery.NodeName(s)),
			Text:      text,
			WordCount: pagemark.CountWords(text),
		})
		return true
	})

	clean.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(sc.Paragraphs) >= cfg.MaxParagraphs {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if len(text) < minParagraphLength || len(text) > maxParagraphLength {
			return true
		}
		if isNonContent(text) {
			return true
		}
		sc.Paragraphs = append(sc.Paragraphs, pagemark.Paragraph{
			Text:          text,
			WordCount:     pagemark.CountWords(text),
			SentenceCount: countSentences(text),
		})
		return true
	})

	clean.Find("ul, ol").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(sc.Lists) >= maxLists {
			return false
		}
		var items []string
		s.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			if len(items) >= maxListItems {
				return false
			}
			text := strings.TrimSpace(li.Text())
			if len(text) >= 1 && len(text) <= maxListItemLength {
				items = append(items, text)
			}
			return true
		})
		if len(items) == 0 {
			return true
		}
		listType := pagemark.ListUnordered
		if goquery.NodeName(s) == "ol" {
			listType = pagemark.ListOrdered
		}
		sc.Lists = append(sc.Lists, pagemark.ListBlock{Type: listType, Items: items})
		return true
	})

	clean.Find("blockquote, q, .quote").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(sc.Quotes) >= maxQuotes {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if len(text) <= minQuoteLength || len(text) >= maxQuoteLength {
			return true
		}
		quoteType := goquery.NodeName(s)
		if quoteType != "blockquote" && quoteType != "q" {
			quoteType = "quote"
		}
		sc.Quotes = append(sc.Quotes, pagemark.Quote{Text: text, Type: quoteType})
		return true
	})

	clean.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(sc.Images) >= maxImages {
			return false
		}
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		if len(alt) <= minAltLength {
			if title := strings.TrimSpace(s.AttrOr("title", "")); len(title) > minAltLength {
				alt = title
			}
		}
		caption := findImageCaption(s)
		if len(alt) <= minAltLength && caption == "" {
			return true
		}
		sc.Images = append(sc.Images, pagemark.ImageDescription{Alt: alt, Caption: caption})
		return true
	})

	sc.Structure = computeStats(sc)
	return sc
}

// findImageCaption looks for a caption near the image: a sibling
// figcaption first, then caption-classed elements under the parent.
// The parent lookup is the one place the extractor walks upward.
func findImageCaption(s *goquery.Selection) string {
	if text := strings.TrimSpace(s.Siblings().Filter("figcaption").First().Text()); text != "" {
		return text
	}
	if text := strings.TrimSpace(s.Parent().Find(".caption, .img-caption, .image-caption").First().Text()); text != "" {
		return text
	}
	return ""
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 1
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceBoundaryRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func computeStats(sc *pagemark.StructuredContent) pagemark.StructureStats {
	stats := pagemark.StructureStats{
		HeadingCount:   len(sc.Headings),
		ParagraphCount: len(sc.Paragraphs),
		ListCount:      len(sc.Lists),
		QuoteCount:     len(sc.Quotes),
		ImageCount:     len(sc.Images),
	}

	levels := make(map[int]struct{})
	for _, h := range sc.Headings {
		levels[h.Level] = struct{}{}
		stats.TotalWords += h.WordCount
	}
	stats.HasHierarchy = len(levels) > 1

	paragraphWords := 0
	for _, p := range sc.Paragraphs {
		paragraphWords += p.WordCount
	}
	stats.TotalWords += paragraphWords
	if len(sc.Paragraphs) > 0 {
		stats.AvgParagraphWords = float64(paragraphWords) / float64(len(sc.Paragraphs))
	}

	for _, l := range sc.Lists {
		for _, item := range l.Items {
			stats.TotalWords += pagemark.CountWords(item)
		}
	}
	for _, q := range sc.Quotes {
		stats.TotalWords += pagemark.CountWords(q.Text)
	}

	return stats
}

// isNonContent rejects paragraph text that looks like boilerplate: ad
// copy, navigation crumbs, symbol noise, or heavy repetition.
func isNonContent(text string) bool {
	lower := strings.ToLower(text)

	adHits := 0
	for _, indicator := range adIndicators {
		if strings.Contains(lower, indicator) {
			adHits++
		}
	}
	if adHits > 2 {
		return true
	}

	navHits := 0
	for _, indicator := range navIndicators {
		if strings.Contains(lower, indicator) {
			navHits++
		}
	}
	if navHits > 1 && len(text) < 100 {
		return true
	}

	if specialCharRatio(text) > 0.3 {
		return true
	}

	// Repetition heuristic. Only applies to paragraphs long enough for
	// the unique-word ratio to mean anything.
	words := strings.Fields(lower)
	if len(words) > 10 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < 0.3 {
			return true
		}
	}

	return false
}

// specialCharRatio reports the share of characters outside the
// Latin/Hangul/digit/whitespace set.
func specialCharRatio(text string) float64 {
	if text == "" {
		return 0
	}
	special, total := 0, 0
	for _, r := range text {
		total++
		switch {
		case unicode.IsSpace(r), unicode.IsDigit(r):
		case unicode.Is(unicode.Latin, r), unicode.Is(unicode.Hangul, r):
		default:
			special++
		}
	}
	return float64(special) / float64(total)
}
