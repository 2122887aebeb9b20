package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Signal weights for element scoring. Changing any of these changes
// main-content selection system-wide.
const (
	weightText      = 0.3
	weightStructure = 0.2
	weightHeadings  = 0.15
	weightLists     = 0.1
)

// adIndicators are substrings that mark promotional text. They feed both
// the element scorer's ad penalty and the non-content paragraph
// classifier, and are matched against lowercased input.
var adIndicators = []string{
	"advertisement", "sponsored", "promoted", "click here", "buy now",
	"subscribe", "sign up", "newsletter", "limited offer", "affiliate",
}

// scoreElement assigns a content-quality score to an element. It is the
// single shared primitive behind the locator strategies: text volume,
// paragraphs, headings, and lists add weighted contributions; link
// density and ad markers subtract; semantic container tags earn a
// bonus. The result is floored at zero.
func scoreElement(s *goquery.Selection) float64 {
	textLen := float64(len(strings.TrimSpace(s.Text())))
	paragraphs := float64(s.Find("p").Length())
	headings := float64(s.Find("h1, h2, h3, h4, h5, h6").Length())
	lists := float64(s.Find("ul, ol").Length())
	links := float64(s.Find("a").Length())

	score := min(textLen/100, 30) * weightText
	score += min(paragraphs*2, 20) * weightStructure
	score += min(headings*3, 15) * weightHeadings
	score += min(lists, 10) * weightLists

	// Link-heavy blocks are usually navigation, not content.
	linkDensity := links / max(paragraphs, 1)
	if linkDensity > 2 {
		score -= linkDensity * 5 * weightStructure
	}

	score -= float64(adMarkerCount(s)) * 5 * weightText

	switch goquery.NodeName(s) {
	case "article", "main", "section":
		score += 10 * weightStructure
	}

	return max(score, 0)
}

// adMarkerCount counts how many distinct ad indicators appear in the
// element's lowercased text or class attribute.
func adMarkerCount(s *goquery.Selection) int {
	text := strings.ToLower(s.Text())
	class, _ := s.Attr("class")
	class = strings.ToLower(class)

	count := 0
	for _, indicator := range adIndicators {
		if strings.Contains(text, indicator) || strings.Contains(class, indicator) {
			count++
		}
	}
	return count
}
