package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// removedTags are always stripped before content analysis. noscript is
// included because its children are non-rendered fallback markup that
// would otherwise pollute text extraction.
var removedTags = []string{"script", "style", "noscript", "iframe", "frame"}

// noisyRoleRe matches structural roles that mark an element as
// non-content. The roles are matched as whole tokens within tag names,
// class attributes, and ids, so "ad-banner" and "sidebar_left" match
// while "header" and "gradient" do not.
var noisyRoleRe = regexp.MustCompile(`(?i)(?:^|[^a-z])(?:ads?|banner|social|comments?|related|sidebar|menu|nav|navigation|popup|modal|overlay)(?:[^a-z]|$)`)

// adMarkerRes match ad, sponsor, widget, and affiliate markers in class
// and id attributes.
var adMarkerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|[^a-z])ads?(?:[^a-z]|$)`),
	regexp.MustCompile(`(?i)advert`),
	regexp.MustCompile(`(?i)sponsor`),
	regexp.MustCompile(`(?i)promo`),
	regexp.MustCompile(`(?i)widget`),
	regexp.MustCompile(`(?i)affiliate`),
}

// cleanTree returns a structurally equivalent clone of the selection
// with scripts, styles, frames, and denylisted structural elements
// removed. The input selection is never modified, so the caller's
// document stays intact for other consumers. Cleaning an already
// cleaned tree is a no-op.
func cleanTree(sel *goquery.Selection) *goquery.Selection {
	clone := sel.Clone()

	clone.Find(strings.Join(removedTags, ", ")).Remove()

	clone.Find("*").Each(func(_ int, s *goquery.Selection) {
		if isNoisy(s) {
			s.Remove()
		}
	})

	return clone
}

// isNoisy reports whether an element's tag, class, or id marks it as
// non-content. Class and id are checked independently of the tag name.
func isNoisy(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")

	for _, v := range []string{goquery.NodeName(s), class, id} {
		if v == "" {
			continue
		}
		if noisyRoleRe.MatchString(v) {
			return true
		}
		for _, re := range adMarkerRes {
			if re.MatchString(v) {
				return true
			}
		}
	}
	return false
}
