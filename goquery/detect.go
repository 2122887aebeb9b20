package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
)

// Ensure Detector implements pagemark.Prober at compile time.
var _ pagemark.Prober = (*Detector)(nil)

// shellSelectors are mount points used by client-side frameworks. A
// document containing one of these and almost no body text will not
// yield content without JavaScript rendering.
var shellSelectors = []string{
	"#root",
	"#app",
	"#__next",
	"#___gatsby",
	"#__nuxt",
	"[data-reactroot]",
	"[ng-app]",
	"[ng-version]",
}

// shellTextThreshold is the body text length above which a document is
// considered server-rendered regardless of framework markers.
const shellTextThreshold = 200

// Detector recognizes JavaScript application shells: documents served
// as an empty framework mount point whose content only appears after
// script execution.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// NeedsRendering implements pagemark.Prober.
func (d *Detector) NeedsRendering(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	body := doc.Find("body")
	if len(strings.TrimSpace(body.Text())) >= shellTextThreshold {
		return false
	}

	for _, selector := range shellSelectors {
		if body.Find(selector).Length() > 0 {
			return true
		}
	}
	return false
}
