// Package goquery implements main-content extraction over parsed HTML
// trees. It locates the content region with four competing strategies,
// decomposes it into structured records, and degrades to whole-document
// fallbacks when the heuristics fail.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
)

// Ensure Extractor implements pagemark.ContentExtractor at compile time.
var _ pagemark.ContentExtractor = (*Extractor)(nil)

// Extractor extracts the main content of HTML documents.
//
// Each call clones the parsed tree before mutating anything, so a single
// Extractor is safe for concurrent use across independent documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements pagemark.ContentExtractor. An error is returned
// only for unparseable input; every heuristic failure produces a result
// with Success false and a populated Fallback instead.
func (e *Extractor) Extract(rawHTML string, cfg pagemark.ExtractConfig) (*pagemark.ExtractionResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemark.Errorf(pagemark.EINVALID, "failed to parse HTML: %v", err)
	}
	cfg = cfg.WithDefaults()

	cleaned := cleanTree(doc.Selection)

	winner := locate(cleaned)
	if winner == nil {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "no content region found",
			Fallback: extractFallback(cleaned, cfg),
		}, nil
	}

	structured := extractStructured(winner.sel, cfg)
	processed := pagemark.ProcessContent(structured, cfg)
	validation := pagemark.ValidateContent(processed, cfg)
	if !validation.IsValid {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "content failed validation: " + strings.Join(validation.Issues, "; "),
			Fallback: extractFallback(cleaned, cfg),
		}, nil
	}

	contentHTML, err := goquery.OuterHtml(winner.sel)
	if err != nil {
		contentHTML = ""
	}

	return &pagemark.ExtractionResult{
		Success: true,
		Content: processed.Text,
		Metadata: &pagemark.ExtractMetadata{
			Title:           extractTitle(doc),
			ContentHTML:     contentHTML,
			OriginalLength:  structured.OriginalLength,
			ProcessedLength: len(processed.Text),
			Language:        processed.Language,
			Structure:       processed.Structure,
			Quality:         validation.Quality,
			ExtractedAt:     time.Now().UTC(),
			Source:          winner.source,
			Confidence:      winner.confidence,
		},
	}, nil
}

// extractTitle resolves the page title from metadata, preferring the
// title tag, then social metadata, then the first top-level heading.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).First().AttrOr("content", "")); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find(`meta[name="twitter:title"]`).First().AttrOr("content", "")); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
