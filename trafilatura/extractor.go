// Package trafilatura implements content extraction backed by
// go-trafilatura, a port of the trafilatura web scraping library. It is
// the highest-precision alternative to the native goquery engine.
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemark.ContentExtractor at compile time.
var _ pagemark.ContentExtractor = (*Extractor)(nil)

// confidence is fixed per engine: trafilatura does not expose a score.
const confidence = 0.85

// Extractor extracts main content using go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements pagemark.ContentExtractor.
func (e *Extractor) Extract(rawHTML string, cfg pagemark.ExtractConfig) (*pagemark.ExtractionResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}
	cfg = cfg.WithDefaults()

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	// The library errors when a page yields too little text, so library
	// failures degrade to a fallback result instead of propagating.
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "trafilatura: " + err.Error(),
			Fallback: metaFallback("", ""),
		}, nil
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "trafilatura found no content",
			Fallback: metaFallback(result.Metadata.Title, result.Metadata.Description),
		}, nil
	}

	processed := pagemark.ProcessText(text, cfg)
	validation := pagemark.ValidateContent(processed, cfg)
	if !validation.IsValid {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "content failed validation: " + strings.Join(validation.Issues, "; "),
			Fallback: metaFallback(result.Metadata.Title, result.Metadata.Description),
		}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		if rendered, err := renderNode(result.ContentNode); err == nil {
			contentHTML = rendered
		}
	}

	return &pagemark.ExtractionResult{
		Success: true,
		Content: processed.Text,
		Metadata: &pagemark.ExtractMetadata{
			Title:           result.Metadata.Title,
			ContentHTML:     contentHTML,
			OriginalLength:  len(text),
			ProcessedLength: len(processed.Text),
			Language:        processed.Language,
			Structure:       processed.Structure,
			Quality:         validation.Quality,
			ExtractedAt:     time.Now().UTC(),
			Source:          pagemark.SourceTrafilatura,
			Confidence:      confidence,
		},
	}, nil
}

// metaFallback degrades to the page's own metadata, mirroring the
// metadata tier of the native engine's fallback chain.
func metaFallback(title, description string) *pagemark.FallbackResult {
	parts := make([]string, 0, 2)
	if title = strings.TrimSpace(title); title != "" {
		parts = append(parts, title)
	}
	if description = strings.TrimSpace(description); description != "" {
		parts = append(parts, description)
	}
	return &pagemark.FallbackResult{
		Content: strings.Join(parts, " "),
		Source:  pagemark.SourceFallbackMeta,
		Quality: 0.1,
	}
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
