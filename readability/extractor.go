// Package readability implements content extraction backed by the
// go-readability port of Mozilla's Readability algorithm. It is an
// alternative to the native goquery engine for pages that algorithm
// handles better.
package readability

import (
	"strings"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemark.ContentExtractor at compile time.
var _ pagemark.ContentExtractor = (*Extractor)(nil)

// confidence is fixed per engine: readability does not expose a score.
const confidence = 0.8

// Extractor extracts main content using go-readability.
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

	// The library reports "no readable content" as an error, so library
	// failures degrade to a fallback result instead of propagating.
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "readability: " + err.Error(),
			Fallback: metaFallback("", ""),
		}, nil
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "readability found no content",
			Fallback: metaFallback(article.Title, article.Excerpt),
		}, nil
	}

	processed := pagemark.ProcessText(text, cfg)
	validation := pagemark.ValidateContent(processed, cfg)
	if !validation.IsValid {
		return &pagemark.ExtractionResult{
			Success:  false,
			Error:    "content failed validation: " + strings.Join(validation.Issues, "; "),
			Fallback: metaFallback(article.Title, article.Excerpt),
		}, nil
	}

	return &pagemark.ExtractionResult{
		Success: true,
		Content: processed.Text,
		Metadata: &pagemark.ExtractMetadata{
			Title:           article.Title,
			ContentHTML:     article.Content,
			OriginalLength:  len(text),
			ProcessedLength: len(processed.Text),
			Language:        processed.Language,
			Structure:       processed.Structure,
			Quality:         validation.Quality,
			ExtractedAt:     time.Now().UTC(),
			Source:          pagemark.SourceReadability,
			Confidence:      confidence,
		},
	}, nil
}

// metaFallback degrades to the page's own metadata, mirroring the
// metadata tier of the native engine's fallback chain.
func metaFallback(title, excerpt string) *pagemark.FallbackResult {
	parts := make([]string, 0, 2)
	if title = strings.TrimSpace(title); title != "" {
		parts = append(parts, title)
	}
	if excerpt = strings.TrimSpace(excerpt); excerpt != "" {
		parts = append(parts, excerpt)
	}
	return &pagemark.FallbackResult{
		Content: strings.Join(parts, " "),
		Source:  pagemark.SourceFallbackMeta,
		Quality: 0.1,
	}
}
