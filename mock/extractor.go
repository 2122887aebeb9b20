package mock

import (
	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var (
	_ pagemark.ContentExtractor = (*ContentExtractor)(nil)
	_ pagemark.Converter        = (*Converter)(nil)
)

// ContentExtractor is a mock implementation of pagemark.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string, cfg pagemark.ExtractConfig) (*pagemark.ExtractionResult, error)
}

func (e *ContentExtractor) Extract(html string, cfg pagemark.ExtractConfig) (*pagemark.ExtractionResult, error) {
	return e.ExtractFn(html, cfg)
}

// Converter is a mock implementation of pagemark.Converter.
type Converter struct {
	ConvertFn func(html, pageURL string) (string, error)
}

func (c *Converter) Convert(html, pageURL string) (string, error) {
	return c.ConvertFn(html, pageURL)
}
