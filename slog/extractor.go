package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemark"
)

// Ensure LoggingExtractor implements pagemark.ContentExtractor.
var _ pagemark.ContentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContentExtractor with debug logging.
type LoggingExtractor struct {
	next   pagemark.ContentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemark.ContentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, cfg pagemark.ExtractConfig) (result *pagemark.ExtractionResult, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"success", result != nil && result.Success,
			"source", resultSource(result),
			"quality", resultQuality(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, cfg)
}

// resultSource returns the content source of a result, reading from the
// fallback when the primary pipeline failed.
func resultSource(result *pagemark.ExtractionResult) string {
	switch {
	case result == nil:
		return ""
	case result.Metadata != nil:
		return string(result.Metadata.Source)
	case result.Fallback != nil:
		return string(result.Fallback.Source)
	}
	return ""
}

// resultQuality returns the quality score of a result, reading from the
// fallback when the primary pipeline failed.
func resultQuality(result *pagemark.ExtractionResult) float64 {
	switch {
	case result == nil:
		return 0
	case result.Metadata != nil:
		return result.Metadata.Quality
	case result.Fallback != nil:
		return result.Fallback.Quality
	}
	return 0
}
