package pagemark

import "context"

// SummaryStyle selects the shape of a generated summary.
type SummaryStyle string

// SummaryStyle constants.
const (
	StyleBrief    SummaryStyle = "brief"
	StyleDetailed SummaryStyle = "detailed"
	StyleBullets  SummaryStyle = "bullets"
)

// DefaultSummaryMaxLength bounds summary length in characters when no
// explicit limit is configured.
const DefaultSummaryMaxLength = 1024

// SummaryOptions controls summary generation.
type SummaryOptions struct {
	// MaxLength bounds the summary in characters. Zero means the default.
	MaxLength int `json:"maxLength"`

	// Language is the language the summary should be written in.
	// Empty means "same language as the source text".
	Language string `json:"language"`

	// Style selects brief, detailed, or bullet form. Empty means brief.
	Style SummaryStyle `json:"style"`
}

// WithDefaults returns a copy of the options with zero values filled in.
func (o SummaryOptions) WithDefaults() SummaryOptions {
	if o.MaxLength == 0 {
		o.MaxLength = DefaultSummaryMaxLength
	}
	if o.Style == "" {
		o.Style = StyleBrief
	}
	return o
}

// Summarizer produces a summary of extracted page text.
type Summarizer interface {
	// Summarize generates a summary of text according to the options.
	// Returns EINVALID if text is empty.
	Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error)
}

// TokenCounter estimates what a page's text costs in model tokens,
// shown alongside word counts when pages are saved.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
