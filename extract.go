package pagemark

import "time"

// Default extraction configuration values.
const (
	DefaultMaxContentLength = 8000
	DefaultMinContentLength = 100
	DefaultMaxParagraphs    = 20
)

// ExtractConfig controls content extraction and processing. The zero value
// uses the defaults: numeric fields at zero are replaced by the package
// defaults, and headings, lists, and quotes are included unless their Omit
// flag is set.
type ExtractConfig struct {
	// MaxContentLength bounds the processed text length in bytes.
	MaxContentLength int `json:"maxContentLength"`

	// MinContentLength is the minimum text length considered valid.
	MinContentLength int `json:"minContentLength"`

	// MaxParagraphs caps the number of extracted paragraphs.
	MaxParagraphs int `json:"maxParagraphs"`

	// OmitHeadings drops the "Main Topics" section from the output.
	OmitHeadings bool `json:"omitHeadings"`

	// OmitLists drops the "Key Points" section from the output.
	OmitLists bool `json:"omitLists"`

	// OmitQuotes drops the "Notable Quotes" section from the output.
	OmitQuotes bool `json:"omitQuotes"`
}

// WithDefaults returns a copy of the config with zero-valued numeric
// fields replaced by the package defaults.
func (c ExtractConfig) WithDefaults() ExtractConfig {
	if c.MaxContentLength == 0 {
		c.MaxContentLength = DefaultMaxContentLength
	}
	if c.MinContentLength == 0 {
		c.MinContentLength = DefaultMinContentLength
	}
	if c.MaxParagraphs == 0 {
		c.MaxParagraphs = DefaultMaxParagraphs
	}
	return c
}

// ContentSource identifies how a piece of content was produced: which
// locator strategy won, which alternate engine ran, or which fallback
// tier was used.
type ContentSource string

// Locator strategy sources.
const (
	SourceSemantic  ContentSource = "semantic"
	SourceScoring   ContentSource = "scoring"
	SourceDensity   ContentSource = "density"
	SourceStructure ContentSource = "structure"
)

// Alternate engine sources.
const (
	SourceReadability ContentSource = "readability"
	SourceTrafilatura ContentSource = "trafilatura"
)

// Fallback tier sources, in decreasing quality order.
const (
	SourceFallbackBody  ContentSource = "fallback-body"
	SourceFallbackMeta  ContentSource = "fallback-meta"
	SourceFallbackError ContentSource = "fallback-error"
)

// Heading is a heading extracted from the content region.
type Heading struct {
	Level     int    `json:"level"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// Paragraph is a paragraph extracted from the content region.
type Paragraph struct {
	Text          string `json:"text"`
	WordCount     int    `json:"wordCount"`
	SentenceCount int    `json:"sentenceCount"`
}

// ListType distinguishes ordered from unordered lists.
type ListType string

// ListType constants.
const (
	ListOrdered   ListType = "ordered"
	ListUnordered ListType = "unordered"
)

// ListBlock is a list extracted from the content region.
type ListBlock struct {
	Type  ListType `json:"type"`
	Items []string `json:"items"`
}

// Quote is a quotation extracted from the content region. Type records
// the element it came from (blockquote, q, or a quote-classed element).
type Quote struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// ImageDescription describes an image via its alt text and, when
// discoverable, an accompanying caption.
type ImageDescription struct {
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// StructureStats summarizes the structural richness of extracted content.
type StructureStats struct {
	HeadingCount      int     `json:"headingCount"`
	ParagraphCount    int     `json:"paragraphCount"`
	ListCount         int     `json:"listCount"`
	QuoteCount        int     `json:"quoteCount"`
	ImageCount        int     `json:"imageCount"`
	HasHierarchy      bool    `json:"hasHierarchy"`
	AvgParagraphWords float64 `json:"avgParagraphWords"`
	TotalWords        int     `json:"totalWords"`
}

// StructuredContent is the typed decomposition of a content region.
// It is built once per extraction and read-only thereafter.
type StructuredContent struct {
	Headings       []Heading          `json:"headings"`
	Paragraphs     []Paragraph        `json:"paragraphs"`
	Lists          []ListBlock        `json:"lists"`
	Quotes         []Quote            `json:"quotes"`
	Images         []ImageDescription `json:"images"`
	OriginalLength int                `json:"originalLength"`
	Structure      StructureStats     `json:"structure"`
}

// ProcessedContent is the assembled, normalized, length-bounded text
// derived from StructuredContent plus configuration.
type ProcessedContent struct {
	Text      string         `json:"text"`
	Language  string         `json:"language"`
	Structure StructureStats `json:"structure"`
	WordCount int            `json:"wordCount"`
}

// ValidationResult reports whether processed content meets the minimum
// thresholds for summarization.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Quality  float64  `json:"quality"`
}

// ExtractMetadata describes a successful extraction.
type ExtractMetadata struct {
	// Title is the page title from metadata (title tag, og:title, etc.).
	Title string `json:"title"`

	// ContentHTML is the HTML of the winning content region, suitable
	// for markdown conversion. Not part of the serialized record.
	ContentHTML string `json:"-"`

	OriginalLength  int            `json:"originalLength"`
	ProcessedLength int            `json:"processedLength"`
	Language        string         `json:"language"`
	Structure       StructureStats `json:"structure"`
	Quality         float64        `json:"quality"`
	ExtractedAt     time.Time      `json:"extractedAt"`
	Source          ContentSource  `json:"source"`
	Confidence      float64        `json:"confidence"`
}

// FallbackResult is the degraded output produced when the primary
// extraction pipeline fails.
type FallbackResult struct {
	Content string        `json:"content"`
	Source  ContentSource `json:"source"`
	Quality float64       `json:"quality"`
}

// ExtractionResult is the terminal output of a content extraction.
// On success, Content holds the processed text and Metadata is set.
// On failure, Error describes what went wrong and Fallback holds the
// best degraded content available.
type ExtractionResult struct {
	Success  bool             `json:"success"`
	Content  string           `json:"content,omitempty"`
	Metadata *ExtractMetadata `json:"metadata,omitempty"`
	Error    string           `json:"error,omitempty"`
	Fallback *FallbackResult  `json:"fallback,omitempty"`
}

// ContentExtractor extracts the main content of an HTML document.
type ContentExtractor interface {
	// Extract locates the main content region, pulls structured elements
	// out of it, and processes them into a clean, length-bounded text.
	//
	// An error is returned only when the input cannot be parsed at all.
	// Heuristic failures (no content region found, extraction below
	// quality thresholds) return a result with Success false and a
	// populated Fallback; callers should use the fallback content rather
	// than failing the overall operation.
	Extract(html string, cfg ExtractConfig) (*ExtractionResult, error)
}
