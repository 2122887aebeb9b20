// Package gemini implements summarization and token counting using the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagemark"
	"google.golang.org/genai"
)

const model = "gemini-3-flash-preview"

// Ensure Summarizer implements pagemark.Summarizer at compile time.
var _ pagemark.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagemark.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize generates a summary of page text. Markdown input
// contributes its heading outline to the prompt.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts pagemark.SummaryOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "text required")
	}

	prompt := BuildSummaryPrompt(text, pagemark.Outline(text), opts)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagemark.Errorf(pagemark.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a careful summarizer of saved web pages. Summarize only what the page says. Do not add outside knowledge, opinions, or commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the user prompt containing the page text,
// its heading outline when one exists, and summary instructions.
// Zero-valued options are filled with defaults.
func BuildSummaryPrompt(text string, outline []pagemark.OutlineItem, opts pagemark.SummaryOptions) string {
	opts = opts.WithDefaults()

	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(text)
	sb.WriteString("\n</page>\n\n")

	if len(outline) > 0 {
		sb.WriteString("The page has this heading structure:\n")
		sb.WriteString(pagemark.FormatOutline(outline))
		sb.WriteString("\n\n")
	}

	switch opts.Style {
	case pagemark.StyleDetailed:
		sb.WriteString("Write a detailed summary of the page above, covering every major point.")
	case pagemark.StyleBullets:
		sb.WriteString("Summarize the page above as a short list of markdown bullet points.")
	default:
		sb.WriteString("Write a brief summary of the page above in a few sentences.")
	}

	fmt.Fprintf(&sb, " Keep the summary under %d characters.", opts.MaxLength)

	if opts.Language != "" {
		fmt.Fprintf(&sb, " Write the summary in %s.", languageName(opts.Language))
	} else {
		sb.WriteString(" Write the summary in the same language as the page.")
	}

	return sb.String()
}

// languageNames spells out the language detector's codes for prompts.
var languageNames = map[string]string{
	"ko": "Korean",
	"zh": "Chinese",
	"ja": "Japanese",
	"en": "English",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
