package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	summarizer := gemini.NewSummarizer(nil) // nil client ok for this test

	_, err := summarizer.Summarize(context.Background(), "", pagemark.SummaryOptions{})

	require.Error(t, err)
	assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	assert.Contains(t, pagemark.ErrorMessage(err), "text required")
}

func TestSummarizer_Summarize_ReturnsErrorWhenTextWhitespace(t *testing.T) {
	t.Parallel()

	summarizer := gemini.NewSummarizer(nil)

	_, err := summarizer.Summarize(context.Background(), "   \n\t  ", pagemark.SummaryOptions{})

	require.Error(t, err)
	assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "careful summarizer")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
}

func TestBuildSummaryPrompt_ContainsPageText(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("City council approves the new bike lane plan.", nil, pagemark.SummaryOptions{})

	assert.Contains(t, prompt, "<page>")
	assert.Contains(t, prompt, "City council approves the new bike lane plan.")
	assert.Contains(t, prompt, "</page>")
}

func TestBuildSummaryPrompt_IncludesHeadingOutline(t *testing.T) {
	t.Parallel()

	outline := []pagemark.OutlineItem{
		{Level: 1, Title: "Understanding Go"},
		{Level: 2, Title: "Goroutines"},
	}
	prompt := gemini.BuildSummaryPrompt("# Understanding Go\n\nBody.", outline, pagemark.SummaryOptions{})

	assert.Contains(t, prompt, "heading structure")
	assert.Contains(t, prompt, "- Understanding Go")
	assert.Contains(t, prompt, "  - Goroutines")
}

func TestBuildSummaryPrompt_OmitsOutlineWhenEmpty(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Plain text with no headings.", nil, pagemark.SummaryOptions{})

	assert.NotContains(t, prompt, "heading structure")
}

func TestBuildSummaryPrompt_DefaultsToBriefStyle(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{})

	assert.Contains(t, prompt, "brief summary")
	assert.Contains(t, prompt, "under 1024 characters")
}

func TestBuildSummaryPrompt_UsesStyleInstructions(t *testing.T) {
	t.Parallel()

	detailed := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{Style: pagemark.StyleDetailed})
	assert.Contains(t, detailed, "detailed summary")

	bullets := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{Style: pagemark.StyleBullets})
	assert.Contains(t, bullets, "bullet points")
}

func TestBuildSummaryPrompt_UsesMaxLength(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{MaxLength: 500})

	assert.Contains(t, prompt, "under 500 characters")
}

func TestBuildSummaryPrompt_SpellsOutKnownLanguageCodes(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{Language: "ko"})

	assert.Contains(t, prompt, "Write the summary in Korean.")
}

func TestBuildSummaryPrompt_PassesThroughUnknownLanguages(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{Language: "Polish"})

	assert.Contains(t, prompt, "Write the summary in Polish.")
}

func TestBuildSummaryPrompt_DefaultsToSourceLanguage(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{})

	assert.Contains(t, prompt, "same language as the page")
}

func TestBuildSummaryPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some page text.", nil, pagemark.SummaryOptions{})

	assert.NotContains(t, prompt, "careful summarizer")
}
