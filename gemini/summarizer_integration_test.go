//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestSummarizer_Integration_ReturnsSummary(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	summarizer := gemini.NewSummarizer(client)

	text := "The city council voted on Tuesday to approve the riverside bike lane plan. " +
		"Construction starts in March and is expected to take six months. " +
		"Local businesses raised concerns about parking, which the plan addresses " +
		"by converting two side streets to resident permit zones."

	summary, err := summarizer.Summarize(ctx, text, pagemark.SummaryOptions{
		Style:     pagemark.StyleBrief,
		MaxLength: 400,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	assert.Contains(t, summary, "bike")
}
