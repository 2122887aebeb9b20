package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pagemark"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultTokenizerModel is the model whose tokenizer is used for
// counting. The summarization model is not yet supported by
// google.golang.org/genai/tokenizer, so counts are approximate.
const DefaultTokenizerModel = "gemini-2.5-flash"

var _ pagemark.TokenCounter = (*TokenCounter)(nil)

// TokenCounter reports how many tokens a page's text would occupy in a
// summarization request. Counting runs locally, no API call is made.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for the given model. An empty
// model selects DefaultTokenizerModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultTokenizerModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens in text. Text with no content, such as
// a page whose extraction came up empty, counts as zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
