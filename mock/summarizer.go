package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var (
	_ pagemark.Summarizer   = (*Summarizer)(nil)
	_ pagemark.TokenCounter = (*TokenCounter)(nil)
)

// Summarizer is a mock implementation of pagemark.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, opts pagemark.SummaryOptions) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, opts pagemark.SummaryOptions) (string, error) {
	return s.SummarizeFn(ctx, text, opts)
}

// TokenCounter is a mock implementation of pagemark.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}
