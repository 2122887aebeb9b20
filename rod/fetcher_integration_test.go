//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/goquery"
	"github.com/fwojciec/pagemark/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_ClientRenderedPage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	// react.dev only renders its content after JavaScript execution, so a
	// plain HTTP fetch would return an empty shell.
	html, err := fetcher.Fetch(ctx, "https://react.dev/learn")
	require.NoError(t, err)
	require.NotEmpty(t, html)

	lower := strings.TrimSpace(strings.ToLower(html))
	assert.True(t, strings.HasPrefix(lower, "<!doctype html>") || strings.HasPrefix(lower, "<html"),
		"expected a serialized HTML document")
	assert.Contains(t, html, "Quick Start", "hydrated page title should be present")

	// The serialized DOM has to be minable, not just structurally valid.
	result, err := goquery.NewExtractor().Extract(html, pagemark.ExtractConfig{})
	require.NoError(t, err)
	require.True(t, result.Success, "extraction should succeed on the rendered page")
	assert.Contains(t, result.Content, "components")
}
