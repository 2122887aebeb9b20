package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagemark"
	main "github.com/fwojciec/pagemark/cmd/pagemark"
	"github.com/fwojciec/pagemark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("summarizes the stored markdown and persists the summary", func(t *testing.T) {
		t.Parallel()

		page := testPage()
		var updatedID string
		var update pagemark.PageUpdate
		pages := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, _ string) (*pagemark.SavedPage, error) {
				return page, nil
			},
			UpdatePageFn: func(_ context.Context, id string, upd pagemark.PageUpdate) (*pagemark.SavedPage, error) {
				updatedID = id
				update = upd
				return page, nil
			},
		}

		var gotOpts pagemark.SummaryOptions
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, text string, opts pagemark.SummaryOptions) (string, error) {
				assert.Equal(t, page.Content, text)
				gotOpts = opts
				return "A fresh summary.", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Pages:      pages,
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{
			Ref:       "page-123",
			Style:     "bullets",
			Lang:      "en",
			MaxLength: 500,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, pagemark.StyleBullets, gotOpts.Style)
		assert.Equal(t, "en", gotOpts.Language)
		assert.Equal(t, 500, gotOpts.MaxLength)

		assert.Equal(t, "page-123", updatedID)
		require.NotNil(t, update.Summary)
		assert.Equal(t, "A fresh summary.", *update.Summary)
		assert.Contains(t, stdout.String(), "A fresh summary.")
	})

	t.Run("falls back to plain text when no markdown is stored", func(t *testing.T) {
		t.Parallel()

		page := testPage()
		page.Content = ""
		pages := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, _ string) (*pagemark.SavedPage, error) {
				return page, nil
			},
			UpdatePageFn: func(_ context.Context, _ string, _ pagemark.PageUpdate) (*pagemark.SavedPage, error) {
				return page, nil
			},
		}

		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, text string, _ pagemark.SummaryOptions) (string, error) {
				assert.Equal(t, page.Text, text)
				return "A fresh summary.", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Pages:      pages,
			Summarizer: summarizer,
		}

		err := (&main.SummarizeCmd{Ref: "page-123"}).Run(deps)

		require.NoError(t, err)
	})

	t.Run("returns error for an unknown page", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, _ string) (*pagemark.SavedPage, error) {
				return nil, pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pages,
		}

		cmd := &main.SummarizeCmd{Ref: "missing-id"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemark.ENOTFOUND, pagemark.ErrorCode(err))
	})

	t.Run("returns error when summarization fails", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, _ string) (*pagemark.SavedPage, error) {
				return testPage(), nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, _ string, _ pagemark.SummaryOptions) (string, error) {
				return "", pagemark.Errorf(pagemark.EINTERNAL, "model unavailable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Pages:      pages,
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{Ref: "page-123"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
