package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemark"
	main "github.com/fwojciec/pagemark/cmd/pagemark"
	"github.com/fwojciec/pagemark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPage returns a fully populated page served by the page mocks.
func testPage() *pagemark.SavedPage {
	return &pagemark.SavedPage{
		ID:        "page-123",
		URL:       "https://example.com/go-post",
		Title:     "Understanding Go",
		Content:   "# Understanding Go\n\nIntro text.\n\n## Goroutines\n\nBody.",
		Text:      "Understanding Go. Intro text. Goroutines. Body.",
		Summary:   "An introduction to Go concurrency.",
		Language:  "en",
		Source:    pagemark.SourceSemantic,
		Quality:   0.9,
		WordCount: 8,
		SavedAt:   time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC),
	}
}

func pageByID(page *pagemark.SavedPage) *mock.PageService {
	return &mock.PageService{
		FindPageByIDFn: func(_ context.Context, id string) (*pagemark.SavedPage, error) {
			if id != page.ID {
				return nil, pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
			}
			return page, nil
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows header, summary, and content by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123"}}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Understanding Go")
		assert.Contains(t, output, "https://example.com/go-post")
		assert.Contains(t, output, "2025-01-08")
		assert.Contains(t, output, "An introduction to Go concurrency.")
		assert.Contains(t, output, "## Goroutines")
	})

	t.Run("summary flag prints only the summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123"}, Summary: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "An introduction to Go concurrency.\n", stdout.String())
	})

	t.Run("summary flag explains when no summary exists", func(t *testing.T) {
		t.Parallel()

		page := testPage()
		page.Summary = ""

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(page),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123"}, Summary: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No summary")
		assert.Contains(t, stdout.String(), "pagemark summarize")
	})

	t.Run("outline flag prints the heading outline", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123"}, Outline: true}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "- Understanding Go")
		assert.Contains(t, output, "  - Goroutines")
	})

	t.Run("text flag prints the extracted text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123"}, Text: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Understanding Go. Intro text. Goroutines. Body.\n", stdout.String())
	})

	t.Run("resolves URL references via FindPageByURL", func(t *testing.T) {
		t.Parallel()

		page := testPage()
		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*pagemark.SavedPage, error) {
				assert.Equal(t, "https://example.com/go-post", url)
				return page, nil
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

		cmd := &main.ShowCmd{Refs: []string{"https://example.com/go-post"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Understanding Go")
	})

	t.Run("returns ENOTFOUND for an unknown page", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"missing-id"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemark.ENOTFOUND, pagemark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("prints multiple pages as one block", func(t *testing.T) {
		t.Parallel()

		first := testPage()
		second := testPage()
		second.ID = "page-456"
		second.Title = "Channels in Go"
		second.Content = "# Channels in Go\n\nChannel body."
		pages := &mock.PageService{
			FindPageByIDFn: func(_ context.Context, id string) (*pagemark.SavedPage, error) {
				if id == second.ID {
					return second, nil
				}
				return first, nil
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

		cmd := &main.ShowCmd{Refs: []string{"page-123", "page-456"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Page: Understanding Go")
		assert.Contains(t, output, "## Page: Channels in Go")
		assert.Contains(t, output, "Channel body.")
	})

	t.Run("rejects view flags with multiple pages", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pageByID(testPage()),
		}

		cmd := &main.ShowCmd{Refs: []string{"page-123", "page-456"}, Outline: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})
}
