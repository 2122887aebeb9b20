package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemark"
	main "github.com/fwojciec/pagemark/cmd/pagemark"
	"github.com/fwojciec/pagemark/mock"
	"github.com/fwojciec/pagemark/save"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSaver builds a Saver whose pipeline collaborators are mocks.
// Saved pages are appended to the returned slice pointer.
func newTestSaver(saved *[]*pagemark.SavedPage) *save.Saver {
	return &save.Saver{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><article>Test content</article></body></html>", nil
			},
		},
		Extractor: &mock.ContentExtractor{
			ExtractFn: func(_ string, _ pagemark.ExtractConfig) (*pagemark.ExtractionResult, error) {
				return &pagemark.ExtractionResult{
					Success: true,
					Content: "Test content",
					Metadata: &pagemark.ExtractMetadata{
						Title:       "Test Page",
						ContentHTML: "<p>Test content</p>",
						Language:    "en",
						Quality:     0.8,
						Source:      pagemark.SourceSemantic,
					},
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(_, _ string) (string, error) {
				return "Test content", nil
			},
		},
		Pages: &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pagemark.SavedPage) error {
				*saved = append(*saved, page)
				return nil
			},
		},
		Concurrency: 1,
		RetryDelays: []time.Duration{},
	}
}

func TestSaveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves pages and prints summary line", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Saver:  newTestSaver(&saved),
		}

		cmd := &main.SaveCmd{
			URLs: []string{"https://example.com/post"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "https://example.com/post", saved[0].URL)
		assert.Equal(t, "Test Page", saved[0].Title)
		assert.Contains(t, stdout.String(), "Saved 1 pages")
	})

	t.Run("dry run prints extraction without persisting", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Saver:  newTestSaver(&saved),
		}

		cmd := &main.SaveCmd{
			URLs:      []string{"https://example.com/post"},
			SaveFlags: main.SaveFlags{DryRun: true},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, saved, "dry run must not persist pages")

		output := stdout.String()
		assert.Contains(t, output, "Test Page")
		assert.Contains(t, output, "semantic")
		assert.Contains(t, output, "0.80")
		assert.Contains(t, output, "Test content")
	})

	t.Run("files pages under the named collection", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		collections := &mock.CollectionService{
			FindCollectionByNameFn: func(_ context.Context, name string) (*pagemark.Collection, error) {
				return nil, pagemark.Errorf(pagemark.ENOTFOUND, "collection %q not found", name)
			},
			CreateCollectionFn: func(_ context.Context, collection *pagemark.Collection) error {
				collection.ID = "col-123"
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Saver:       newTestSaver(&saved),
			Collections: collections,
		}

		cmd := &main.SaveCmd{
			URLs:      []string{"https://example.com/post"},
			SaveFlags: main.SaveFlags{Collection: "reading"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "col-123", saved[0].CollectionID)
	})

	t.Run("reuses an existing collection", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		created := false
		collections := &mock.CollectionService{
			FindCollectionByNameFn: func(_ context.Context, name string) (*pagemark.Collection, error) {
				return &pagemark.Collection{ID: "col-existing", Name: name}, nil
			},
			CreateCollectionFn: func(_ context.Context, _ *pagemark.Collection) error {
				created = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Saver:       newTestSaver(&saved),
			Collections: collections,
		}

		cmd := &main.SaveCmd{
			URLs:      []string{"https://example.com/post"},
			SaveFlags: main.SaveFlags{Collection: "reading"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.False(t, created, "existing collection should be reused")
		require.Len(t, saved, 1)
		assert.Equal(t, "col-existing", saved[0].CollectionID)
	})

	t.Run("reports failed pages on stderr", func(t *testing.T) {
		t.Parallel()

		saver := &save.Saver{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", pagemark.Errorf(pagemark.ENOTFOUND, "page not found")
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Saver:  saver,
		}

		cmd := &main.SaveCmd{
			URLs: []string{"https://example.com/gone"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip")
		assert.Contains(t, stdout.String(), "1 pages failed")
	})
}
