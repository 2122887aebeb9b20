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

func TestFeedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves every feed entry", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, feedURL string, _ *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				assert.Equal(t, "https://example.com/feed.xml", feedURL)
				return []pagemark.FeedEntry{
					{URL: "https://example.com/post-1", Title: "Post 1"},
					{URL: "https://example.com/post-2", Title: "Post 2"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
			Saver:  newTestSaver(&saved),
		}

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Contains(t, stdout.String(), "Saved 2 pages")
	})

	t.Run("limit caps the number of entries saved", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, _ string, _ *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				return []pagemark.FeedEntry{
					{URL: "https://example.com/post-1"},
					{URL: "https://example.com/post-2"},
					{URL: "https://example.com/post-3"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
			Saver:  newTestSaver(&saved),
		}

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml", Limit: 1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 1)
		assert.Equal(t, "https://example.com/post-1", saved[0].URL)
	})

	t.Run("passes include and exclude patterns to the feed service", func(t *testing.T) {
		t.Parallel()

		var saved []*pagemark.SavedPage
		var gotFilter *pagemark.EntryFilter
		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, _ string, filter *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				gotFilter = filter
				return []pagemark.FeedEntry{{URL: "https://example.com/go-post"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
			Saver:  newTestSaver(&saved),
		}

		cmd := &main.FeedCmd{
			URL:     "https://example.com/feed.xml",
			Include: []string{"/go-"},
			Exclude: []string{"/draft-"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter)
		assert.Len(t, gotFilter.Include, 1)
		assert.Len(t, gotFilter.Exclude, 1)
	})

	t.Run("rejects invalid filter patterns before fetching", func(t *testing.T) {
		t.Parallel()

		fetched := false
		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, _ string, _ *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				fetched = true
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
		}

		cmd := &main.FeedCmd{
			URL:     "https://example.com/feed.xml",
			Include: []string{"["},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.False(t, fetched, "invalid pattern should fail before the feed is fetched")
		assert.Contains(t, stderr.String(), "invalid include pattern")
	})

	t.Run("reports when no entries matched", func(t *testing.T) {
		t.Parallel()

		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, _ string, _ *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
		}

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No feed entries matched")
	})

	t.Run("returns error when the URL is not a feed", func(t *testing.T) {
		t.Parallel()

		feeds := &mock.FeedService{
			EntriesFn: func(_ context.Context, _ string, _ *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
				return nil, pagemark.Errorf(pagemark.ENOTFOUND, "no feed found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Feeds:  feeds,
		}

		cmd := &main.FeedCmd{URL: "https://example.com/not-a-feed"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemark.ENOTFOUND, pagemark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
