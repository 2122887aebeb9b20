package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

var _ pagemark.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of pagemark.FeedService.
type FeedService struct {
	EntriesFn func(ctx context.Context, feedURL string, filter *pagemark.EntryFilter) ([]pagemark.FeedEntry, error)
}

func (s *FeedService) Entries(ctx context.Context, feedURL string, filter *pagemark.EntryFilter) ([]pagemark.FeedEntry, error) {
	return s.EntriesFn(ctx, feedURL, filter)
}
