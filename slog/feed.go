package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemark"
)

// Ensure LoggingFeedService implements pagemark.FeedService.
var _ pagemark.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   pagemark.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next pagemark.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// Entries delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) Entries(ctx context.Context, feedURL string, filter *pagemark.EntryFilter) (entries []pagemark.FeedEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed fetch",
			"url", feedURL,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx, feedURL, filter)
}
