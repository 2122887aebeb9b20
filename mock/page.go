package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var (
	_ pagemark.PageService   = (*PageService)(nil)
	_ pagemark.SearchService = (*SearchService)(nil)
	_ pagemark.Exporter      = (*Exporter)(nil)
)

// PageService is a mock implementation of pagemark.PageService.
type PageService struct {
	CreatePageFn    func(ctx context.Context, page *pagemark.SavedPage) error
	FindPageByIDFn  func(ctx context.Context, id string) (*pagemark.SavedPage, error)
	FindPageByURLFn func(ctx context.Context, url string) (*pagemark.SavedPage, error)
	FindPagesFn     func(ctx context.Context, filter pagemark.PageFilter) ([]*pagemark.SavedPage, error)
	UpdatePageFn    func(ctx context.Context, id string, upd pagemark.PageUpdate) (*pagemark.SavedPage, error)
	DeletePageFn    func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *pagemark.SavedPage) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagemark.SavedPage, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*pagemark.SavedPage, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) FindPages(ctx context.Context, filter pagemark.PageFilter) ([]*pagemark.SavedPage, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagemark.PageUpdate) (*pagemark.SavedPage, error) {
	return s.UpdatePageFn(ctx, id, upd)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}

// SearchService is a mock implementation of pagemark.SearchService.
type SearchService struct {
	SearchPagesFn func(ctx context.Context, query string, limit int) ([]*pagemark.PageMatch, error)
}

func (s *SearchService) SearchPages(ctx context.Context, query string, limit int) ([]*pagemark.PageMatch, error) {
	return s.SearchPagesFn(ctx, query, limit)
}

// Exporter is a mock implementation of pagemark.Exporter.
type Exporter struct {
	SaveFn   func(ctx context.Context, page *pagemark.SavedPage) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *Exporter) Save(ctx context.Context, page *pagemark.SavedPage) error {
	return e.SaveFn(ctx, page)
}

func (e *Exporter) Commit() error {
	return e.CommitFn()
}

func (e *Exporter) Abort() error {
	return e.AbortFn()
}
