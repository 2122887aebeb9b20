package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

var _ pagemark.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of pagemark.CollectionService.
type CollectionService struct {
	CreateCollectionFn     func(ctx context.Context, collection *pagemark.Collection) error
	FindCollectionByIDFn   func(ctx context.Context, id string) (*pagemark.Collection, error)
	FindCollectionByNameFn func(ctx context.Context, name string) (*pagemark.Collection, error)
	FindCollectionsFn      func(ctx context.Context) ([]*pagemark.Collection, error)
	DeleteCollectionFn     func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, collection *pagemark.Collection) error {
	return s.CreateCollectionFn(ctx, collection)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*pagemark.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollectionByName(ctx context.Context, name string) (*pagemark.Collection, error) {
	return s.FindCollectionByNameFn(ctx, name)
}

func (s *CollectionService) FindCollections(ctx context.Context) ([]*pagemark.Collection, error) {
	return s.FindCollectionsFn(ctx)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}
