package pagemark

import (
	"context"
	"time"
)

// Collection represents a named group of saved pages.
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	return nil
}

// CollectionService represents a service for managing collections.
type CollectionService interface {
	// CreateCollection creates a new collection.
	// Returns ECONFLICT if a collection with the same name exists.
	CreateCollection(ctx context.Context, collection *Collection) error

	// FindCollectionByID retrieves a collection by ID.
	// Returns ENOTFOUND if collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollectionByName retrieves a collection by its exact name.
	// Returns ENOTFOUND if collection does not exist.
	FindCollectionByName(ctx context.Context, name string) (*Collection, error)

	// FindCollections retrieves all collections, oldest first.
	FindCollections(ctx context.Context) ([]*Collection, error)

	// DeleteCollection permanently removes a collection. Pages in the
	// collection are kept and detached, not deleted.
	// Returns ENOTFOUND if collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}
