package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemark.CollectionService = (*CollectionService)(nil)

// CollectionService implements pagemark.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection. Collection names are unique.
func (s *CollectionService) CreateCollection(ctx context.Context, collection *pagemark.Collection) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	if _, err := s.FindCollectionByName(ctx, collection.Name); err == nil {
		return pagemark.Errorf(pagemark.ECONFLICT, "collection %q already exists", collection.Name)
	} else if pagemark.ErrorCode(err) != pagemark.ENOTFOUND {
		return err
	}

	collection.ID = uuid.New().String()
	collection.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, created_at)
		VALUES (?, ?, ?)
	`, collection.ID, collection.Name, formatTime(collection.CreatedAt))

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*pagemark.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM collections
		WHERE id = ?
	`, id)

	return scanCollection(row)
}

// FindCollectionByName retrieves a collection by its exact name.
func (s *CollectionService) FindCollectionByName(ctx context.Context, name string) (*pagemark.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM collections
		WHERE name = ?
	`, name)

	return scanCollection(row)
}

func scanCollection(row *sql.Row) (*pagemark.Collection, error) {
	var collection pagemark.Collection
	var createdAt string

	err := row.Scan(&collection.ID, &collection.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return nil, err
	}

	collection.CreatedAt, err = parseTime("created_at", createdAt)
	if err != nil {
		return nil, err
	}

	return &collection, nil
}

// FindCollections retrieves all collections, oldest first.
func (s *CollectionService) FindCollections(ctx context.Context) ([]*pagemark.Collection, error) {
	// created_at has second precision, so rowid breaks ties between
	// collections created within the same second.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM collections
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*pagemark.Collection
	for rows.Next() {
		var collection pagemark.Collection
		var createdAt string

		if err := rows.Scan(&collection.ID, &collection.Name, &createdAt); err != nil {
			return nil, err
		}

		collection.CreatedAt, err = parseTime("created_at", createdAt)
		if err != nil {
			return nil, err
		}

		collections = append(collections, &collection)
	}

	return collections, rows.Err()
}

// DeleteCollection permanently removes a collection. Pages in the
// collection are detached by the ON DELETE SET NULL constraint, not
// deleted.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagemark.Errorf(pagemark.ENOTFOUND, "collection not found")
	}

	return nil
}
