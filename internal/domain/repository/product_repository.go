package repository

import (
	"context"

	"electric/internal/domain/entity"
)

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves every product document in storage-native order.
	List(ctx context.Context) ([]entity.Document, error)

	// FindByID retrieves a single product by its generated identity.
	// Returns ErrNotFound when no product matches.
	FindByID(ctx context.Context, id string) (entity.Document, error)

	// Insert persists the document verbatim and returns the storage
	// acknowledgement carrying the generated identity.
	Insert(ctx context.Context, doc entity.Document) (*InsertResult, error)

	// DeleteByID removes the single product matching the identity.
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}
