package repository

import (
	"context"

	"electric/internal/domain/entity"
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// List retrieves every order document.
	List(ctx context.Context) ([]entity.Document, error)

	// ListByEmail retrieves the orders owned by the given email,
	// exact-match.
	ListByEmail(ctx context.Context, email string) ([]entity.Document, error)

	// FindByID retrieves a single order by its generated identity.
	// Returns ErrNotFound when no order matches.
	FindByID(ctx context.Context, id string) (entity.Document, error)

	// Insert persists the document verbatim.
	Insert(ctx context.Context, doc entity.Document) (*InsertResult, error)

	// MergeByID shallow-merges fields into the order matching the
	// identity, creating it if absent.
	MergeByID(ctx context.Context, id string, fields entity.Document) (*UpdateResult, error)

	// DeleteByID removes the single order matching the identity.
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}
