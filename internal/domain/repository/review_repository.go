package repository

import (
	"context"

	"electric/internal/domain/entity"
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// List retrieves every review document.
	List(ctx context.Context) ([]entity.Document, error)

	// Insert persists the document verbatim.
	Insert(ctx context.Context, doc entity.Document) (*InsertResult, error)
}
