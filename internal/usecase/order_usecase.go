package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
)

// OrderUsecase covers the order routes.
type OrderUsecase interface {
	// ListOrders returns the orders owned by email, or every order when
	// email is empty.
	ListOrders(ctx context.Context, email string) ([]entity.Document, error)

	// GetOrder returns the order with the given identity, or nil when none
	// matches (including after a delete).
	GetOrder(ctx context.Context, id string) (entity.Document, error)

	// CreateOrder stores the document verbatim.
	CreateOrder(ctx context.Context, doc entity.Document) (*repository.InsertResult, error)

	// MergeOrder shallow-merges fields into the order with the given
	// identity, creating it if absent.
	MergeOrder(ctx context.Context, id string, fields entity.Document) (*repository.UpdateResult, error)

	// DeleteOrder removes the order with the given identity.
	DeleteOrder(ctx context.Context, id string) (*repository.DeleteResult, error)
}
