// Package usecase defines the application-facing contracts of the service.
// Every operation is a single storage or gateway call; there is no
// cross-collection orchestration.
package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
)

// CatalogUsecase covers the product routes.
type CatalogUsecase interface {
	// ListProducts returns every product document.
	ListProducts(ctx context.Context) ([]entity.Document, error)

	// GetProduct returns the product with the given identity, or nil when
	// none matches.
	GetProduct(ctx context.Context, id string) (entity.Document, error)

	// CreateProduct stores the document verbatim.
	CreateProduct(ctx context.Context, doc entity.Document) (*repository.InsertResult, error)

	// DeleteProduct removes the product with the given identity.
	DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error)
}
