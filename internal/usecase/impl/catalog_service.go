package impl

import (
	"context"
	"log/slog"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/errors"
	"electric/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// ListProducts returns every product document.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Document, error) {
	docs, err := srv.products.List(ctx)
	if err != nil {
		return nil, classify(err, "failed to list products")
	}

	return docs, nil
}

// GetProduct returns the product with the given identity, or nil when none
// matches.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (entity.Document, error) {
	doc, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}

		return nil, classify(err, "failed to find product")
	}

	return doc, nil
}

// CreateProduct stores the document verbatim.
func (srv *catalogService) CreateProduct(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	result, err := srv.products.Insert(ctx, doc)
	if err != nil {
		return nil, classify(err, "failed to insert product")
	}

	srv.logger.Info("Product created", slog.String("id", result.InsertedID))

	return result, nil
}

// DeleteProduct removes the product with the given identity.
func (srv *catalogService) DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error) {
	result, err := srv.products.DeleteByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to delete product")
	}

	return result, nil
}
