package usecase

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
)

// ReviewUsecase covers the review routes.
type ReviewUsecase interface {
	// ListReviews returns every review document.
	ListReviews(ctx context.Context) ([]entity.Document, error)

	// CreateReview stores the document verbatim.
	CreateReview(ctx context.Context, doc entity.Document) (*repository.InsertResult, error)
}
