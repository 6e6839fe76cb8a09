package impl

import (
	"context"
	"log/slog"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviews repository.ReviewRepository
	logger  *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(reviews repository.ReviewRepository, logger *slog.Logger) usecase.ReviewUsecase {
	return &reviewService{
		reviews: reviews,
		logger:  logger,
	}
}

// ListReviews returns every review document.
func (srv *reviewService) ListReviews(ctx context.Context) ([]entity.Document, error) {
	docs, err := srv.reviews.List(ctx)
	if err != nil {
		return nil, classify(err, "failed to list reviews")
	}

	return docs, nil
}

// CreateReview stores the customer feedback verbatim.
func (srv *reviewService) CreateReview(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	result, err := srv.reviews.Insert(ctx, doc)
	if err != nil {
		return nil, classify(err, "failed to insert review")
	}

	return result, nil
}
