package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reviewRepository implements repository.ReviewRepository.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(collectionReview)}
}

// List retrieves every review document.
func (repo *reviewRepository) List(ctx context.Context) ([]entity.Document, error) {
	return findAll(ctx, repo.coll, bson.M{})
}

// Insert persists the document verbatim.
func (repo *reviewRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	return insertOne(ctx, repo.coll, doc)
}
