package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements repository.ProductRepository.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(collectionProduct)}
}

// List retrieves every product document in storage-native order.
func (repo *productRepository) List(ctx context.Context) ([]entity.Document, error) {
	return findAll(ctx, repo.coll, bson.M{})
}

// FindByID retrieves a single product by its generated identity.
func (repo *productRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return findOne(ctx, repo.coll, bson.M{"_id": oid})
}

// Insert persists the document verbatim.
func (repo *productRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	return insertOne(ctx, repo.coll, doc)
}

// DeleteByID removes the single product matching the identity.
func (repo *productRepository) DeleteByID(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return deleteOne(ctx, repo.coll, bson.M{"_id": oid})
}
