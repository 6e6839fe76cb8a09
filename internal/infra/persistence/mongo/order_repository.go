package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRepository implements repository.OrderRepository.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(collectionOrder)}
}

// List retrieves every order document.
func (repo *orderRepository) List(ctx context.Context) ([]entity.Document, error) {
	return findAll(ctx, repo.coll, bson.M{})
}

// ListByEmail retrieves the orders owned by the given email.
func (repo *orderRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	return findAll(ctx, repo.coll, bson.M{entity.FieldEmail: email})
}

// FindByID retrieves a single order by its generated identity.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return findOne(ctx, repo.coll, bson.M{"_id": oid})
}

// Insert persists the document verbatim.
func (repo *orderRepository) Insert(ctx context.Context, doc entity.Document) (*repository.InsertResult, error) {
	return insertOne(ctx, repo.coll, doc)
}

// MergeByID shallow-merges fields into the order matching the identity,
// creating it if absent.
func (repo *orderRepository) MergeByID(ctx context.Context, id string, fields entity.Document) (*repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return mergeOne(ctx, repo.coll, bson.M{"_id": oid}, fields)
}

// DeleteByID removes the single order matching the identity.
func (repo *orderRepository) DeleteByID(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return deleteOne(ctx, repo.coll, bson.M{"_id": oid})
}
