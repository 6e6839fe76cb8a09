package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collectionUsers)}
}

// FindByEmail retrieves the single account for the email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (entity.Document, error) {
	return findOne(ctx, repo.coll, bson.M{entity.FieldEmail: email})
}

// List retrieves every account document.
func (repo *userRepository) List(ctx context.Context) ([]entity.Document, error) {
	return findAll(ctx, repo.coll, bson.M{})
}

// UpsertByEmail shallow-merges fields into the account for the email,
// creating it if absent.
func (repo *userRepository) UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	return mergeOne(ctx, repo.coll, bson.M{entity.FieldEmail: email}, fields)
}
