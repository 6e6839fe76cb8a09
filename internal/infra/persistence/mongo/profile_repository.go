package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// profileRepository implements repository.ProfileRepository.
type profileRepository struct {
	coll *mongo.Collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{coll: db.Collection(collectionProfile)}
}

// FindByEmail retrieves the single profile for the email.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (entity.Document, error) {
	return findOne(ctx, repo.coll, bson.M{entity.FieldEmail: email})
}

// UpsertByEmail shallow-merges fields into the profile for the email,
// creating it if absent.
func (repo *profileRepository) UpsertByEmail(ctx context.Context, email string, fields entity.Document) (*repository.UpdateResult, error) {
	return mergeOne(ctx, repo.coll, bson.M{entity.FieldEmail: email}, fields)
}
