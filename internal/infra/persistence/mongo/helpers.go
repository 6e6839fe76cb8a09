package mongo

import (
	"context"

	"electric/internal/domain/entity"
	"electric/internal/domain/repository"
	"electric/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// objectID parses a 24-hex identity string, mapping structurally invalid
// input to repository.ErrInvalidID instead of a driver error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}

// findAll runs a filter query and decodes every match. The result is never
// nil so an empty collection serializes as [] rather than null.
func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]entity.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", coll.Name())
	}
	defer cursor.Close(ctx)

	docs := make([]entity.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s documents", coll.Name())
	}

	return docs, nil
}

// findOne runs a single-document lookup, mapping a miss to
// repository.ErrNotFound.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (entity.Document, error) {
	var doc entity.Document
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to query %s", coll.Name())
	}

	return doc, nil
}

// insertOne stores the document verbatim and shapes the driver
// acknowledgement.
func insertOne(ctx context.Context, coll *mongo.Collection, doc entity.Document) (*repository.InsertResult, error) {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert into %s", coll.Name())
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}

	return &repository.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedID,
	}, nil
}

// mergeOne runs a $set upsert against the filter and shapes the driver
// acknowledgement.
func mergeOne(ctx context.Context, coll *mongo.Collection, filter bson.M, fields entity.Document) (*repository.UpdateResult, error) {
	update := bson.M{"$set": bson.M(fields)}

	result, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert into %s", coll.Name())
	}

	ack := &repository.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		ack.UpsertedID = oid.Hex()
	}

	return ack, nil
}

// deleteOne removes the single document matching the filter and shapes the
// driver acknowledgement.
func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (*repository.DeleteResult, error) {
	result, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete from %s", coll.Name())
	}

	return &repository.DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
