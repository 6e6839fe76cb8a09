// Package mongo contains the concrete implementation of the persistence
// layer using the official MongoDB driver. One client is created for the
// process lifetime and shared by every repository.
package mongo

import (
	"context"
	"log/slog"

	"electric/config"
	"electric/internal/domain/entity"
	"electric/internal/domain/lifecycle"
	"electric/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Collection names used by the storefront.
const (
	collectionProduct = "product"
	collectionOrder   = "order"
	collectionReview  = "review"
	collectionProfile = "profileinformation"
	collectionUsers   = "users"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. The connection is verified and
// the unique email indexes are created before the HTTP server starts
// accepting traffic.
func New(params Params) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(params.Config.Mongo.URI)
	if params.Config.Mongo.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: params.Config.Mongo.Username,
			Password: params.Config.Mongo.Password,
		})
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connection established",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureIndexes creates the unique indexes that make the upsert-by-email
// pattern race-free: concurrent upserts on a fresh email can no longer
// create duplicate accounts or profiles.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: entity.FieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{collectionUsers, collectionProfile} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return errors.Wrapf(err, "failed to create unique email index on %s", name)
		}
	}

	return nil
}
