package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenMongo connects to the document store, waiting for it to come up, and
// bootstraps the collection indexes.
func OpenMongo(uri, name string, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	var client *mongo.Client
	var err error
	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()
		if err == nil {
			break
		}
		logger.Info("waiting for database", "attempt", i+1, "of", 5)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not reach database after 5 attempts: %w", err)
	}

	db := client.Database(name)
	logger.Info("database connection established")

	if err := EnsureIndexes(db, logger); err != nil {
		return nil, nil, err
	}
	return client, db, nil
}

// EnsureIndexes creates the unique indexes on the sequential id fields
// idempotently.
func EnsureIndexes(db *mongo.Database, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, coll := range []string{"accounts", "transactions"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}
	logger.Info("indexes ensured")
	return nil
}
