package repository

import (
	"context"
	"fmt"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SequenceRepository struct {
	counters *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{counters: db.Collection("counters")}
}

// Next atomically increments the named counter and returns the new value.
// The upsert creates an unseen counter at zero before the increment, so the
// first allocation for a name yields 1. The whole read-increment-write is a
// single find-and-modify round trip, which is what keeps concurrent
// allocations from ever returning the same value.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter model.Counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q: %w", name, err)
	}
	return counter.Seq, nil
}
