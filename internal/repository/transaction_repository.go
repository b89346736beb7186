package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepository struct {
	transactions *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{transactions: db.Collection("transactions")}
}

func (r *TransactionRepository) Insert(ctx context.Context, t *model.Transaction) error {
	if t.ObjectID.IsZero() {
		t.ObjectID = primitive.NewObjectID()
	}
	if _, err := r.transactions.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]model.Transaction, error) {
	cursor, err := r.transactions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.transactions.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return &transaction, nil
}

// FindByOwner returns every transaction whose owner reference equals the
// given account id, in store order.
func (r *TransactionRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Transaction, error) {
	cursor, err := r.transactions.Find(ctx, bson.M{"userId": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for account: %w", err)
	}
	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) Replace(ctx context.Context, t *model.Transaction) error {
	res, err := r.transactions.ReplaceOne(ctx, bson.M{"_id": t.ObjectID}, t)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.transactions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
