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

type AccountRepository struct {
	accounts *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{accounts: db.Collection("accounts")}
}

func (r *AccountRepository) Insert(ctx context.Context, a *model.Account) error {
	if a.ObjectID.IsZero() {
		a.ObjectID = primitive.NewObjectID()
	}
	if _, err := r.accounts.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]model.Account, error) {
	cursor, err := r.accounts.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	accounts := []model.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	var account model.Account
	err := r.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) Replace(ctx context.Context, a *model.Account) error {
	res, err := r.accounts.ReplaceOne(ctx, bson.M{"_id": a.ObjectID}, a)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// SetBalance overwrites the account's balance field, leaving every other
// field untouched. An unknown id is a silent no-op, not an error.
func (r *AccountRepository) SetBalance(ctx context.Context, id primitive.ObjectID, balance float64) error {
	_, err := r.accounts.UpdateByID(ctx, id, bson.M{"$set": bson.M{"balance": balance}})
	if err != nil {
		return fmt.Errorf("failed to set account balance: %w", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.accounts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}
