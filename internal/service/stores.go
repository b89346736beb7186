package service

import (
	"context"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Names of the auto-increment sequences backing the integer record ids.
// Distinct names advance independently.
const (
	accountSequence     = "accountId"
	transactionSequence = "transactionId"
)

// SequenceStore issues unique, strictly increasing integers per named
// counter. Next must be atomic against the backing store: concurrent calls
// for the same name never return the same value.
type SequenceStore interface {
	Next(ctx context.Context, name string) (int64, error)
}

type AccountStore interface {
	Insert(ctx context.Context, a *model.Account) error
	FindAll(ctx context.Context) ([]model.Account, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error)
	Replace(ctx context.Context, a *model.Account) error
	SetBalance(ctx context.Context, id primitive.ObjectID, balance float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TransactionStore interface {
	Insert(ctx context.Context, t *model.Transaction) error
	FindAll(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Transaction, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Transaction, error)
	Replace(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
