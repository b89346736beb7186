package service

import (
	"context"
	"fmt"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionService handles the transaction lifecycle and keeps the owning
// account's derived balance in sync on writes.
type TransactionService struct {
	transactions TransactionStore
	accounts     AccountStore
	sequences    SequenceStore
}

func NewTransactionService(transactions TransactionStore, accounts AccountStore, sequences SequenceStore) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		accounts:     accounts,
		sequences:    sequences,
	}
}

// Create assigns the next transaction id, persists the record, and refreshes
// the owner's balance. A recalculation failure surfaces as an error even
// though the transaction is already durable; the balance stays stale until
// the next successful recalculation.
func (s *TransactionService) Create(ctx context.Context, transaction model.Transaction) (*model.Transaction, error) {
	id, err := s.sequences.Next(ctx, transactionSequence)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}
	transaction.ID = id
	if err := s.transactions.Insert(ctx, &transaction); err != nil {
		return nil, err
	}
	if err := s.RecalculateBalance(ctx, transaction.UserID); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.transactions.FindAll(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id primitive.ObjectID) (*model.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

// Update shallow-merges the partial record into the stored transaction and
// then recalculates for the owner named in the update payload. A payload
// that moves the transaction to another account leaves the previous owner's
// balance stale, and a payload without an owner skips recalculation
// entirely; both are long-standing behaviors existing clients rely on.
func (s *TransactionService) Update(ctx context.Context, id primitive.ObjectID, upd model.TransactionUpdate) (*model.Transaction, error) {
	transaction, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(transaction)
	if err := s.transactions.Replace(ctx, transaction); err != nil {
		return nil, err
	}
	if upd.UserID != nil {
		if err := s.RecalculateBalance(ctx, *upd.UserID); err != nil {
			return nil, err
		}
	}
	return transaction, nil
}

// Delete removes the transaction. The owner's balance is not recalculated.
func (s *TransactionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.transactions.Delete(ctx, id)
}

// RecalculateBalance recomputes the account's balance as the sum of the
// values of every transaction referencing it (zero for the empty set) and
// writes the result back. An unknown account id is a silent no-op. The
// fetch-sum-write sequence takes no locks: concurrent recalculations for one
// account are last-write-wins on the balance field, an accepted window.
func (s *TransactionService) RecalculateBalance(ctx context.Context, owner primitive.ObjectID) error {
	transactions, err := s.transactions.FindByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to recalculate balance: %w", err)
	}
	var balance float64
	for _, t := range transactions {
		balance += t.Value
	}
	if err := s.accounts.SetBalance(ctx, owner, balance); err != nil {
		return fmt.Errorf("failed to recalculate balance: %w", err)
	}
	return nil
}
