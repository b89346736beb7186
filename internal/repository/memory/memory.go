// Package memory provides in-memory implementations of the stores consumed
// by the service layer. They mirror the Mongo repositories' contracts,
// including sentinel errors and the silent no-op on unknown balance targets,
// so the service and handler tests can run without a live database.
package memory

import (
	"context"
	"sync"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"
	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SequenceStore struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewSequenceStore() *SequenceStore {
	return &SequenceStore{seqs: make(map[string]int64)}
}

func (s *SequenceStore) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[name]++
	return s.seqs[name], nil
}

type AccountStore struct {
	mu       sync.Mutex
	accounts map[primitive.ObjectID]model.Account
	order    []primitive.ObjectID
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[primitive.ObjectID]model.Account)}
}

func (s *AccountStore) Insert(_ context.Context, a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ObjectID.IsZero() {
		a.ObjectID = primitive.NewObjectID()
	}
	s.accounts[a.ObjectID] = *a
	s.order = append(s.order, a.ObjectID)
	return nil
}

func (s *AccountStore) FindAll(_ context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Account{}
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out, nil
}

func (s *AccountStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &a, nil
}

func (s *AccountStore) Replace(_ context.Context, a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ObjectID]; !ok {
		return repository.ErrAccountNotFound
	}
	s.accounts[a.ObjectID] = *a
	return nil
}

func (s *AccountStore) SetBalance(_ context.Context, id primitive.ObjectID, balance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		// Matches the store's update-by-id on an unknown document.
		return nil
	}
	a.Balance = balance
	s.accounts[id] = a
	return nil
}

func (s *AccountStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(s.accounts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type TransactionStore struct {
	mu           sync.Mutex
	transactions map[primitive.ObjectID]model.Transaction
	order        []primitive.ObjectID
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{transactions: make(map[primitive.ObjectID]model.Transaction)}
}

func (s *TransactionStore) Insert(_ context.Context, t *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ObjectID.IsZero() {
		t.ObjectID = primitive.NewObjectID()
	}
	s.transactions[t.ObjectID] = *t
	s.order = append(s.order, t.ObjectID)
	return nil
}

func (s *TransactionStore) FindAll(_ context.Context) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Transaction{}
	for _, id := range s.order {
		out = append(out, s.transactions[id])
	}
	return out, nil
}

func (s *TransactionStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, repository.ErrTransactionNotFound
	}
	return &t, nil
}

func (s *TransactionStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Transaction{}
	for _, id := range s.order {
		if t := s.transactions[id]; t.UserID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TransactionStore) Replace(_ context.Context, t *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[t.ObjectID]; !ok {
		return repository.ErrTransactionNotFound
	}
	s.transactions[t.ObjectID] = *t
	return nil
}

func (s *TransactionStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return repository.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
