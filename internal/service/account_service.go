package service

import (
	"context"
	"fmt"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountService handles the account lifecycle, including sequential id
// assignment and the lazy default-account seeding.
type AccountService struct {
	accounts  AccountStore
	sequences SequenceStore
}

func NewAccountService(accounts AccountStore, sequences SequenceStore) *AccountService {
	return &AccountService{accounts: accounts, sequences: sequences}
}

// Create assigns the next account id and persists the record. If allocation
// fails, nothing is persisted: the id is a required field.
func (s *AccountService) Create(ctx context.Context, account model.Account) (*model.Account, error) {
	id, err := s.sequences.Next(ctx, accountSequence)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate account id: %w", err)
	}
	account.ID = id
	if err := s.accounts.Insert(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns every stored account. When the collection is empty it seeds
// one default account and returns that as the only element.
func (s *AccountService) List(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		seeded, err := s.seedDefaultAccount(ctx)
		if err != nil {
			return nil, err
		}
		return []model.Account{*seeded}, nil
	}
	return accounts, nil
}

func (s *AccountService) seedDefaultAccount(ctx context.Context) (*model.Account, error) {
	account := model.NewAccount()
	account.FullName = "Joana da Silva Oliveira"
	account.FirstName = "Joana"
	account.LastName = "Oliveira"
	account.Balance = 2500
	return s.Create(ctx, account)
}

func (s *AccountService) Get(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

// Update shallow-merges the partial record into the stored account: fields
// present in the update replace the stored value entirely, absent fields are
// untouched. The fetch-merge-write sequence is not atomic; concurrent
// updates to the same account can lose writes.
func (s *AccountService) Update(ctx context.Context, id primitive.ObjectID, upd model.AccountUpdate) (*model.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(account)
	if err := s.accounts.Replace(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes the account only. Its transactions are left in place with a
// dangling owner reference; no cleanup or recalculation runs.
func (s *AccountService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.accounts.Delete(ctx, id)
}
