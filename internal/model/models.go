package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultCurrency = "R$"

// defaultTransactionDate is evaluated once at process start, so every
// transaction created without an explicit date during one process lifetime
// shares the same default. Existing clients depend on this behavior.
var defaultTransactionDate = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

// Counter is one named auto-increment sequence. The sequence name is the
// document identity.
type Counter struct {
	Name string `bson:"_id" json:"name"`
	Seq  int64  `bson:"seq" json:"seq"`
}

type Account struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ID        int64              `bson:"id" json:"id"`
	FullName  string             `bson:"fullName" json:"fullName"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Balance   float64            `bson:"balance" json:"balance"`
	Currency  string             `bson:"currency" json:"currency"`
}

// NewAccount returns an account with schema defaults applied. Decoding a
// request body over the result leaves the defaults in place for absent
// fields.
func NewAccount() Account {
	return Account{Currency: DefaultCurrency}
}

type Transaction struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ID         int64              `bson:"id" json:"id"`
	Type       string             `bson:"type" json:"type"`
	Date       string             `bson:"date" json:"date"`
	Value      float64            `bson:"value" json:"value"`
	Currency   string             `bson:"currency" json:"currency"`
	FileBase64 string             `bson:"fileBase64" json:"fileBase64"`
	FileName   string             `bson:"fileName" json:"fileName"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
}

// NewTransaction returns a transaction with schema defaults applied.
func NewTransaction() Transaction {
	return Transaction{
		Type:     "defaultType",
		Date:     defaultTransactionDate,
		Currency: DefaultCurrency,
	}
}

// AccountUpdate is a partial account record. Nil fields are left untouched
// by Apply; present fields replace the stored value entirely.
type AccountUpdate struct {
	FullName  *string  `json:"fullName"`
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Balance   *float64 `json:"balance"`
	Currency  *string  `json:"currency"`
}

// Apply shallow-merges the update into the account.
func (u AccountUpdate) Apply(a *Account) {
	if u.FullName != nil {
		a.FullName = *u.FullName
	}
	if u.FirstName != nil {
		a.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		a.LastName = *u.LastName
	}
	if u.Balance != nil {
		a.Balance = *u.Balance
	}
	if u.Currency != nil {
		a.Currency = *u.Currency
	}
}

// TransactionUpdate is a partial transaction record.
type TransactionUpdate struct {
	Type       *string             `json:"type"`
	Date       *string             `json:"date"`
	Value      *float64            `json:"value"`
	Currency   *string             `json:"currency"`
	FileBase64 *string             `json:"fileBase64"`
	FileName   *string             `json:"fileName"`
	UserID     *primitive.ObjectID `json:"userId"`
}

// Apply shallow-merges the update into the transaction.
func (u TransactionUpdate) Apply(t *Transaction) {
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Value != nil {
		t.Value = *u.Value
	}
	if u.Currency != nil {
		t.Currency = *u.Currency
	}
	if u.FileBase64 != nil {
		t.FileBase64 = *u.FileBase64
	}
	if u.FileName != nil {
		t.FileName = *u.FileName
	}
	if u.UserID != nil {
		t.UserID = *u.UserID
	}
}
