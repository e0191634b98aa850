package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// Transaction represents a transaction record. Amounts are signed: positive
// for income, negative for expense. RelatedTransactionID links the two legs
// of a transfer; RecurringTransactionID points at the definition that
// generated an auto-created transaction.
type Transaction struct {
	ID                     uuid.UUID       `db:"id"`
	Type                   category.Type   `db:"type"`
	Amount                 decimal.Decimal `db:"amount"`
	Description            string          `db:"description"`
	CategoryID             uuid.UUID       `db:"category_id"`
	AccountID              uuid.UUID       `db:"account_id"`
	UserID                 uuid.UUID       `db:"user_id"`
	TransactionDate        time.Time       `db:"transaction_date"`
	RelatedTransactionID   *uuid.UUID      `db:"related_transaction_id"`
	RecurringTransactionID *uuid.UUID      `db:"recurring_transaction_id"`
	CreatedAt              time.Time       `db:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at"`
	DeletedAt              *time.Time      `db:"deleted_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Type                   category.Type
	Amount                 decimal.Decimal
	Description            string
	CategoryID             uuid.UUID
	AccountID              uuid.UUID
	UserID                 uuid.UUID
	TransactionDate        time.Time
	RelatedTransactionID   *uuid.UUID
	RecurringTransactionID *uuid.UUID
}

// Store defines the transaction storage operations. The concrete
// implementation is backed by Bob; tests use the in-memory fake from
// storagetest.
type Store interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Transaction, error)
	ListByAccountSince(ctx context.Context, accountID, userID uuid.UUID, since time.Time) ([]*Transaction, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	SetRelated(ctx context.Context, id, relatedID uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
