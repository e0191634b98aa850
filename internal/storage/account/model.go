package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record. The balance column is maintained
// transactionally: every transaction write adjusts it inside the same
// storage transaction.
type Account struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Currency    string          `db:"currency"`
	Balance     decimal.Decimal `db:"balance"`
	Description string          `db:"description"`
	IsActive    bool            `db:"is_active"`
	UserID      uuid.UUID       `db:"user_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	DeletedAt   *time.Time      `db:"deleted_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name        string
	Currency    string
	Balance     decimal.Decimal
	Description string
	UserID      uuid.UUID
}

// Store defines the account storage operations. The concrete implementation
// is backed by Bob; tests use the in-memory fake from storagetest.
type Store interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Update(ctx context.Context, account *Account) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
