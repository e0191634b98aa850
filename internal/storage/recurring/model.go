package recurring

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// RecurringTransaction is a template that the scheduler materializes into
// concrete transactions each time its due date passes.
type RecurringTransaction struct {
	ID          uuid.UUID       `db:"id"`
	Type        category.Type   `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CategoryID  uuid.UUID       `db:"category_id"`
	AccountID   uuid.UUID       `db:"account_id"`
	UserID      uuid.UUID       `db:"user_id"`
	Frequency   dates.Frequency `db:"frequency"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"`
	NextDueDate *time.Time      `db:"next_due_date"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	DeletedAt   *time.Time      `db:"deleted_at"`
}

// RecurringCreate is the input for creating a recurring definition.
type RecurringCreate struct {
	Type        category.Type
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	AccountID   uuid.UUID
	UserID      uuid.UUID
	Frequency   dates.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	NextDueDate time.Time
	IsActive    bool
}

// Store defines the recurring-transaction storage operations. The concrete
// implementation is backed by Bob; tests use the in-memory fake from
// storagetest.
type Store interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*RecurringTransaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RecurringTransaction, error)
	ListDue(ctx context.Context, now time.Time) ([]*RecurringTransaction, error)
	Insert(ctx context.Context, create *RecurringCreate) (*RecurringTransaction, error)
	Update(ctx context.Context, recurring *RecurringTransaction) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
