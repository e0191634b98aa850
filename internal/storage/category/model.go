package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Type classifies a category and the transactions recorded under it.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known category type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category represents a category record. Default categories are globally
// visible and have no owning user; user categories are visible only to their
// owner. Nesting is a single level: a category with a parent cannot itself
// be a parent.
type Category struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Type      Type       `db:"type"`
	IsDefault bool       `db:"is_default"`
	UserID    *uuid.UUID `db:"user_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// VisibleTo reports whether the category can be used by the given user.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	if c.IsDefault {
		return true
	}
	return c.UserID != nil && *c.UserID == userID
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name      string
	Type      Type
	IsDefault bool
	UserID    *uuid.UUID
	ParentID  *uuid.UUID
}

// Store defines the category storage operations. The concrete implementation
// is backed by Bob; tests use the in-memory fake from storagetest.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindDefaultByName(ctx context.Context, name string, categoryType Type) (*Category, error)
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	ListVisibleToByType(ctx context.Context, userID uuid.UUID, categoryType Type) ([]*Category, error)
	CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error)
	CountDefaults(ctx context.Context) (int64, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, category *Category) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
