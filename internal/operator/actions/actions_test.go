package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/storagetest"
)

var testDate = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// The synchronous fake must keep the same Process signature as the real
// operator so both satisfy the service layer's processor surface.
var _ interface {
	Process(ctx context.Context, action IAction) error
} = (*storagetest.Operator)(nil)

// fixture seeds an in-memory DB with one user, one account, and a default
// category of each type.
type fixture struct {
	db      *storagetest.DB
	op      *storagetest.Operator
	userID  uuid.UUID
	otherID uuid.UUID
	account *account.Account
	salary  *category.Category
	food    *category.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := storagetest.NewDB()

	userID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	acct, err := db.Accounts().Insert(ctx, &account.AccountCreate{
		Name:     "Checking",
		Currency: "USD",
		Balance:  decimal.Zero,
		UserID:   userID,
	})
	require.NoError(t, err)

	salary, err := db.Categories().Insert(ctx, &category.CategoryCreate{
		Name:      "Salary",
		Type:      category.TypeIncome,
		IsDefault: true,
	})
	require.NoError(t, err)

	food, err := db.Categories().Insert(ctx, &category.CategoryCreate{
		Name:      "Food & Beverage",
		Type:      category.TypeExpense,
		IsDefault: true,
	})
	require.NoError(t, err)

	return &fixture{
		db:      db,
		op:      storagetest.NewOperator(db),
		userID:  userID,
		otherID: otherID,
		account: acct,
		salary:  salary,
		food:    food,
	}
}

func (f *fixture) newAccount(t *testing.T, name string, userID uuid.UUID) *account.Account {
	t.Helper()
	acct, err := f.db.Accounts().Insert(context.Background(), &account.AccountCreate{
		Name:     name,
		Currency: "USD",
		Balance:  decimal.Zero,
		UserID:   userID,
	})
	require.NoError(t, err)
	return acct
}

func (f *fixture) balanceOf(t *testing.T, id uuid.UUID, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	acct, err := f.db.Accounts().FindByID(context.Background(), id, userID)
	require.NoError(t, err)
	require.NotNil(t, acct)
	return acct.Balance
}

func (f *fixture) transactionCount(t *testing.T) int {
	t.Helper()
	txs, err := f.db.Transactions().ListByUserSince(context.Background(), f.userID, time.Time{})
	require.NoError(t, err)
	return len(txs)
}
