package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/storagetest"
)

// fixedClock pins Now to a single instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var serviceNow = time.Date(2024, time.March, 15, 13, 45, 12, 0, time.UTC)

type serviceFixture struct {
	db      *storagetest.DB
	svc     *Service
	userID  uuid.UUID
	account *account.Account
	salary  *category.Category
	food    *category.Category
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctx := context.Background()
	db := storagetest.NewDB()
	op := storagetest.NewOperator(db)
	clock := fixedClock{now: serviceNow}

	log := logrus.New()
	log.SetOutput(io.Discard)

	userID := uuid.Must(uuid.NewV4())

	acct, err := db.Accounts().Insert(ctx, &account.AccountCreate{
		Name:     "Cash",
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

	svc := &Service{
		Account:     NewAccountService(op, db.Accounts()),
		Category:    NewCategoryService(op, db.Categories(), log),
		Transaction: NewTransactionService(op, db.Accounts(), db.Categories(), db.Transactions(), clock),
		Transfer:    NewTransferService(op, clock),
		Recurring:   NewRecurringService(op, db.Recurring(), clock, log),
	}

	return &serviceFixture{
		db:      db,
		svc:     svc,
		userID:  userID,
		account: acct,
		salary:  salary,
		food:    food,
	}
}
