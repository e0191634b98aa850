package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

func (f *fixture) createInput(amount string, categoryID uuid.UUID, transactionType category.Type) TransactionInput {
	return TransactionInput{
		Type:            transactionType,
		Amount:          decimal.RequireFromString(amount),
		Description:     "test transaction",
		CategoryID:      categoryID,
		AccountID:       f.account.ID,
		TransactionDate: testDate,
	}
}

func TestCreateTransaction_IncomeSuccess(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("500.00", f.salary.ID, category.TypeIncome),
		UserID: f.userID,
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	require.NotNil(t, action.Result)
	assert.Equal(t, category.TypeIncome, action.Result.Type)
	assert.True(t, action.Result.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, f.userID, action.Result.UserID)
	assert.True(t, f.balanceOf(t, f.account.ID, f.userID).Equal(decimal.RequireFromString("500.00")))
}

func TestCreateTransaction_ExpenseAdjustsBalance(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("-50.25", f.food.ID, category.TypeExpense),
		UserID: f.userID,
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.True(t, f.balanceOf(t, f.account.ID, f.userID).Equal(decimal.RequireFromString("-50.25")))
}

func TestCreateTransaction_RejectsNegativeIncome(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("-500.00", f.salary.ID, category.TypeIncome),
		UserID: f.userID,
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "amount must be positive for income transactions")
	assert.Equal(t, 0, f.transactionCount(t))
}

func TestCreateTransaction_RejectsPositiveExpense(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("50.00", f.food.ID, category.TypeExpense),
		UserID: f.userID,
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "amount must be negative for expense transactions")
}

func TestCreateTransaction_RejectsZeroAmount(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("0", f.salary.ID, category.TypeIncome),
		UserID: f.userID,
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrInvalidInput)

	action = &CreateTransaction{
		Input:  f.createInput("0", f.food.ID, category.TypeExpense),
		UserID: f.userID,
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrInvalidInput)
}

func TestCreateTransaction_RejectsCategoryTypeMismatch(t *testing.T) {
	f := newFixture(t)

	// Income transaction under an expense category.
	action := &CreateTransaction{
		Input:  f.createInput("500.00", f.food.ID, category.TypeIncome),
		UserID: f.userID,
	}
	err := f.op.Process(context.Background(), action)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "category type must match transaction type")
}

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	f := newFixture(t)

	input := f.createInput("500.00", f.salary.ID, category.TypeIncome)
	input.AccountID = uuid.Must(uuid.NewV4())
	action := &CreateTransaction{Input: input, UserID: f.userID}

	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrNotFound)
}

func TestCreateTransaction_ForeignAccountLooksAbsent(t *testing.T) {
	f := newFixture(t)
	foreign := f.newAccount(t, "Not mine", f.otherID)

	input := f.createInput("500.00", f.salary.ID, category.TypeIncome)
	input.AccountID = foreign.ID
	action := &CreateTransaction{Input: input, UserID: f.userID}

	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrNotFound)
}

func TestCreateTransaction_ForeignCategoryForbidden(t *testing.T) {
	f := newFixture(t)

	foreignCat, err := f.db.Categories().Insert(context.Background(), &category.CategoryCreate{
		Name:   "Private income",
		Type:   category.TypeIncome,
		UserID: &f.otherID,
	})
	require.NoError(t, err)

	action := &CreateTransaction{
		Input:  f.createInput("500.00", foreignCat.ID, category.TypeIncome),
		UserID: f.userID,
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrForbidden)
}

func TestCreateTransaction_OwnCategoryAllowed(t *testing.T) {
	f := newFixture(t)

	ownCat, err := f.db.Categories().Insert(context.Background(), &category.CategoryCreate{
		Name:   "Side gig",
		Type:   category.TypeIncome,
		UserID: &f.userID,
	})
	require.NoError(t, err)

	action := &CreateTransaction{
		Input:  f.createInput("120.00", ownCat.ID, category.TypeIncome),
		UserID: f.userID,
	}
	assert.NoError(t, f.op.Process(context.Background(), action))
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	f := newFixture(t)

	action := &CreateTransaction{
		Input:  f.createInput("500.00", uuid.Must(uuid.NewV4()), category.TypeIncome),
		UserID: f.userID,
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrNotFound)
}
