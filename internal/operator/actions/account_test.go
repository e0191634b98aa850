package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage/account"
)

func TestCreateAccount_Success(t *testing.T) {
	f := newFixture(t)

	action := &CreateAccount{Input: account.AccountCreate{
		Name:     "Savings",
		Currency: "EUR",
		Balance:  decimal.RequireFromString("120.00"),
		UserID:   f.userID,
	}}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.Equal(t, "Savings", action.Result.Name)
	assert.Equal(t, "EUR", action.Result.Currency)
	assert.True(t, action.Result.Balance.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, action.Result.IsActive)
}

func TestUpdateAccount_PartialPatch(t *testing.T) {
	f := newFixture(t)

	name := "Everyday"
	inactive := false
	action := &UpdateAccount{
		ID:     f.account.ID,
		UserID: f.userID,
		Patch:  AccountPatch{Name: &name, IsActive: &inactive},
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.Equal(t, "Everyday", action.Result.Name)
	assert.Equal(t, "USD", action.Result.Currency)
	assert.False(t, action.Result.IsActive)
}

func TestUpdateAccount_ForeignLooksAbsent(t *testing.T) {
	f := newFixture(t)

	name := "Hijacked"
	action := &UpdateAccount{
		ID:     f.account.ID,
		UserID: f.otherID,
		Patch:  AccountPatch{Name: &name},
	}
	assert.ErrorIs(t, f.op.Process(context.Background(), action), apperr.ErrNotFound)
}

func TestUpdateAccountBalance_Recalibrates(t *testing.T) {
	f := newFixture(t)

	action := &UpdateAccountBalance{
		ID:      f.account.ID,
		UserID:  f.userID,
		Balance: decimal.RequireFromString("999.99"),
	}
	require.NoError(t, f.op.Process(context.Background(), action))

	assert.True(t, f.balanceOf(t, f.account.ID, f.userID).Equal(decimal.RequireFromString("999.99")))
}

func TestRemoveAccount_Gone(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.op.Process(context.Background(), &RemoveAccount{ID: f.account.ID, UserID: f.userID}))

	found, err := f.db.Accounts().FindByID(context.Background(), f.account.ID, f.userID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRemoveAccount_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.op.Process(context.Background(), &RemoveAccount{ID: uuid.Must(uuid.NewV4()), UserID: f.userID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
