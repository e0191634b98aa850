package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
)

func TestAccountService_CreateAndFindAll(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.Account.Create(ctx, f.userID, AccountInput{
		Name:     "Savings",
		Currency: "EUR",
		Balance:  decimal.RequireFromString("250.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Savings", created.Name)

	accounts, err := f.svc.Account.FindAll(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	// Newest first.
	assert.Equal(t, created.ID, accounts[0].ID)
}

func TestAccountService_FindOne_NotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Account.FindOne(context.Background(), uuid.Must(uuid.NewV4()), f.userID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAccountService_UpdateBalance(t *testing.T) {
	f := newServiceFixture(t)

	updated, err := f.svc.Account.UpdateBalance(context.Background(), f.account.ID, f.userID, decimal.RequireFromString("75.25"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("75.25")))
}

func TestAccountService_Remove(t *testing.T) {
	f := newServiceFixture(t)

	name := "Renamed"
	_, err := f.svc.Account.Update(context.Background(), f.account.ID, f.userID, actions.AccountPatch{Name: &name})
	require.NoError(t, err)

	require.NoError(t, f.svc.Account.Remove(context.Background(), f.account.ID, f.userID))

	_, err = f.svc.Account.FindOne(context.Background(), f.account.ID, f.userID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
