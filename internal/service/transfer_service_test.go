package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

func TestTransferService_DefaultsDateToNow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	for _, seed := range []struct {
		name string
		typ  category.Type
	}{
		{category.OutgoingTransferName, category.TypeExpense},
		{category.IncomingTransferName, category.TypeIncome},
	} {
		_, err := f.db.Categories().Insert(ctx, &category.CategoryCreate{
			Name:      seed.name,
			Type:      seed.typ,
			IsDefault: true,
		})
		require.NoError(t, err)
	}

	savings, err := f.db.Accounts().Insert(ctx, &account.AccountCreate{
		Name:     "Savings",
		Currency: "USD",
		Balance:  decimal.Zero,
		UserID:   f.userID,
	})
	require.NoError(t, err)

	result, err := f.svc.Transfer.Transfer(ctx, f.userID, TransferInput{
		SourceAccountID:      f.account.ID,
		DestinationAccountID: savings.ID,
		Amount:               decimal.RequireFromString("100.00"),
		Description:          "stash",
	})
	require.NoError(t, err)

	assert.Equal(t, serviceNow, result.Outgoing.TransactionDate)
	assert.Equal(t, serviceNow, result.Incoming.TransactionDate)
	require.NotNil(t, result.Outgoing.RelatedTransactionID)
	assert.Equal(t, result.Incoming.ID, *result.Outgoing.RelatedTransactionID)
}

func TestCategoryService_EnsureDefaultsSeeded_Idempotent(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// The fixture already seeds defaults, so the boot-time seeding must
	// leave the set untouched.
	before, err := f.svc.Category.FindAll(ctx, f.userID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Category.EnsureDefaultsSeeded(ctx))

	after, err := f.svc.Category.FindAll(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}
