package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/dates"
)

const importHeader = "Id,Date,Category,Amount,Currency,Note,Wallet\n"

func (f *serviceFixture) importCSV(t *testing.T, data string) (*ImportResult, error) {
	t.Helper()
	return f.svc.Transaction.ImportFromCSV(context.Background(), f.userID, []byte(data))
}

func TestImportFromCSV_HappyPath(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.importCSV(t, importHeader+
		"1,2024-03-01,Salary,5000.00,USD,March payroll,Cash\n"+
		"2,2024-03-02,Food & Beverage,-25.50,USD,,Cash\n")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	txs, err := f.svc.Transaction.FindAll(context.Background(), f.userID, dates.PeriodMonth, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	acct, err := f.svc.Account.FindOne(context.Background(), f.account.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("4974.50")))
}

func TestImportFromCSV_CurrencySymbolsStripped(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.importCSV(t, importHeader+
		"1,2024-03-02,Food & Beverage,\"$-1,225.50\",USD,groceries,Cash\n")
	require.NoError(t, err)

	require.Equal(t, 1, result.Imported)
	txs, err := f.svc.Transaction.FindAll(context.Background(), f.userID, dates.PeriodMonth, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Transaction.Amount.Equal(decimal.RequireFromString("-1225.50")))
}

func TestImportFromCSV_PaddedNamesMatchAccountAndCategory(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.importCSV(t, importHeader+
		"1,2024-03-02, Food & Beverage ,-25.50,USD,lunch, Cash\n")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)

	txs, err := f.svc.Transaction.FindAll(context.Background(), f.userID, dates.PeriodMonth, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, f.account.ID, txs[0].Transaction.AccountID)
	assert.Equal(t, f.food.ID, txs[0].Transaction.CategoryID)
}

func TestImportFromCSV_EmptyNoteGetsDefaultDescription(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.importCSV(t, importHeader+
		"1,2024-03-02,Food & Beverage,-10.00,USD,,Cash\n")
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	txs, err := f.svc.Transaction.FindAll(context.Background(), f.userID, dates.PeriodMonth, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Imported transaction", txs[0].Transaction.Description)
}

func TestImportFromCSV_EmptyFile(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.importCSV(t, "   \n  ")

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "CSV file is empty")
}

func TestImportFromCSV_HeaderOnly(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.importCSV(t, importHeader)

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "CSV file is empty")
}

func TestImportFromCSV_MissingColumnsNamed(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.importCSV(t, "Id,Date,Category,Amount,Note\n1,2024-03-02,Food & Beverage,-10.00,x\n")

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "CSV file is missing required columns: Currency, Wallet")
}

func TestImportFromCSV_UnknownWallet(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.importCSV(t, importHeader+
		"1,2024-03-02,Food & Beverage,-10.00,USD,,Wallet B\n")

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "CSV file references unknown accounts: Wallet B")
}

func TestImportFromCSV_UnknownCategory(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.importCSV(t, importHeader+
		"1,2024-03-02,Lottery,-10.00,USD,,Cash\n")

	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.EqualError(t, err, "CSV file references unknown categories: Lottery")
}

func TestImportFromCSV_RowErrorsImportNothing(t *testing.T) {
	f := newServiceFixture(t)

	// Row 3 has a sign mismatch for its expense category; row 4 has a
	// currency mismatch. The two good rows must not be imported either.
	result, err := f.importCSV(t, importHeader+
		"1,2024-03-01,Salary,5000.00,USD,,Cash\n"+
		"2,2024-03-02,Food & Beverage,25.50,USD,,Cash\n"+
		"3,2024-03-03,Food & Beverage,-10.00,EUR,,Cash\n"+
		"4,2024-03-04,Food & Beverage,-5.00,USD,,Cash\n")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, []string{
		"Row 3: amount must be negative for expense category Food & Beverage",
		"Row 4: currency EUR does not match account currency USD",
	}, result.Errors)

	txs, err := f.svc.Transaction.FindAll(context.Background(), f.userID, dates.PeriodMonth, 0)
	require.NoError(t, err)
	assert.Empty(t, txs)

	acct, err := f.svc.Account.FindOne(context.Background(), f.account.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, acct.Balance.IsZero())
}

func TestImportFromCSV_BadDateAndAmountReported(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.importCSV(t, importHeader+
		"1,03/02/2024,Food & Beverage,ten,USD,,Cash\n")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, []string{
		`Row 2: invalid date "03/02/2024"`,
		`Row 2: amount "ten" is not numeric`,
	}, result.Errors)
}
