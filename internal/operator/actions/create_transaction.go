package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// TransactionInput carries the fields for one transaction write. Validation
// against accounts and categories happens inside the action, within the same
// transaction that persists the row.
type TransactionInput struct {
	Type                   category.Type
	Amount                 decimal.Decimal
	Description            string
	CategoryID             uuid.UUID
	AccountID              uuid.UUID
	TransactionDate        time.Time
	RelatedTransactionID   *uuid.UUID
	RecurringTransactionID *uuid.UUID
}

// CreateTransaction creates one transaction and adjusts the owning account's
// balance in the same storage transaction.
type CreateTransaction struct {
	Input  TransactionInput
	UserID uuid.UUID

	Result *transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := createTransaction(ctx, writer, a.Input, a.UserID)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

// createTransaction is the single enforcement point for the transaction
// invariants. Transfer legs, CSV import rows, and recurring materialization
// all go through it.
func createTransaction(ctx context.Context, writer *storage.Writer, input TransactionInput, userID uuid.UUID) (*transaction.Transaction, error) {
	acct, err := writer.Accounts.FindByID(ctx, input.AccountID, userID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, apperr.NotFound("account not found")
	}

	cat, err := writer.Categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("category not found")
	}
	if !cat.VisibleTo(userID) {
		return nil, apperr.Forbidden("access denied to this category")
	}
	if cat.Type != input.Type {
		return nil, apperr.InvalidInput("category type must match transaction type")
	}

	if err := validateAmountSign(input.Type, input.Amount); err != nil {
		return nil, err
	}

	created, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Type:                   input.Type,
		Amount:                 input.Amount,
		Description:            input.Description,
		CategoryID:             input.CategoryID,
		AccountID:              input.AccountID,
		UserID:                 userID,
		TransactionDate:        input.TransactionDate,
		RelatedTransactionID:   input.RelatedTransactionID,
		RecurringTransactionID: input.RecurringTransactionID,
	})
	if err != nil {
		return nil, err
	}

	newBalance := acct.Balance.Add(input.Amount)
	if err := writer.Accounts.UpdateBalance(ctx, acct.ID, newBalance); err != nil {
		return nil, err
	}

	return created, nil
}

// validateAmountSign enforces the signed-amount discipline: income amounts
// are strictly positive, expense amounts strictly negative.
func validateAmountSign(transactionType category.Type, amount decimal.Decimal) error {
	if transactionType == category.TypeIncome && amount.Sign() <= 0 {
		return apperr.InvalidInput("amount must be positive for income transactions")
	}
	if transactionType == category.TypeExpense && amount.Sign() >= 0 {
		return apperr.InvalidInput("amount must be negative for expense transactions")
	}
	return nil
}
