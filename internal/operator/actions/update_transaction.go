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

// TransactionPatch holds the optional fields of a transaction update. Nil
// fields keep their current value.
type TransactionPatch struct {
	Type            *category.Type
	Amount          *decimal.Decimal
	Description     *string
	CategoryID      *uuid.UUID
	AccountID       *uuid.UUID
	TransactionDate *time.Time
}

// UpdateTransaction re-validates a patched transaction against the same
// rules as creation, using the effective post-patch type, amount, account,
// and category, then persists the merge. Account balances are kept
// consistent: the old amount is backed out of the old account and the new
// amount applied to the new one.
type UpdateTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Patch  TransactionPatch

	Result *transaction.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("transaction not found")
	}

	effective := *existing
	if a.Patch.Type != nil {
		effective.Type = *a.Patch.Type
	}
	if a.Patch.Amount != nil {
		effective.Amount = *a.Patch.Amount
	}
	if a.Patch.Description != nil {
		effective.Description = *a.Patch.Description
	}
	if a.Patch.CategoryID != nil {
		effective.CategoryID = *a.Patch.CategoryID
	}
	if a.Patch.AccountID != nil {
		effective.AccountID = *a.Patch.AccountID
	}
	if a.Patch.TransactionDate != nil {
		effective.TransactionDate = *a.Patch.TransactionDate
	}

	newAcct, err := writer.Accounts.FindByID(ctx, effective.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if newAcct == nil {
		return apperr.NotFound("account not found")
	}

	cat, err := writer.Categories.FindByID(ctx, effective.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return apperr.NotFound("category not found")
	}
	if !cat.VisibleTo(a.UserID) {
		return apperr.Forbidden("access denied to this category")
	}
	if cat.Type != effective.Type {
		return apperr.InvalidInput("category type must match transaction type")
	}

	if err := validateAmountSign(effective.Type, effective.Amount); err != nil {
		return err
	}

	if err := writer.Transactions.Update(ctx, &effective); err != nil {
		return err
	}

	if existing.AccountID == effective.AccountID {
		delta := effective.Amount.Sub(existing.Amount)
		if !delta.IsZero() {
			if err := writer.Accounts.UpdateBalance(ctx, newAcct.ID, newAcct.Balance.Add(delta)); err != nil {
				return err
			}
		}
	} else {
		oldAcct, err := writer.Accounts.FindByID(ctx, existing.AccountID, a.UserID)
		if err != nil {
			return err
		}
		if oldAcct != nil {
			if err := writer.Accounts.UpdateBalance(ctx, oldAcct.ID, oldAcct.Balance.Sub(existing.Amount)); err != nil {
				return err
			}
		}
		if err := writer.Accounts.UpdateBalance(ctx, newAcct.ID, newAcct.Balance.Add(effective.Amount)); err != nil {
			return err
		}
	}

	a.Result = &effective
	return nil
}
