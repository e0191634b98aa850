package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/account"
)

// CreateAccount creates an account for a user. Balance defaults to zero
// when the input leaves it unset.
type CreateAccount struct {
	Input account.AccountCreate

	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Accounts.Insert(ctx, &a.Input)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

// AccountPatch holds the optional fields of an account update. Nil fields
// keep their current value.
type AccountPatch struct {
	Name        *string
	Currency    *string
	Description *string
	IsActive    *bool
}

// UpdateAccount applies a patch to an owned account.
type UpdateAccount struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Patch  AccountPatch

	Result *account.Account
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Accounts.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("account not found")
	}

	if a.Patch.Name != nil {
		existing.Name = *a.Patch.Name
	}
	if a.Patch.Currency != nil {
		existing.Currency = *a.Patch.Currency
	}
	if a.Patch.Description != nil {
		existing.Description = *a.Patch.Description
	}
	if a.Patch.IsActive != nil {
		existing.IsActive = *a.Patch.IsActive
	}

	if err := writer.Accounts.Update(ctx, existing); err != nil {
		return err
	}
	a.Result = existing
	return nil
}

// UpdateAccountBalance sets an account's balance to an explicit value. This
// is the manual recalibration path; normal transaction writes keep the
// balance current on their own.
type UpdateAccountBalance struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Balance decimal.Decimal

	Result *account.Account
}

func (a *UpdateAccountBalance) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Accounts.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("account not found")
	}

	if err := writer.Accounts.UpdateBalance(ctx, existing.ID, a.Balance); err != nil {
		return err
	}
	existing.Balance = a.Balance
	a.Result = existing
	return nil
}

// RemoveAccount soft-deletes an owned account.
type RemoveAccount struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *RemoveAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Accounts.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("account not found")
	}
	return writer.Accounts.SoftDelete(ctx, existing.ID)
}
