package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
)

// RecurringInput carries the fields for creating a recurring definition.
type RecurringInput struct {
	Type        category.Type
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	AccountID   uuid.UUID
	Frequency   dates.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool
}

// CreateRecurring creates a recurring definition. The first due date is one
// period after the start date, not the start date itself. The referenced
// account and category are validated the same way as a transaction write.
type CreateRecurring struct {
	Input  RecurringInput
	UserID uuid.UUID

	Result *recurring.RecurringTransaction
}

func (a *CreateRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateRecurringRefs(ctx, writer, a.Input.AccountID, a.Input.CategoryID, a.Input.Type, a.Input.Amount, a.UserID); err != nil {
		return err
	}
	if !a.Input.Frequency.Valid() {
		return apperr.InvalidInput("invalid frequency %q", a.Input.Frequency)
	}

	next := dates.NextDueDate(a.Input.StartDate, a.Input.Frequency)
	created, err := writer.Recurring.Insert(ctx, &recurring.RecurringCreate{
		Type:        a.Input.Type,
		Amount:      a.Input.Amount,
		Description: a.Input.Description,
		CategoryID:  a.Input.CategoryID,
		AccountID:   a.Input.AccountID,
		UserID:      a.UserID,
		Frequency:   a.Input.Frequency,
		StartDate:   a.Input.StartDate,
		EndDate:     a.Input.EndDate,
		NextDueDate: next,
		IsActive:    a.Input.IsActive,
	})
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

// RecurringPatch holds the optional fields of a recurring update. Nil
// fields keep their current value.
type RecurringPatch struct {
	Type        *category.Type
	Amount      *decimal.Decimal
	Description *string
	CategoryID  *uuid.UUID
	AccountID   *uuid.UUID
	Frequency   *dates.Frequency
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
	// ClearEndDate removes the end date when true.
	ClearEndDate bool
}

// UpdateRecurring applies a patch to a recurring definition. Changing the
// frequency or the start date recomputes the next due date from the start
// date.
type UpdateRecurring struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Patch  RecurringPatch

	Result *recurring.RecurringTransaction
}

func (a *UpdateRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Recurring.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("recurring transaction not found")
	}

	rescheduled := false
	if a.Patch.Type != nil {
		existing.Type = *a.Patch.Type
	}
	if a.Patch.Amount != nil {
		existing.Amount = *a.Patch.Amount
	}
	if a.Patch.Description != nil {
		existing.Description = *a.Patch.Description
	}
	if a.Patch.CategoryID != nil {
		existing.CategoryID = *a.Patch.CategoryID
	}
	if a.Patch.AccountID != nil {
		existing.AccountID = *a.Patch.AccountID
	}
	if a.Patch.Frequency != nil {
		existing.Frequency = *a.Patch.Frequency
		rescheduled = true
	}
	if a.Patch.StartDate != nil {
		existing.StartDate = *a.Patch.StartDate
		rescheduled = true
	}
	if a.Patch.ClearEndDate {
		existing.EndDate = nil
	} else if a.Patch.EndDate != nil {
		existing.EndDate = a.Patch.EndDate
	}
	if a.Patch.IsActive != nil {
		existing.IsActive = *a.Patch.IsActive
	}

	if err := validateRecurringRefs(ctx, writer, existing.AccountID, existing.CategoryID, existing.Type, existing.Amount, a.UserID); err != nil {
		return err
	}
	if !existing.Frequency.Valid() {
		return apperr.InvalidInput("invalid frequency %q", existing.Frequency)
	}

	if rescheduled {
		next := dates.NextDueDate(existing.StartDate, existing.Frequency)
		existing.NextDueDate = &next
	}

	if err := writer.Recurring.Update(ctx, existing); err != nil {
		return err
	}
	a.Result = existing
	return nil
}

// RemoveRecurring soft-deletes a recurring definition.
type RemoveRecurring struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *RemoveRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Recurring.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("recurring transaction not found")
	}
	return writer.Recurring.SoftDelete(ctx, existing.ID)
}

// validateRecurringRefs applies the transaction invariants to a recurring
// definition so that materialization cannot fail on bad references later.
func validateRecurringRefs(ctx context.Context, writer *storage.Writer, accountID, categoryID uuid.UUID, transactionType category.Type, amount decimal.Decimal, userID uuid.UUID) error {
	acct, err := writer.Accounts.FindByID(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if acct == nil {
		return apperr.NotFound("account not found")
	}

	cat, err := writer.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return apperr.NotFound("category not found")
	}
	if !cat.VisibleTo(userID) {
		return apperr.Forbidden("access denied to this category")
	}
	if cat.Type != transactionType {
		return apperr.InvalidInput("category type must match transaction type")
	}

	return validateAmountSign(transactionType, amount)
}
