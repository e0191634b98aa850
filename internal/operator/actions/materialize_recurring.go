package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// MaterializeRecurring turns one due recurring definition into a concrete
// transaction and advances its next due date by a single period. A
// definition that fell several periods behind catches up one period per
// scheduler run. Skipped definitions (no longer eligible when re-read inside
// the transaction) leave Created nil without error.
type MaterializeRecurring struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Now    time.Time

	Created *transaction.Transaction
}

func (a *MaterializeRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	def, err := writer.Recurring.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if def == nil || !shouldMaterialize(def, a.Now) {
		return nil
	}

	created, err := createTransaction(ctx, writer, TransactionInput{
		Type:                   def.Type,
		Amount:                 def.Amount,
		Description:            def.Description + " (Auto-generated)",
		CategoryID:             def.CategoryID,
		AccountID:              def.AccountID,
		TransactionDate:        *def.NextDueDate,
		RecurringTransactionID: &def.ID,
	}, def.UserID)
	if err != nil {
		return err
	}

	next := dates.NextDueDate(*def.NextDueDate, def.Frequency)
	def.NextDueDate = &next
	if err := writer.Recurring.Update(ctx, def); err != nil {
		return err
	}

	a.Created = created
	return nil
}

// shouldMaterialize re-checks eligibility against the row as read inside
// the storage transaction, not the snapshot the scheduler queried.
func shouldMaterialize(def *recurring.RecurringTransaction, now time.Time) bool {
	if !def.IsActive {
		return false
	}
	if def.EndDate != nil && now.After(*def.EndDate) {
		return false
	}
	return def.NextDueDate != nil && !def.NextDueDate.After(now)
}
