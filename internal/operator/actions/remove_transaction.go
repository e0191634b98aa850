package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage"
)

// RemoveTransaction soft-deletes a transaction and backs its amount out of
// the owning account's balance in the same storage transaction.
type RemoveTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *RemoveTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("transaction not found")
	}

	if err := writer.Transactions.SoftDelete(ctx, existing.ID); err != nil {
		return err
	}

	acct, err := writer.Accounts.FindByID(ctx, existing.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if acct != nil {
		if err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Sub(existing.Amount)); err != nil {
			return err
		}
	}

	return nil
}
