package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/storage"
)

// ImportTransactions writes a pre-validated batch of transactions in one
// storage transaction. Any failure rolls back the whole batch, so a file
// either imports completely or not at all.
type ImportTransactions struct {
	Rows   []TransactionInput
	UserID uuid.UUID

	Imported int
}

func (a *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	for _, row := range a.Rows {
		if _, err := createTransaction(ctx, writer, row, a.UserID); err != nil {
			return err
		}
	}
	a.Imported = len(a.Rows)
	return nil
}
