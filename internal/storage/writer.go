package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// Tx is the commit surface of a storage transaction. bob.Tx satisfies it;
// storagetest provides a snapshot-based fake.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Action is a unit of work performed against an open Writer. Perform runs
// with the Writer bound to one transaction; the caller commits on success
// and rolls back on error.
type Action interface {
	Perform(ctx context.Context, writer *Writer) error
}

// Writer bundles the write-side stores over one transaction. Everything done
// through a Writer commits or rolls back as a unit.
type Writer struct {
	tx           Tx
	Accounts     account.Store
	Categories   category.Store
	Transactions transaction.Store
	Recurring    recurring.Store
}

// NewWriter assembles a Writer from a transaction handle and stores. Exported
// so storagetest can build Writers around in-memory fakes.
func NewWriter(tx Tx, accounts account.Store, categories category.Store, transactions transaction.Store, recurringStore recurring.Store) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     accounts,
		Categories:   categories,
		Transactions: transactions,
		Recurring:    recurringStore,
	}
}

func newTxWriter(tx bob.Tx) *Writer {
	return NewWriter(tx,
		account.NewWriter(tx),
		category.NewWriter(tx),
		transaction.NewWriter(tx),
		recurring.NewWriter(tx),
	)
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
