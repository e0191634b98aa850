package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// Reader bundles the read-side stores over a shared executor.
type Reader struct {
	Accounts     *account.Reader
	Categories   *category.Reader
	Transactions *transaction.Reader
	Recurring    *recurring.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Recurring:    recurring.NewReader(exec),
	}
}
