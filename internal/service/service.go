package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage"
)

// Processor executes an action inside a single storage transaction. The
// operator delegator is the production implementation; storagetest provides
// a synchronous one.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Clock supplies the current time. Injected so range resolution and due-date
// logic are testable against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Transfer    *TransferService
	Recurring   *RecurringService
}

// NewService creates a new Service over the given reader, operator, and clock.
func NewService(reader *storage.Reader, op Processor, clock Clock, log *logrus.Logger) *Service {
	return &Service{
		Account:     NewAccountService(op, reader.Accounts),
		Category:    NewCategoryService(op, reader.Categories, log),
		Transaction: NewTransactionService(op, reader.Accounts, reader.Categories, reader.Transactions, clock),
		Transfer:    NewTransferService(op, clock),
		Recurring:   NewRecurringService(op, reader.Recurring, clock, log),
	}
}
