package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// TransferService moves money between two of a user's accounts.
type TransferService struct {
	operator Processor
	clock    Clock
}

// NewTransferService creates a new TransferService.
func NewTransferService(op Processor, clock Clock) *TransferService {
	return &TransferService{operator: op, clock: clock}
}

// TransferInput carries the fields for one transfer. A zero
// TransactionDate defaults to now; the amount's sign is ignored.
type TransferInput struct {
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               decimal.Decimal
	Description          string
	TransactionDate      time.Time
}

// TransferResult holds the two legs written by a transfer.
type TransferResult struct {
	Outgoing *transaction.Transaction
	Incoming *transaction.Transaction
}

// Transfer writes both legs inside one storage transaction. A failure on
// either leg leaves neither.
func (s *TransferService) Transfer(ctx context.Context, userID uuid.UUID, input TransferInput) (*TransferResult, error) {
	date := input.TransactionDate
	if date.IsZero() {
		date = s.clock.Now()
	}

	action := &actions.Transfer{
		SourceAccountID:      input.SourceAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Amount:               input.Amount,
		Description:          input.Description,
		TransactionDate:      date,
		UserID:               userID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return &TransferResult{Outgoing: action.Outgoing, Incoming: action.Incoming}, nil
}
