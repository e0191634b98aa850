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

// Transfer moves money between two accounts by writing an expense leg on the
// source and an income leg on the destination, both inside one storage
// transaction. The legs share the description and date and point at each
// other through related_transaction_id.
type Transfer struct {
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               decimal.Decimal
	Description          string
	TransactionDate      time.Time
	UserID               uuid.UUID

	Outgoing *transaction.Transaction
	Incoming *transaction.Transaction
}

func (a *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.SourceAccountID == a.DestinationAccountID {
		return apperr.InvalidInput("source and destination accounts must be different")
	}

	source, err := writer.Accounts.FindByID(ctx, a.SourceAccountID, a.UserID)
	if err != nil {
		return err
	}
	if source == nil {
		return apperr.NotFound("source account not found")
	}

	destination, err := writer.Accounts.FindByID(ctx, a.DestinationAccountID, a.UserID)
	if err != nil {
		return err
	}
	if destination == nil {
		return apperr.NotFound("destination account not found")
	}

	outgoingCategory, err := writer.Categories.FindDefaultByName(ctx, category.OutgoingTransferName, category.TypeExpense)
	if err != nil {
		return err
	}
	if outgoingCategory == nil {
		return apperr.NotFound("default outgoing transfer category not found")
	}

	incomingCategory, err := writer.Categories.FindDefaultByName(ctx, category.IncomingTransferName, category.TypeIncome)
	if err != nil {
		return err
	}
	if incomingCategory == nil {
		return apperr.NotFound("default incoming transfer category not found")
	}

	amount := a.Amount.Abs()

	outgoing, err := createTransaction(ctx, writer, TransactionInput{
		Type:            category.TypeExpense,
		Amount:          amount.Neg(),
		Description:     a.Description,
		CategoryID:      outgoingCategory.ID,
		AccountID:       source.ID,
		TransactionDate: a.TransactionDate,
	}, a.UserID)
	if err != nil {
		return err
	}

	incoming, err := createTransaction(ctx, writer, TransactionInput{
		Type:                 category.TypeIncome,
		Amount:               amount,
		Description:          a.Description,
		CategoryID:           incomingCategory.ID,
		AccountID:            destination.ID,
		TransactionDate:      a.TransactionDate,
		RelatedTransactionID: &outgoing.ID,
	}, a.UserID)
	if err != nil {
		return err
	}

	if err := writer.Transactions.SetRelated(ctx, outgoing.ID, incoming.ID); err != nil {
		return err
	}
	outgoing.RelatedTransactionID = &incoming.ID

	a.Outgoing = outgoing
	a.Incoming = incoming
	return nil
}
