package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// TransactionReader is the read surface TransactionService needs.
type TransactionReader interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error)
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*transaction.Transaction, error)
	ListByAccountSince(ctx context.Context, accountID, userID uuid.UUID, since time.Time) ([]*transaction.Transaction, error)
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	operator     Processor
	accounts     AccountReader
	categories   CategoryReader
	transactions TransactionReader
	clock        Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(op Processor, accounts AccountReader, categories CategoryReader, transactions TransactionReader, clock Clock) *TransactionService {
	return &TransactionService{
		operator:     op,
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
		clock:        clock,
	}
}

// TransactionInput carries the fields for creating a transaction. A zero
// TransactionDate defaults to now.
type TransactionInput struct {
	Type            category.Type
	Amount          decimal.Decimal
	Description     string
	CategoryID      uuid.UUID
	AccountID       uuid.UUID
	TransactionDate time.Time
}

// Create creates a transaction for the user. Sign, type, ownership, and
// category rules are enforced inside the write transaction.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, input TransactionInput) (*transaction.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperr.InvalidInput("invalid transaction type %q", input.Type)
	}
	date := input.TransactionDate
	if date.IsZero() {
		date = s.clock.Now()
	}

	action := &actions.CreateTransaction{
		Input: actions.TransactionInput{
			Type:            input.Type,
			Amount:          input.Amount,
			Description:     input.Description,
			CategoryID:      input.CategoryID,
			AccountID:       input.AccountID,
			TransactionDate: date,
		},
		UserID: userID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// TransactionDetails is a transaction together with its account and
// category rows. Account is nil when the account has since been removed.
type TransactionDetails struct {
	Transaction *transaction.Transaction
	Account     *account.Account
	Category    *category.Category
}

// FindAll lists the user's transactions within the requested period, newest
// first, with account and category attached. Period defaults to month;
// offset shifts whole periods, negative values reaching into the past.
func (s *TransactionService) FindAll(ctx context.Context, userID uuid.UUID, period dates.Period, offset int) ([]*TransactionDetails, error) {
	since, err := s.rangeStart(period, offset)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	return s.attachRelations(ctx, userID, txs)
}

// FindByAccount lists one account's transactions within the requested
// period, after checking the account belongs to the user.
func (s *TransactionService) FindByAccount(ctx context.Context, accountID, userID uuid.UUID, period dates.Period, offset int) ([]*TransactionDetails, error) {
	acct, err := s.accounts.FindByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, apperr.NotFound("account not found")
	}

	since, err := s.rangeStart(period, offset)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByAccountSince(ctx, accountID, userID, since)
	if err != nil {
		return nil, err
	}
	return s.attachRelations(ctx, userID, txs)
}

func (s *TransactionService) attachRelations(ctx context.Context, userID uuid.UUID, txs []*transaction.Transaction) ([]*TransactionDetails, error) {
	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListVisibleTo(ctx, userID)
	if err != nil {
		return nil, err
	}

	accountsByID := make(map[uuid.UUID]*account.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.ID] = a
	}
	categoriesByID := make(map[uuid.UUID]*category.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}

	details := make([]*TransactionDetails, 0, len(txs))
	for _, tx := range txs {
		details = append(details, &TransactionDetails{
			Transaction: tx,
			Account:     accountsByID[tx.AccountID],
			Category:    categoriesByID[tx.CategoryID],
		})
	}
	return details, nil
}

// FindOne returns one owned transaction.
func (s *TransactionService) FindOne(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	tx, err := s.transactions.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperr.NotFound("transaction not found")
	}
	return tx, nil
}

// Update applies a patch to an owned transaction. The merged state is
// re-validated against the same rules as creation.
func (s *TransactionService) Update(ctx context.Context, id, userID uuid.UUID, patch actions.TransactionPatch) (*transaction.Transaction, error) {
	action := &actions.UpdateTransaction{ID: id, UserID: userID, Patch: patch}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Remove soft-deletes an owned transaction.
func (s *TransactionService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RemoveTransaction{ID: id, UserID: userID})
}

func (s *TransactionService) rangeStart(period dates.Period, offset int) (time.Time, error) {
	if !period.Valid() {
		return time.Time{}, apperr.InvalidInput("invalid period %q", period)
	}
	return dates.RangeStart(s.clock.Now(), period, offset), nil
}
