package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/account"
)

// AccountReader is the read surface AccountService needs.
type AccountReader interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*account.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error)
}

// AccountService handles account business logic.
type AccountService struct {
	operator Processor
	accounts AccountReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(op Processor, accounts AccountReader) *AccountService {
	return &AccountService{operator: op, accounts: accounts}
}

// AccountInput carries the fields for creating an account. A zero Balance
// starts the account at 0.
type AccountInput struct {
	Name        string
	Currency    string
	Balance     decimal.Decimal
	Description string
}

// Create creates an account owned by the user.
func (s *AccountService) Create(ctx context.Context, userID uuid.UUID, input AccountInput) (*account.Account, error) {
	action := &actions.CreateAccount{
		Input: account.AccountCreate{
			Name:        input.Name,
			Currency:    input.Currency,
			Balance:     input.Balance,
			Description: input.Description,
			UserID:      userID,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// FindAll lists the user's accounts, newest first.
func (s *AccountService) FindAll(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	return s.accounts.ListByUser(ctx, userID)
}

// FindOne returns one owned account.
func (s *AccountService) FindOne(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	acct, err := s.accounts.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, apperr.NotFound("account not found")
	}
	return acct, nil
}

// Update applies a patch to an owned account.
func (s *AccountService) Update(ctx context.Context, id, userID uuid.UUID, patch actions.AccountPatch) (*account.Account, error) {
	action := &actions.UpdateAccount{ID: id, UserID: userID, Patch: patch}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// UpdateBalance sets an account's balance to an explicit value.
func (s *AccountService) UpdateBalance(ctx context.Context, id, userID uuid.UUID, balance decimal.Decimal) (*account.Account, error) {
	action := &actions.UpdateAccountBalance{ID: id, UserID: userID, Balance: balance}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Remove soft-deletes an owned account.
func (s *AccountService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RemoveAccount{ID: id, UserID: userID})
}
