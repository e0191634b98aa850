package storagetest

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/storage/account"
)

// AccountStore is the in-memory account.Store.
type AccountStore struct {
	db *DB
}

var _ account.Store = (*AccountStore)(nil)

func (s *AccountStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[id]
	if !ok || acct.DeletedAt != nil || acct.UserID != userID {
		return nil, nil
	}
	out := acct
	return &out, nil
}

func (s *AccountStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []*account.Account
	for _, acct := range s.db.accounts {
		if acct.DeletedAt != nil || acct.UserID != userID {
			continue
		}
		copied := acct
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *AccountStore) Insert(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	now := s.db.tick()
	acct := account.Account{
		ID:          s.db.newID(),
		Name:        create.Name,
		Currency:    create.Currency,
		Balance:     create.Balance,
		Description: create.Description,
		IsActive:    true,
		UserID:      create.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.db.accounts[acct.ID] = acct
	out := acct
	return &out, nil
}

func (s *AccountStore) Update(ctx context.Context, acct *account.Account) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.accounts[acct.ID]
	if !ok {
		return nil
	}
	updated := *acct
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.db.tick()
	s.db.accounts[acct.ID] = updated
	return nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[id]
	if !ok {
		return nil
	}
	acct.Balance = balance
	acct.UpdatedAt = s.db.tick()
	s.db.accounts[id] = acct
	return nil
}

func (s *AccountStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[id]
	if !ok {
		return nil
	}
	now := s.db.tick()
	acct.DeletedAt = &now
	acct.UpdatedAt = now
	s.db.accounts[id] = acct
	return nil
}
