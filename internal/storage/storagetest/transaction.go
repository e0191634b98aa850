package storagetest

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// TransactionStore is the in-memory transaction.Store.
type TransactionStore struct {
	db *DB
}

var _ transaction.Store = (*TransactionStore)(nil)

func (s *TransactionStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	tx, ok := s.db.transactions[id]
	if !ok || tx.DeletedAt != nil || tx.UserID != userID {
		return nil, nil
	}
	out := tx
	return &out, nil
}

func (s *TransactionStore) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*transaction.Transaction, error) {
	return s.list(func(tx transaction.Transaction) bool {
		return tx.UserID == userID && !tx.TransactionDate.Before(since)
	})
}

func (s *TransactionStore) ListByAccountSince(ctx context.Context, accountID, userID uuid.UUID, since time.Time) ([]*transaction.Transaction, error) {
	return s.list(func(tx transaction.Transaction) bool {
		return tx.UserID == userID && tx.AccountID == accountID && !tx.TransactionDate.Before(since)
	})
}

func (s *TransactionStore) list(keep func(transaction.Transaction) bool) ([]*transaction.Transaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []*transaction.Transaction
	for _, tx := range s.db.transactions {
		if tx.DeletedAt != nil || !keep(tx) {
			continue
		}
		copied := tx
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.After(out[j].TransactionDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *TransactionStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var n int64
	for _, tx := range s.db.transactions {
		if tx.DeletedAt == nil && tx.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *TransactionStore) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	now := s.db.tick()
	tx := transaction.Transaction{
		ID:                     s.db.newID(),
		Type:                   create.Type,
		Amount:                 create.Amount,
		Description:            create.Description,
		CategoryID:             create.CategoryID,
		AccountID:              create.AccountID,
		UserID:                 create.UserID,
		TransactionDate:        create.TransactionDate,
		RelatedTransactionID:   create.RelatedTransactionID,
		RecurringTransactionID: create.RecurringTransactionID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	s.db.transactions[tx.ID] = tx
	out := tx
	return &out, nil
}

func (s *TransactionStore) Update(ctx context.Context, tx *transaction.Transaction) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.transactions[tx.ID]
	if !ok {
		return nil
	}
	updated := *tx
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.db.tick()
	s.db.transactions[tx.ID] = updated
	return nil
}

func (s *TransactionStore) SetRelated(ctx context.Context, id, relatedID uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	tx, ok := s.db.transactions[id]
	if !ok {
		return nil
	}
	related := relatedID
	tx.RelatedTransactionID = &related
	tx.UpdatedAt = s.db.tick()
	s.db.transactions[id] = tx
	return nil
}

func (s *TransactionStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	tx, ok := s.db.transactions[id]
	if !ok {
		return nil
	}
	now := s.db.tick()
	tx.DeletedAt = &now
	tx.UpdatedAt = now
	s.db.transactions[id] = tx
	return nil
}
