package storagetest

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/storage/recurring"
)

// RecurringStore is the in-memory recurring.Store.
type RecurringStore struct {
	db *DB
}

var _ recurring.Store = (*RecurringStore)(nil)

func (s *RecurringStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*recurring.RecurringTransaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	def, ok := s.db.recurring[id]
	if !ok || def.DeletedAt != nil || def.UserID != userID {
		return nil, nil
	}
	out := def
	return &out, nil
}

func (s *RecurringStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*recurring.RecurringTransaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []*recurring.RecurringTransaction
	for _, def := range s.db.recurring {
		if def.DeletedAt != nil || def.UserID != userID {
			continue
		}
		copied := def
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *RecurringStore) ListDue(ctx context.Context, now time.Time) ([]*recurring.RecurringTransaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []*recurring.RecurringTransaction
	for _, def := range s.db.recurring {
		if def.DeletedAt != nil || !def.IsActive {
			continue
		}
		if def.NextDueDate == nil || def.NextDueDate.After(now) {
			continue
		}
		copied := def
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *RecurringStore) Insert(ctx context.Context, create *recurring.RecurringCreate) (*recurring.RecurringTransaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	now := s.db.tick()
	next := create.NextDueDate
	def := recurring.RecurringTransaction{
		ID:          s.db.newID(),
		Type:        create.Type,
		Amount:      create.Amount,
		Description: create.Description,
		CategoryID:  create.CategoryID,
		AccountID:   create.AccountID,
		UserID:      create.UserID,
		Frequency:   create.Frequency,
		StartDate:   create.StartDate,
		EndDate:     create.EndDate,
		NextDueDate: &next,
		IsActive:    create.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.db.recurring[def.ID] = def
	out := def
	return &out, nil
}

func (s *RecurringStore) Update(ctx context.Context, def *recurring.RecurringTransaction) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.recurring[def.ID]
	if !ok {
		return nil
	}
	updated := *def
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.db.tick()
	s.db.recurring[def.ID] = updated
	return nil
}

func (s *RecurringStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	def, ok := s.db.recurring[id]
	if !ok {
		return nil
	}
	now := s.db.tick()
	def.DeletedAt = &now
	def.UpdatedAt = now
	s.db.recurring[id] = def
	return nil
}
