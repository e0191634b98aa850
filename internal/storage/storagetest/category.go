package storagetest

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// CategoryStore is the in-memory category.Store.
type CategoryStore struct {
	db *DB
}

var _ category.Store = (*CategoryStore)(nil)

func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	cat, ok := s.db.categories[id]
	if !ok || cat.DeletedAt != nil {
		return nil, nil
	}
	out := cat
	return &out, nil
}

func (s *CategoryStore) FindDefaultByName(ctx context.Context, name string, categoryType category.Type) (*category.Category, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, cat := range s.db.categories {
		if cat.DeletedAt != nil || !cat.IsDefault {
			continue
		}
		if cat.Name == name && cat.Type == categoryType {
			out := cat
			return &out, nil
		}
	}
	return nil, nil
}

func (s *CategoryStore) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	return s.list(userID, nil)
}

func (s *CategoryStore) ListVisibleToByType(ctx context.Context, userID uuid.UUID, categoryType category.Type) ([]*category.Category, error) {
	return s.list(userID, &categoryType)
}

func (s *CategoryStore) list(userID uuid.UUID, categoryType *category.Type) ([]*category.Category, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []*category.Category
	for _, cat := range s.db.categories {
		if cat.DeletedAt != nil || !cat.VisibleTo(userID) {
			continue
		}
		if categoryType != nil && cat.Type != *categoryType {
			continue
		}
		copied := cat
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *CategoryStore) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var n int64
	for _, cat := range s.db.categories {
		if cat.DeletedAt == nil && cat.ParentID != nil && *cat.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (s *CategoryStore) CountDefaults(ctx context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var n int64
	for _, cat := range s.db.categories {
		if cat.DeletedAt == nil && cat.IsDefault {
			n++
		}
	}
	return n, nil
}

func (s *CategoryStore) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	now := s.db.tick()
	cat := category.Category{
		ID:        s.db.newID(),
		Name:      create.Name,
		Type:      create.Type,
		IsDefault: create.IsDefault,
		UserID:    create.UserID,
		ParentID:  create.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.db.categories[cat.ID] = cat
	out := cat
	return &out, nil
}

func (s *CategoryStore) Update(ctx context.Context, cat *category.Category) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.categories[cat.ID]
	if !ok {
		return nil
	}
	updated := *cat
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.db.tick()
	s.db.categories[cat.ID] = updated
	return nil
}

func (s *CategoryStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	cat, ok := s.db.categories[id]
	if !ok {
		return nil
	}
	now := s.db.tick()
	cat.DeletedAt = &now
	cat.UpdatedAt = now
	s.db.categories[id] = cat
	return nil
}
