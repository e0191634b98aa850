package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// CategoryReader is the read surface CategoryService needs.
type CategoryReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
	ListVisibleToByType(ctx context.Context, userID uuid.UUID, categoryType category.Type) ([]*category.Category, error)
}

// CategoryService handles category business logic.
type CategoryService struct {
	operator   Processor
	categories CategoryReader
	log        *logrus.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(op Processor, categories CategoryReader, log *logrus.Logger) *CategoryService {
	return &CategoryService{operator: op, categories: categories, log: log}
}

// CategoryInput carries the fields for creating a category.
type CategoryInput struct {
	Name     string
	Type     category.Type
	ParentID *uuid.UUID
}

// Create creates a user category.
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, input CategoryInput) (*category.Category, error) {
	action := &actions.CreateCategory{
		Name:     input.Name,
		Type:     input.Type,
		ParentID: input.ParentID,
		UserID:   userID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// FindAll lists the categories visible to the user, defaults included.
func (s *CategoryService) FindAll(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	return s.categories.ListVisibleTo(ctx, userID)
}

// FindAllByType lists visible categories of one type.
func (s *CategoryService) FindAllByType(ctx context.Context, userID uuid.UUID, categoryType category.Type) ([]*category.Category, error) {
	if !categoryType.Valid() {
		return nil, apperr.InvalidInput("invalid category type %q", categoryType)
	}
	return s.categories.ListVisibleToByType(ctx, userID, categoryType)
}

// FindOne returns one visible category.
func (s *CategoryService) FindOne(ctx context.Context, id, userID uuid.UUID) (*category.Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("category not found")
	}
	if !cat.VisibleTo(userID) {
		return nil, apperr.Forbidden("access denied to this category")
	}
	return cat, nil
}

// Update applies a patch to a user category.
func (s *CategoryService) Update(ctx context.Context, id, userID uuid.UUID, patch actions.CategoryPatch) (*category.Category, error) {
	action := &actions.UpdateCategory{ID: id, UserID: userID, Patch: patch}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Remove soft-deletes a user category.
func (s *CategoryService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RemoveCategory{ID: id, UserID: userID})
}

// EnsureDefaultsSeeded inserts the global default categories when missing.
// Runs at boot; a second run is a no-op.
func (s *CategoryService) EnsureDefaultsSeeded(ctx context.Context) error {
	action := &actions.SeedDefaultCategories{}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}
	if action.Seeded > 0 {
		s.log.WithField("count", action.Seeded).Info("CategoryService.SeedDefaults.Complete")
	}
	return nil
}
