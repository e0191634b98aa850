package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// CreateCategory creates a user category. Nesting is a single level: the
// parent must be visible to the user, must not itself have a parent, and
// must share the child's type.
type CreateCategory struct {
	Name     string
	Type     category.Type
	ParentID *uuid.UUID
	UserID   uuid.UUID

	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Type.Valid() {
		return apperr.InvalidInput("invalid category type %q", a.Type)
	}

	if a.ParentID != nil {
		if err := validateParent(ctx, writer, *a.ParentID, a.Type, a.UserID); err != nil {
			return err
		}
	}

	created, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		Name:     a.Name,
		Type:     a.Type,
		UserID:   &a.UserID,
		ParentID: a.ParentID,
	})
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

// CategoryPatch holds the optional fields of a category update. Nil fields
// keep their current value.
type CategoryPatch struct {
	Name     *string
	Type     *category.Type
	ParentID *uuid.UUID
	// ClearParent detaches the category from its parent when true.
	ClearParent bool
}

// UpdateCategory applies a patch to a user category. Default categories are
// immutable.
type UpdateCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Patch  CategoryPatch

	Result *category.Category
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("category not found")
	}
	if existing.IsDefault {
		return apperr.Forbidden("default categories cannot be modified")
	}
	if !existing.VisibleTo(a.UserID) {
		return apperr.Forbidden("access denied to this category")
	}

	if a.Patch.Name != nil {
		existing.Name = *a.Patch.Name
	}
	if a.Patch.Type != nil {
		if !a.Patch.Type.Valid() {
			return apperr.InvalidInput("invalid category type %q", *a.Patch.Type)
		}
		existing.Type = *a.Patch.Type
	}
	if a.Patch.ClearParent {
		existing.ParentID = nil
	} else if a.Patch.ParentID != nil {
		existing.ParentID = a.Patch.ParentID
	}

	if existing.ParentID != nil {
		if err := validateParent(ctx, writer, *existing.ParentID, existing.Type, a.UserID); err != nil {
			return err
		}
	}

	if err := writer.Categories.Update(ctx, existing); err != nil {
		return err
	}
	a.Result = existing
	return nil
}

// RemoveCategory soft-deletes a user category. Defaults cannot be removed,
// and a category still referenced by children or transactions is kept.
type RemoveCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *RemoveCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("category not found")
	}
	if existing.IsDefault {
		return apperr.Forbidden("default categories cannot be deleted")
	}
	if !existing.VisibleTo(a.UserID) {
		return apperr.Forbidden("access denied to this category")
	}

	children, err := writer.Categories.CountChildren(ctx, existing.ID)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperr.InvalidInput("category has child categories and cannot be deleted")
	}

	used, err := writer.Transactions.CountByCategory(ctx, existing.ID)
	if err != nil {
		return err
	}
	if used > 0 {
		return apperr.InvalidInput("category has transactions and cannot be deleted")
	}

	return writer.Categories.SoftDelete(ctx, existing.ID)
}

// SeedDefaultCategories inserts the global default category tree when it is
// not already present. Safe to run on every boot.
type SeedDefaultCategories struct {
	Seeded int
}

func (a *SeedDefaultCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.CountDefaults(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	parents := make(map[string]*category.Category)
	for _, seed := range category.DefaultParents() {
		created, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
			Name:      seed.Name,
			Type:      seed.Type,
			IsDefault: true,
		})
		if err != nil {
			return err
		}
		parents[seed.Name] = created
		a.Seeded++
	}

	// Children carry no type of their own in the seed; they take the
	// parent's.
	for _, seed := range category.DefaultChildren() {
		parent, ok := parents[seed.Parent]
		if !ok {
			return apperr.InvalidInput("default seed references unknown parent %q", seed.Parent)
		}
		_, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
			Name:      seed.Name,
			Type:      parent.Type,
			IsDefault: true,
			ParentID:  &parent.ID,
		})
		if err != nil {
			return err
		}
		a.Seeded++
	}

	return nil
}

func validateParent(ctx context.Context, writer *storage.Writer, parentID uuid.UUID, childType category.Type, userID uuid.UUID) error {
	parent, err := writer.Categories.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return apperr.NotFound("parent category not found")
	}
	if !parent.VisibleTo(userID) {
		return apperr.Forbidden("access denied to the parent category")
	}
	if parent.ParentID != nil {
		return apperr.InvalidInput("parent category is itself a child; nesting is limited to one level")
	}
	if parent.Type != childType {
		return apperr.InvalidInput("category type must match the parent category type")
	}
	return nil
}
