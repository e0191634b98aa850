package category

import (
	storagecat "github.com/hoaikthai/fin-api/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Type      string `json:"type" doc:"Category type: income or expense"`
	IsDefault bool   `json:"isDefault" doc:"Whether the category is a global default"`
	ParentID  string `json:"parentID,omitempty" doc:"Parent category UUID, when nested"`
}

func toAPICategory(cat *storagecat.Category) Category {
	out := Category{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		IsDefault: cat.IsDefault,
	}
	if cat.ParentID != nil {
		out.ParentID = cat.ParentID.String()
	}
	return out
}

func toAPICategories(cats []*storagecat.Category) []Category {
	out := make([]Category, len(cats))
	for i, cat := range cats {
		out[i] = toAPICategory(cat)
	}
	return out
}
