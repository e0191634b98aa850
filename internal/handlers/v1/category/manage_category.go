package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/service"
	storagecat "github.com/hoaikthai/fin-api/internal/storage/category"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name     string `json:"name" required:"true" doc:"Category name"`
	Type     string `json:"type" required:"true" enum:"income,expense" doc:"Category type"`
	ParentID string `json:"parentID,omitempty" doc:"Parent category UUID; nesting is one level deep"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Body   CreateCategoryBody
}

// GetCategoryInput is the Huma input for fetching one category.
type GetCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Category UUID"`
}

// GetCategoryOutput is the Huma output carrying one category.
type GetCategoryOutput struct {
	Body Category
}

// UpdateCategoryBody is the request body for updating a category. Absent
// fields keep their current value; an empty parentID detaches the category
// from its parent.
type UpdateCategoryBody struct {
	Name     *string `json:"name,omitempty" doc:"Category name"`
	Type     *string `json:"type,omitempty" enum:"income,expense" doc:"Category type"`
	ParentID *string `json:"parentID,omitempty" doc:"Parent category UUID, empty string to detach"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Category UUID"`
	Body   UpdateCategoryBody
}

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// categoryManager is the service surface for category mutations.
type categoryManager interface {
	Create(ctx context.Context, userID uuid.UUID, input service.CategoryInput) (*storagecat.Category, error)
	FindOne(ctx context.Context, id, userID uuid.UUID) (*storagecat.Category, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch actions.CategoryPatch) (*storagecat.Category, error)
	Remove(ctx context.Context, id, userID uuid.UUID) error
}

// ManageCategoryHandler handles POST /v1/category and
// GET/PATCH/DELETE /v1/category/{id}.
type ManageCategoryHandler struct {
	CategoryService categoryManager
}

// NewManageCategoryHandler creates a new ManageCategoryHandler.
func NewManageCategoryHandler(svc categoryManager) *ManageCategoryHandler {
	return &ManageCategoryHandler{CategoryService: svc}
}

// Register registers the category endpoints with the Huma API.
func (h *ManageCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handleCreate)

	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Patches a user category. Default categories cannot be modified.",
		Tags:        []string{"Categories"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete category",
		Description:   "Deletes a user category with no children and no transactions.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *ManageCategoryHandler) handleCreate(ctx context.Context, input *CreateCategoryInput) (*GetCategoryOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	svcInput := service.CategoryInput{
		Name: input.Body.Name,
		Type: storagecat.Type(input.Body.Type),
	}
	if input.Body.ParentID != "" {
		parentID, err := httperr.ParseUUID("parentID", input.Body.ParentID)
		if err != nil {
			return nil, err
		}
		svcInput.ParentID = &parentID
	}

	created, err := h.CategoryService.Create(ctx, userID, svcInput)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetCategoryOutput{Body: toAPICategory(created)}, nil
}

func (h *ManageCategoryHandler) handleGet(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	cat, err := h.CategoryService.FindOne(ctx, id, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetCategoryOutput{Body: toAPICategory(cat)}, nil
}

func (h *ManageCategoryHandler) handleUpdate(ctx context.Context, input *UpdateCategoryInput) (*GetCategoryOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	patch := actions.CategoryPatch{Name: input.Body.Name}
	if input.Body.Type != nil {
		categoryType := storagecat.Type(*input.Body.Type)
		patch.Type = &categoryType
	}
	if input.Body.ParentID != nil {
		if *input.Body.ParentID == "" {
			patch.ClearParent = true
		} else {
			parentID, err := httperr.ParseUUID("parentID", *input.Body.ParentID)
			if err != nil {
				return nil, err
			}
			patch.ParentID = &parentID
		}
	}

	updated, err := h.CategoryService.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetCategoryOutput{Body: toAPICategory(updated)}, nil
}

func (h *ManageCategoryHandler) handleDelete(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.Remove(ctx, id, userID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
