package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	storagecat "github.com/hoaikthai/fin-api/internal/storage/category"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Type   string `query:"type" enum:"income,expense" doc:"Restrict to one category type"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Visible categories, defaults included, name ascending"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the service surface for listing categories.
type categoryLister interface {
	FindAll(ctx context.Context, userID uuid.UUID) ([]*storagecat.Category, error)
	FindAllByType(ctx context.Context, userID uuid.UUID, categoryType storagecat.Type) ([]*storagecat.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var categories []*storagecat.Category
	if input.Type != "" {
		categories, err = h.CategoryService.FindAllByType(ctx, userID, storagecat.Type(input.Type))
	} else {
		categories, err = h.CategoryService.FindAll(ctx, userID)
	}
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &ListCategoriesOutput{
		Body: ListCategoriesResponseBody{Categories: toAPICategories(categories)},
	}, nil
}
