package recurring

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	storagerec "github.com/hoaikthai/fin-api/internal/storage/recurring"
)

// CreateRecurringBody is the request body for creating a recurring
// definition.
type CreateRecurringBody struct {
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount      string `json:"amount" required:"true" doc:"Signed decimal amount"`
	Description string `json:"description" doc:"Description"`
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID"`
	Frequency   string `json:"frequency" required:"true" enum:"daily,weekly,monthly,yearly" doc:"Recurrence"`
	StartDate   string `json:"startDate" required:"true" doc:"RFC3339 start date"`
	EndDate     string `json:"endDate,omitempty" doc:"RFC3339 end date"`
	IsActive    *bool  `json:"isActive,omitempty" doc:"Whether the definition is active, defaults to true"`
}

// CreateRecurringInput is the Huma input for creating a recurring
// definition.
type CreateRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Body   CreateRecurringBody
}

// GetRecurringOutput is the Huma output carrying one recurring definition.
type GetRecurringOutput struct {
	Body RecurringTransaction
}

// ListRecurringInput is the Huma input for listing recurring definitions.
type ListRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
}

// ListRecurringResponseBody is the response body for listing recurring
// definitions.
type ListRecurringResponseBody struct {
	RecurringTransactions []RecurringTransaction `json:"recurringTransactions" doc:"The user's recurring definitions, newest first"`
}

// ListRecurringOutput is the Huma output for listing recurring definitions.
type ListRecurringOutput struct {
	Body ListRecurringResponseBody
}

// GetRecurringInput is the Huma input for fetching one recurring definition.
type GetRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Recurring transaction UUID"`
}

// UpdateRecurringBody is the request body for updating a recurring
// definition. Absent fields keep their current value; an empty endDate
// clears it.
type UpdateRecurringBody struct {
	Type        *string `json:"type,omitempty" enum:"income,expense" doc:"Transaction type"`
	Amount      *string `json:"amount,omitempty" doc:"Signed decimal amount"`
	Description *string `json:"description,omitempty" doc:"Description"`
	CategoryID  *string `json:"categoryID,omitempty" doc:"Category UUID"`
	AccountID   *string `json:"accountID,omitempty" doc:"Account UUID"`
	Frequency   *string `json:"frequency,omitempty" enum:"daily,weekly,monthly,yearly" doc:"Recurrence"`
	StartDate   *string `json:"startDate,omitempty" doc:"RFC3339 start date"`
	EndDate     *string `json:"endDate,omitempty" doc:"RFC3339 end date, empty string to clear"`
	IsActive    *bool   `json:"isActive,omitempty" doc:"Whether the definition is active"`
}

// UpdateRecurringInput is the Huma input for updating a recurring
// definition.
type UpdateRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Recurring transaction UUID"`
	Body   UpdateRecurringBody
}

// DeleteRecurringInput is the Huma input for deleting a recurring
// definition.
type DeleteRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Recurring transaction UUID"`
}

// DeleteRecurringOutput is the Huma output for deleting a recurring
// definition.
type DeleteRecurringOutput struct {
	Status int
}

// recurringManager is the service surface for recurring definitions.
type recurringManager interface {
	Create(ctx context.Context, userID uuid.UUID, input actions.RecurringInput) (*storagerec.RecurringTransaction, error)
	FindAll(ctx context.Context, userID uuid.UUID) ([]*storagerec.RecurringTransaction, error)
	FindOne(ctx context.Context, id, userID uuid.UUID) (*storagerec.RecurringTransaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch actions.RecurringPatch) (*storagerec.RecurringTransaction, error)
	Remove(ctx context.Context, id, userID uuid.UUID) error
}

// ManageRecurringHandler handles the /v1/recurring-transaction endpoints.
type ManageRecurringHandler struct {
	RecurringService recurringManager
}

// NewManageRecurringHandler creates a new ManageRecurringHandler.
func NewManageRecurringHandler(svc recurringManager) *ManageRecurringHandler {
	return &ManageRecurringHandler{RecurringService: svc}
}

// Register registers the recurring endpoints with the Huma API.
func (h *ManageRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-recurring-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/recurring-transaction",
		Summary:       "Create recurring transaction",
		Description:   "Creates a definition whose first due date is one period after the start date.",
		Tags:          []string{"Recurring transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handleCreate)

	huma.Register(api, huma.Operation{
		OperationID: "list-recurring-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/recurring-transaction",
		Summary:     "List recurring transactions",
		Tags:        []string{"Recurring transactions"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-recurring-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/recurring-transaction/{id}",
		Summary:     "Get recurring transaction",
		Tags:        []string{"Recurring transactions"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-recurring-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/recurring-transaction/{id}",
		Summary:     "Update recurring transaction",
		Description: "Patches a definition. Changing frequency or start date reschedules it.",
		Tags:        []string{"Recurring transactions"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-recurring-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/recurring-transaction/{id}",
		Summary:       "Delete recurring transaction",
		Tags:          []string{"Recurring transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

// parseCreateRecurringBody parses and validates the creation body.
func parseCreateRecurringBody(body CreateRecurringBody) (actions.RecurringInput, error) {
	var input actions.RecurringInput

	categoryID, err := httperr.ParseUUID("categoryID", body.CategoryID)
	if err != nil {
		return input, err
	}
	accountID, err := httperr.ParseUUID("accountID", body.AccountID)
	if err != nil {
		return input, err
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	startDate, err := time.Parse(time.RFC3339, body.StartDate)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}

	var endDate *time.Time
	if body.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, body.EndDate)
		if err != nil {
			return input, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		endDate = &parsed
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	return actions.RecurringInput{
		Type:        category.Type(body.Type),
		Amount:      amount,
		Description: body.Description,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Frequency:   dates.Frequency(body.Frequency),
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
	}, nil
}

func (h *ManageRecurringHandler) handleCreate(ctx context.Context, input *CreateRecurringInput) (*GetRecurringOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	svcInput, err := parseCreateRecurringBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.RecurringService.Create(ctx, userID, svcInput)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetRecurringOutput{Body: toAPIRecurring(created)}, nil
}

func (h *ManageRecurringHandler) handleList(ctx context.Context, input *ListRecurringInput) (*ListRecurringOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	defs, err := h.RecurringService.FindAll(ctx, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	resp := ListRecurringResponseBody{RecurringTransactions: make([]RecurringTransaction, len(defs))}
	for i, def := range defs {
		resp.RecurringTransactions[i] = toAPIRecurring(def)
	}
	return &ListRecurringOutput{Body: resp}, nil
}

func (h *ManageRecurringHandler) handleGet(ctx context.Context, input *GetRecurringInput) (*GetRecurringOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	def, err := h.RecurringService.FindOne(ctx, id, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetRecurringOutput{Body: toAPIRecurring(def)}, nil
}

// parseUpdateRecurringBody converts the wire patch into an action patch.
func parseUpdateRecurringBody(body UpdateRecurringBody) (actions.RecurringPatch, error) {
	var patch actions.RecurringPatch

	if body.Type != nil {
		transactionType := category.Type(*body.Type)
		patch.Type = &transactionType
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = &amount
	}
	patch.Description = body.Description
	if body.CategoryID != nil {
		categoryID, err := httperr.ParseUUID("categoryID", *body.CategoryID)
		if err != nil {
			return patch, err
		}
		patch.CategoryID = &categoryID
	}
	if body.AccountID != nil {
		accountID, err := httperr.ParseUUID("accountID", *body.AccountID)
		if err != nil {
			return patch, err
		}
		patch.AccountID = &accountID
	}
	if body.Frequency != nil {
		frequency := dates.Frequency(*body.Frequency)
		patch.Frequency = &frequency
	}
	if body.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *body.StartDate)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		patch.StartDate = &startDate
	}
	if body.EndDate != nil {
		if *body.EndDate == "" {
			patch.ClearEndDate = true
		} else {
			endDate, err := time.Parse(time.RFC3339, *body.EndDate)
			if err != nil {
				return patch, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
			}
			patch.EndDate = &endDate
		}
	}
	patch.IsActive = body.IsActive

	return patch, nil
}

func (h *ManageRecurringHandler) handleUpdate(ctx context.Context, input *UpdateRecurringInput) (*GetRecurringOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateRecurringBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.RecurringService.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetRecurringOutput{Body: toAPIRecurring(updated)}, nil
}

func (h *ManageRecurringHandler) handleDelete(ctx context.Context, input *DeleteRecurringInput) (*DeleteRecurringOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.RecurringService.Remove(ctx, id, userID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteRecurringOutput{Status: http.StatusNoContent}, nil
}
