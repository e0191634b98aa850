package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	storageacct "github.com/hoaikthai/fin-api/internal/storage/account"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// UpdateAccountBody is the request body for updating an account. Absent
// fields keep their current value.
type UpdateAccountBody struct {
	Name        *string `json:"name,omitempty" doc:"Account name"`
	Currency    *string `json:"currency,omitempty" minLength:"3" maxLength:"3" doc:"ISO 4217 currency code"`
	Description *string `json:"description,omitempty" doc:"Description"`
	IsActive    *bool   `json:"isActive,omitempty" doc:"Whether the account is active"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Body   UpdateAccountBody
}

// UpdateBalanceBody is the request body for recalibrating a balance.
type UpdateBalanceBody struct {
	Balance string `json:"balance" required:"true" doc:"Decimal balance"`
}

// UpdateBalanceInput is the Huma input for recalibrating a balance.
type UpdateBalanceInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Body   UpdateBalanceBody
}

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// accountManager is the service surface for the single-account endpoints.
type accountManager interface {
	FindOne(ctx context.Context, id, userID uuid.UUID) (*storageacct.Account, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch actions.AccountPatch) (*storageacct.Account, error)
	UpdateBalance(ctx context.Context, id, userID uuid.UUID, balance decimal.Decimal) (*storageacct.Account, error)
	Remove(ctx context.Context, id, userID uuid.UUID) error
}

// ManageAccountHandler handles GET/PATCH/DELETE /v1/account/{id} and
// PUT /v1/account/{id}/balance.
type ManageAccountHandler struct {
	AccountService accountManager
}

// NewManageAccountHandler creates a new ManageAccountHandler.
func NewManageAccountHandler(svc accountManager) *ManageAccountHandler {
	return &ManageAccountHandler{AccountService: svc}
}

// Register registers the single-account endpoints with the Huma API.
func (h *ManageAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get account",
		Tags:        []string{"Accounts"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Update account",
		Tags:        []string{"Accounts"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "update-account-balance",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}/balance",
		Summary:     "Set account balance",
		Description: "Sets the balance to an explicit value, overriding the maintained one.",
		Tags:        []string{"Accounts"},
	}, h.handleUpdateBalance)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *ManageAccountHandler) handleGet(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	acct, err := h.AccountService.FindOne(ctx, id, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetAccountOutput{Body: toAPIAccount(acct)}, nil
}

func (h *ManageAccountHandler) handleUpdate(ctx context.Context, input *UpdateAccountInput) (*GetAccountOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.AccountService.Update(ctx, id, userID, actions.AccountPatch{
		Name:        input.Body.Name,
		Currency:    input.Body.Currency,
		Description: input.Body.Description,
		IsActive:    input.Body.IsActive,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetAccountOutput{Body: toAPIAccount(updated)}, nil
}

func (h *ManageAccountHandler) handleUpdateBalance(ctx context.Context, input *UpdateBalanceInput) (*GetAccountOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	updated, err := h.AccountService.UpdateBalance(ctx, id, userID, balance)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetAccountOutput{Body: toAPIAccount(updated)}, nil
}

func (h *ManageAccountHandler) handleDelete(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.AccountService.Remove(ctx, id, userID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
