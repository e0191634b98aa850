package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	storagetx "github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// UpdateTransactionBody is the request body for updating a transaction.
// Absent fields keep their current value.
type UpdateTransactionBody struct {
	Type            *string `json:"type,omitempty" enum:"income,expense" doc:"Transaction type"`
	Amount          *string `json:"amount,omitempty" doc:"Signed decimal amount"`
	Description     *string `json:"description,omitempty" doc:"Description"`
	CategoryID      *string `json:"categoryID,omitempty" doc:"Category UUID"`
	AccountID       *string `json:"accountID,omitempty" doc:"Account UUID"`
	TransactionDate *string `json:"transactionDate,omitempty" doc:"RFC3339 transaction date"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
	Body   UpdateTransactionBody
}

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// transactionManager is the service surface for the single-transaction
// endpoints.
type transactionManager interface {
	FindOne(ctx context.Context, id, userID uuid.UUID) (*storagetx.Transaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch actions.TransactionPatch) (*storagetx.Transaction, error)
	Remove(ctx context.Context, id, userID uuid.UUID) error
}

// ManageTransactionHandler handles GET/PATCH/DELETE /v1/transaction/{id}.
type ManageTransactionHandler struct {
	TransactionService transactionManager
}

// NewManageTransactionHandler creates a new ManageTransactionHandler.
func NewManageTransactionHandler(svc transactionManager) *ManageTransactionHandler {
	return &ManageTransactionHandler{TransactionService: svc}
}

// Register registers the single-transaction endpoints with the Huma API.
func (h *ManageTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Patches a transaction. The merged state is validated like a new one.",
		Tags:        []string{"Transactions"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *ManageTransactionHandler) handleGet(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.FindOne(ctx, id, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetTransactionOutput{Body: ToAPITransaction(tx)}, nil
}

// parseUpdateTransactionBody converts the wire patch into an action patch.
func parseUpdateTransactionBody(body UpdateTransactionBody) (actions.TransactionPatch, error) {
	var patch actions.TransactionPatch

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
	if body.TransactionDate != nil {
		transactionDate, err := time.Parse(time.RFC3339, *body.TransactionDate)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		patch.TransactionDate = &transactionDate
	}

	return patch, nil
}

func (h *ManageTransactionHandler) handleUpdate(ctx context.Context, input *UpdateTransactionInput) (*GetTransactionOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetTransactionOutput{Body: ToAPITransaction(updated)}, nil
}

func (h *ManageTransactionHandler) handleDelete(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := httperr.ParseUUID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.Remove(ctx, id, userID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
