package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/service"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	storagetx "github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type            string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount          string `json:"amount" required:"true" doc:"Signed decimal amount, positive for income and negative for expense"`
	Description     string `json:"description" doc:"Description"`
	CategoryID      string `json:"categoryID" required:"true" doc:"Category UUID"`
	AccountID       string `json:"accountID" required:"true" doc:"Account UUID"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the service surface for creating a transaction.
type transactionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, input service.TransactionInput) (*storagetx.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction and adjusts the account balance.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.UUID, service.TransactionInput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}
	categoryID, err := httperr.ParseUUID("categoryID", input.Body.CategoryID)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}
	accountID, err := httperr.ParseUUID("accountID", input.Body.AccountID)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return uuid.Nil, service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return userID, service.TransactionInput{
		Type:            category.Type(input.Body.Type),
		Amount:          amount,
		Description:     input.Body.Description,
		CategoryID:      categoryID,
		AccountID:       accountID,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, svcInput, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.Create(ctx, userID, svcInput)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateTransactionOutput{Body: ToAPITransaction(created)}, nil
}
