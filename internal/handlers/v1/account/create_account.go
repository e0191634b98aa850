package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/service"
	storageacct "github.com/hoaikthai/fin-api/internal/storage/account"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name        string `json:"name" required:"true" doc:"Account name"`
	Currency    string `json:"currency" required:"true" minLength:"3" maxLength:"3" doc:"ISO 4217 currency code"`
	Balance     string `json:"balance" doc:"Opening decimal balance, defaults to 0"`
	Description string `json:"description" doc:"Description"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Body   CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the service surface for creating an account.
type accountCreator interface {
	Create(ctx context.Context, userID uuid.UUID, input service.AccountInput) (*storageacct.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if input.Body.Balance != "" {
		balance, err = decimal.NewFromString(input.Body.Balance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
	}

	created, err := h.AccountService.Create(ctx, userID, service.AccountInput{
		Name:        input.Body.Name,
		Currency:    input.Body.Currency,
		Balance:     balance,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateAccountOutput{Body: toAPIAccount(created)}, nil
}
