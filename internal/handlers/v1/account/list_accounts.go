package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/logging"
	storageacct "github.com/hoaikthai/fin-api/internal/storage/account"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"The user's accounts, newest first"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the service surface for listing accounts.
type accountLister interface {
	FindAll(ctx context.Context, userID uuid.UUID) ([]*storageacct.Account, error)
}

// ListAccountsHandler handles GET /v1/account.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/account",
		Summary:     "List accounts",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	accounts, err := h.AccountService.FindAll(ctx, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{Accounts: make([]Account, len(accounts))}
	for i, acct := range accounts {
		resp.Accounts[i] = toAPIAccount(acct)
	}
	return &ListAccountsOutput{Body: resp}, nil
}
