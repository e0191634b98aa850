package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/logging"
	"github.com/hoaikthai/fin-api/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// Period defaults to the current month; offset shifts whole periods,
// negative values reaching into the past.
type ListTransactionsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Period string `query:"period" enum:"day,week,month,quarter,year" doc:"Reporting period, defaults to month"`
	Offset int    `query:"offset" doc:"Period offset relative to now, 0 is the current period"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
// Each transaction carries its account and category.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions in the period, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the service surface for listing transactions.
type transactionLister interface {
	FindAll(ctx context.Context, userID uuid.UUID, period dates.Period, offset int) ([]*service.TransactionDetails, error)
	FindByAccount(ctx context.Context, accountID, userID uuid.UUID, period dates.Period, offset int) ([]*service.TransactionDetails, error)
}

// ListTransactionsHandler handles GET /v1/transaction and
// GET /v1/account/{accountID}/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transaction endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns the user's transactions within the requested period.",
		Tags:        []string{"Transactions"},
	}, h.handle)

	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}/transaction",
		Summary:     "List account transactions",
		Description: "Returns one account's transactions within the requested period.",
		Tags:        []string{"Transactions"},
	}, h.handleByAccount)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.FindAll(ctx, userID, dates.Period(input.Period), input.Offset)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: ToAPITransactionDetails(transactions)},
	}, nil
}

// ListAccountTransactionsInput is the Huma input for listing one account's
// transactions.
type ListAccountTransactionsInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	AccountID string `path:"accountID" doc:"Account UUID"`
	Period    string `query:"period" enum:"day,week,month,quarter,year" doc:"Reporting period, defaults to month"`
	Offset    int    `query:"offset" doc:"Period offset relative to now, 0 is the current period"`
}

func (h *ListTransactionsHandler) handleByAccount(ctx context.Context, input *ListAccountTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := httperr.ParseUUID("accountID", input.AccountID)
	if err != nil {
		return nil, err
	}

	transactions, err := h.TransactionService.FindByAccount(ctx, accountID, userID, dates.Period(input.Period), input.Offset)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: ToAPITransactionDetails(transactions)},
	}, nil
}
