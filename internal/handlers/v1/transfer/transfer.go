package transfer

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/handlers/v1/transaction"
	"github.com/hoaikthai/fin-api/internal/service"
)

// CreateTransferBody is the request body for a transfer between accounts.
type CreateTransferBody struct {
	SourceAccountID      string `json:"sourceAccountID" required:"true" doc:"Source account UUID"`
	DestinationAccountID string `json:"destinationAccountID" required:"true" doc:"Destination account UUID"`
	Amount               string `json:"amount" required:"true" doc:"Decimal amount to move, sign ignored"`
	Description          string `json:"description" doc:"Description shared by both legs"`
	TransactionDate      string `json:"transactionDate" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransferInput is the Huma input for a transfer.
type CreateTransferInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	Body   CreateTransferBody
}

// CreateTransferResponseBody carries both legs of a completed transfer.
type CreateTransferResponseBody struct {
	Outgoing transaction.Transaction `json:"outgoing" doc:"Expense leg on the source account"`
	Incoming transaction.Transaction `json:"incoming" doc:"Income leg on the destination account"`
}

// CreateTransferOutput is the Huma output for a transfer.
type CreateTransferOutput struct {
	Body CreateTransferResponseBody
}

// transferrer is the service surface for transfers.
type transferrer interface {
	Transfer(ctx context.Context, userID uuid.UUID, input service.TransferInput) (*service.TransferResult, error)
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	TransferService transferrer
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(svc transferrer) *CreateTransferHandler {
	return &CreateTransferHandler{TransferService: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transfer",
		Method:        http.MethodPost,
		Path:          "/v1/transfer",
		Summary:       "Transfer between accounts",
		Description:   "Writes both legs of a transfer atomically.",
		Tags:          []string{"Transfers"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	sourceID, err := httperr.ParseUUID("sourceAccountID", input.Body.SourceAccountID)
	if err != nil {
		return nil, err
	}
	destinationID, err := httperr.ParseUUID("destinationAccountID", input.Body.DestinationAccountID)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	result, err := h.TransferService.Transfer(ctx, userID, service.TransferInput{
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               amount,
		Description:          input.Body.Description,
		TransactionDate:      transactionDate,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &CreateTransferOutput{
		Body: CreateTransferResponseBody{
			Outgoing: transaction.ToAPITransaction(result.Outgoing),
			Incoming: transaction.ToAPITransaction(result.Incoming),
		},
	}, nil
}
