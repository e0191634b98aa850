package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/handlers/v1/httperr"
	"github.com/hoaikthai/fin-api/internal/service"
)

// ImportTransactionsInput is the Huma input for CSV import. The body is the
// raw CSV file.
type ImportTransactionsInput struct {
	UserID  string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	RawBody []byte `contentType:"text/csv"`
}

// ImportTransactionsResponseBody reports the import outcome. Imported is
// zero whenever errors is non-empty.
type ImportTransactionsResponseBody struct {
	Imported int      `json:"imported" doc:"Number of imported transactions"`
	Errors   []string `json:"errors" doc:"Row-level validation errors, empty on success"`
}

// ImportTransactionsOutput is the Huma output for CSV import.
type ImportTransactionsOutput struct {
	Body ImportTransactionsResponseBody
}

// transactionImporter is the service surface for CSV import.
type transactionImporter interface {
	ImportFromCSV(ctx context.Context, userID uuid.UUID, data []byte) (*service.ImportResult, error)
}

// ImportTransactionsHandler handles POST /v1/transaction/import.
type ImportTransactionsHandler struct {
	TransactionService transactionImporter
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(svc transactionImporter) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{TransactionService: svc}
}

// Register registers the import endpoint with the Huma API.
func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/import",
		Summary:     "Import transactions from CSV",
		Description: "Imports a CSV file. The whole file imports or none of it does.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	userID, err := httperr.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.ImportFromCSV(ctx, userID, input.RawBody)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	errorMessages := result.Errors
	if errorMessages == nil {
		errorMessages = []string{}
	}
	return &ImportTransactionsOutput{
		Body: ImportTransactionsResponseBody{
			Imported: result.Imported,
			Errors:   errorMessages,
		},
	}, nil
}
