package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/service"
)

// mockTransactionImporter is a mock for transactionImporter.
type mockTransactionImporter struct {
	mock.Mock
}

func (m *mockTransactionImporter) ImportFromCSV(ctx context.Context, userID uuid.UUID, data []byte) (*service.ImportResult, error) {
	args := m.Called(ctx, userID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func newImportTestAPI(t *testing.T, svc transactionImporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewImportTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ImportTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	csvData := "Date,Category,Amount,Currency,Wallet\n2024-03-01,Salary,5000.00,USD,Cash\n"

	mockSvc := new(mockTransactionImporter)
	mockSvc.On("ImportFromCSV", mock.Anything, userID, []byte(csvData)).
		Return(&service.ImportResult{Imported: 1}, nil)

	resp := newImportTestAPI(t, mockSvc).Post("/v1/transaction/import",
		userHeader(userID), "Content-Type: text/csv", strings.NewReader(csvData))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ImportTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Imported)
	assert.Equal(t, []string{}, body.Errors)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportTransactions_RowErrorsReturnedWithoutImport(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionImporter)
	mockSvc.On("ImportFromCSV", mock.Anything, userID, mock.Anything).
		Return(&service.ImportResult{
			Imported: 0,
			Errors:   []string{"Row 2: wallet is required"},
		}, nil)

	resp := newImportTestAPI(t, mockSvc).Post("/v1/transaction/import",
		userHeader(userID), "Content-Type: text/csv", strings.NewReader("Date,Category,Amount,Currency,Wallet\n,,,\n"))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ImportTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Imported)
	assert.Equal(t, []string{"Row 2: wallet is required"}, body.Errors)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportTransactions_StructuralErrorMapsTo400(t *testing.T) {
	mockSvc := new(mockTransactionImporter)
	mockSvc.On("ImportFromCSV", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperr.InvalidInput("CSV file is empty"))

	resp := newImportTestAPI(t, mockSvc).Post("/v1/transaction/import",
		userHeader(uuid.Must(uuid.NewV4())), "Content-Type: text/csv", strings.NewReader("  "))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportTransactions_InvalidUserHeader(t *testing.T) {
	mockSvc := new(mockTransactionImporter)

	resp := newImportTestAPI(t, mockSvc).Post("/v1/transaction/import",
		"X-User-ID: not-a-uuid", "Content-Type: text/csv", strings.NewReader("Date\n"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ImportFromCSV")
}
