package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/dates"
	"github.com/hoaikthai/fin-api/internal/service"
	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	storagetx "github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) FindAll(ctx context.Context, userID uuid.UUID, period dates.Period, offset int) ([]*service.TransactionDetails, error) {
	args := m.Called(ctx, userID, period, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.TransactionDetails), args.Error(1)
}

func (m *mockTransactionLister) FindByAccount(ctx context.Context, accountID, userID uuid.UUID, period dates.Period, offset int) ([]*service.TransactionDetails, error) {
	args := m.Called(ctx, accountID, userID, period, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.TransactionDetails), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func sampleTransactionDetails(userID uuid.UUID) *service.TransactionDetails {
	acct := &account.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Cash",
		Currency: "USD",
		UserID:   userID,
	}
	cat := &category.Category{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Food & Beverage",
		Type: category.TypeExpense,
	}
	return &service.TransactionDetails{
		Transaction: &storagetx.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			Type:            category.TypeExpense,
			Amount:          decimal.RequireFromString("-12.50"),
			Description:     "Coffee",
			CategoryID:      cat.ID,
			AccountID:       acct.ID,
			UserID:          userID,
			TransactionDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt:       time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC),
		},
		Account:  acct,
		Category: cat,
	}
}

func TestHTTP_ListTransactions_DefaultPeriod(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	details := sampleTransactionDetails(userID)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("FindAll", mock.Anything, userID, dates.Period(""), 0).
		Return([]*service.TransactionDetails{details}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	got := body.Transactions[0]
	assert.Equal(t, details.Transaction.ID.String(), got.ID)
	if assert.NotNil(t, got.Account) {
		assert.Equal(t, "Cash", got.Account.Name)
		assert.Equal(t, "USD", got.Account.Currency)
	}
	if assert.NotNil(t, got.Category) {
		assert.Equal(t, "Food & Beverage", got.Category.Name)
		assert.Equal(t, "expense", got.Category.Type)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_PeriodAndOffsetForwarded(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("FindAll", mock.Anything, userID, dates.PeriodWeek, -2).
		Return([]*service.TransactionDetails{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction?period=week&offset=-2", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_UnknownPeriodRejected(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	// enum validation on the query parameter rejects unknown periods.
	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction?period=fortnight", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "FindAll")
}

func TestHTTP_ListAccountTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	details := sampleTransactionDetails(userID)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("FindByAccount", mock.Anything, accountID, userID, dates.Period(""), 0).
		Return([]*service.TransactionDetails{details}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/account/"+accountID.String()+"/transaction", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccountTransactions_UnknownAccountMapsTo404(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("FindByAccount", mock.Anything, accountID, userID, dates.Period(""), 0).
		Return(nil, apperr.NotFound("account not found"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/account/"+accountID.String()+"/transaction", userHeader(userID))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccountTransactions_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/account/not-a-uuid/transaction", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "FindByAccount")
}
