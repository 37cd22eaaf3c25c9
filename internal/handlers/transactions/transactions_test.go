package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/pkg/auth"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), auth.UsernameKey, "alice"))
}

func amountEq(v int64) gomock.Matcher {
	return gomock.Cond(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(v))
	})
}

func TestDepositHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Pending deposit",
			body: `{"amount":"200","method":"qr_auto"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateDeposit(gomock.Any(), "alice", amountEq(200), "qr_auto").Return(&domain.Transaction{
					ID: 1790452165558394880, User: "alice", Type: domain.TransactionTypeDeposit,
					Amount: decimal.NewFromInt(200), Status: domain.TransactionStatusPending, CreatedAt: time.Now(),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Numeric amount accepted",
			body: `{"amount":15.5}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateDeposit(gomock.Any(), "alice", gomock.Any(), "").
					Return(&domain.Transaction{ID: 2, Amount: decimal.NewFromFloat(15.5)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non positive amount",
			body: `{"amount":"0"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateDeposit(gomock.Any(), "alice", gomock.Any(), "").Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":"abc"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rec := httptest.NewRecorder()
			handler.Deposit(rec, request(http.MethodPost, "/api/transactions/deposit", tt.body))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestDepositHandler_LargeIDsAreStrings(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().CreateDeposit(gomock.Any(), "alice", gomock.Any(), "").
		Return(&domain.Transaction{ID: 1790452165558394881, Amount: decimal.NewFromInt(1)}, nil)

	rec := httptest.NewRecorder()
	handler.Deposit(rec, request(http.MethodPost, "/api/transactions/deposit", `{"amount":"1"}`))

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	assert.Equal(t, "1790452165558394881", raw["id"])
}

func TestWithdrawHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Withdrawal held",
			body: `{"amount":"100","bank":"KBank","bank_account":"0001"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateWithdraw(gomock.Any(), "alice", amountEq(100), "KBank", "0001").
					Return(&domain.Transaction{ID: 1, Type: domain.TransactionTypeWithdraw, Amount: decimal.NewFromInt(100)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":"100"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateWithdraw(gomock.Any(), "alice", amountEq(100), "", "").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Storage failure",
			body: `{"amount":"100"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateWithdraw(gomock.Any(), "alice", amountEq(100), "", "").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid body",
			body:         `[`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rec := httptest.NewRecorder()
			handler.Withdraw(rec, request(http.MethodPost, "/api/transactions/withdraw", tt.body))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	fee, net := decimal.NewFromInt(5), decimal.NewFromInt(95)
	service.EXPECT().ListByUser(gomock.Any(), "alice").Return([]domain.Transaction{
		{ID: 2, Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(100), Status: domain.TransactionStatusApproved, Fee: &fee, NetAmount: &net},
		{ID: 1, Type: domain.TransactionTypePurchase, Amount: decimal.NewFromInt(150), Status: domain.TransactionStatusCompleted, Item: "RTX"},
	}, nil)

	rec := httptest.NewRecorder()
	handler.GetTransactions(rec, request(http.MethodGet, "/api/user/transactions", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.TransactionDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.True(t, net.Equal(*resp[0].NetAmount))
	assert.Nil(t, resp[1].Fee)
	assert.Equal(t, "RTX", resp[1].Item)

	service.EXPECT().ListByUser(gomock.Any(), "alice").Return(nil, errors.New("db down"))
	rec = httptest.NewRecorder()
	handler.GetTransactions(rec, request(http.MethodGet, "/api/user/transactions", ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
