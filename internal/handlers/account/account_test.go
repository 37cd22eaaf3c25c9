package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/internal/service/accountservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	handler, service, _ := newMockWithActivity(t)
	return handler, service
}

func newMockWithActivity(t *testing.T) (*AccountHandler, *MockService, *MockActivityRecorder) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	activity := NewMockActivityRecorder(ctrl)
	return New(service, activity), service, activity
}

func withUser(r *http.Request, username string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UsernameKey, username))
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var alice = &domain.Account{
	ID:       100008,
	Username: "alice",
	Name:     "Alice",
	Balance:  decimal.NewFromInt(50),
	Hashrate: decimal.NewFromFloat(12.5),
	Status:   domain.AccountStatusPending,
	Rigs:     []domain.Rig{{Name: "RTX", Speed: decimal.NewFromFloat(12.5), Status: domain.RigStatusActive}},
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"alice","password":"secret","name":"Alice","bank":"KBank","bank_account":"0001","referral_code":"x100008"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), accountservice.RegisterInput{
					Username:     "alice",
					Password:     "secret",
					Name:         "Alice",
					Bank:         "KBank",
					BankAccount:  "0001",
					ReferralCode: "x100008",
				}).Return(alice, nil)
				service.EXPECT().GenerateToken("alice").Return("jwt", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username taken",
			body: `{"username":"alice","password":"secret","name":"Alice","bank":"KBank","bank_account":"0001"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrUsernameTaken.Error(),
		},
		{
			name: "Unknown referral code",
			body: `{"username":"alice","password":"secret","name":"Alice","bank":"KBank","bank_account":"0001","referral_code":"1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrReferrerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrReferrerNotFound.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"username":"alice","password":"secret","name":"Alice","bank":"KBank","bank_account":"0001"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(alice, nil)
				service.EXPECT().GenerateToken("alice").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			assert.Equal(t, "Bearer jwt", rec.Header().Get("Authorization"))
			var resp dto.AccountDTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, int64(100008), resp.ID)
			assert.True(t, decimal.NewFromFloat(12.5).Equal(resp.Hashrate))
			assert.Len(t, resp.Rigs, 1)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"username":"alice","password":"secret"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "secret").Return(alice, nil)
				service.EXPECT().GenerateToken("alice").Return("jwt", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "wrong").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Maintenance",
			body: `{"username":"alice","password":"secret"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "secret").Return(nil, domain.ErrMaintenance)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "Invalid request body",
			body:         `nope`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.LoginResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "jwt", resp.Token)
				assert.Equal(t, "alice", resp.User.Username)
			}
		})
	}
}

func TestCheckReferralHandler(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedValid bool
	}{
		{
			name: "Valid code",
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckReferral(gomock.Any(), "x100008").Return(&domain.Account{ID: 100008, Username: "bob"}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedValid: true,
		},
		{
			name: "Unknown code",
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckReferral(gomock.Any(), "x100008").Return(nil, domain.ErrReferrerNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Storage failure",
			prepareMock: func(service *MockService) {
				service.EXPECT().CheckReferral(gomock.Any(), "x100008").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withParam(httptest.NewRequest(http.MethodGet, "/api/check-referral/x100008", nil), "code", "x100008")
			rec := httptest.NewRecorder()
			handler.CheckReferral(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.CheckReferralResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedValid, resp.Valid)
				assert.Equal(t, tt.expectedValid, resp.Referrer != nil)
			}
		})
	}
}

func TestMaintenanceStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().PublicStatus(gomock.Any()).Return(&domain.Settings{
		Maintenance:        true,
		Announcement:       "Back at noon",
		AnnouncementActive: true,
		DepositFeePercent:  decimal.NewFromInt(5),
		WithdrawFeePercent: decimal.NewFromInt(2),
	}, nil)

	rec := httptest.NewRecorder()
	handler.MaintenanceStatus(rec, httptest.NewRequest(http.MethodGet, "/api/maintenance-status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"maintenance":true,"announcement":"Back at noon","announcement_active":true,`+
		`"deposit_fee_percent":"5","withdraw_fee_percent":"2"}`, rec.Body.String())

	service.EXPECT().PublicStatus(gomock.Any()).Return(nil, errors.New("db down"))
	rec = httptest.NewRecorder()
	handler.MaintenanceStatus(rec, httptest.NewRequest(http.MethodGet, "/api/maintenance-status", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSyncHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Sync(gomock.Any(), "alice").Return(alice, decimal.RequireFromString("0.125"), nil)
	rec := httptest.NewRecorder()
	handler.Sync(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/user/sync", nil), "alice"))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.SyncResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, decimal.RequireFromString("0.125").Equal(resp.Credited))
	assert.Equal(t, "alice", resp.User.Username)

	service.EXPECT().Sync(gomock.Any(), "ghost").Return(nil, decimal.Zero, domain.ErrAccountNotFound)
	rec = httptest.NewRecorder()
	handler.Sync(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/user/sync", nil), "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientLogHandler(t *testing.T) {
	handler, _, activity := newMockWithActivity(t)

	activity.EXPECT().RecordClient(gomock.Any(), "alice", "page_error", "TypeError").Return(nil)
	rec := httptest.NewRecorder()
	handler.ClientLog(rec, httptest.NewRequest(http.MethodPost, "/api/log",
		strings.NewReader(`{"user":"alice","action":"page_error","details":"TypeError"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	activity.EXPECT().RecordClient(gomock.Any(), "", "", "").Return(domain.ErrInvalidInput)
	rec = httptest.NewRecorder()
	handler.ClientLog(rec, httptest.NewRequest(http.MethodPost, "/api/log", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	handler.ClientLog(rec, httptest.NewRequest(http.MethodPost, "/api/log", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), "alice").Return(alice, nil)
	rec := httptest.NewRecorder()
	handler.GetUser(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user", nil), "alice"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().Get(gomock.Any(), "ghost").Return(nil, domain.ErrAccountNotFound)
	rec = httptest.NewRecorder()
	handler.GetUser(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user", nil), "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReferralsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Referrals(gomock.Any(), "bob").Return([]domain.Account{*alice}, nil)

	rec := httptest.NewRecorder()
	handler.GetReferrals(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user/referrals", nil), "bob"))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.ReferralDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice", resp[0].Username)
}

func TestNotificationsHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Notifications(gomock.Any(), "alice", true).
		Return([]domain.Notification{{ID: 3, User: "alice", Message: "hi", Kind: domain.NotificationInfo}}, nil)
	rec := httptest.NewRecorder()
	handler.GetNotifications(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user/notifications?unread=true", nil), "alice"))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.NotificationDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "info", resp[0].Kind)

	service.EXPECT().MarkNotificationRead(gomock.Any(), "alice", int64(3)).Return(nil)
	req := withParam(httptest.NewRequest(http.MethodPost, "/api/user/notifications/3/read", nil), "id", "3")
	rec = httptest.NewRecorder()
	handler.MarkNotificationRead(rec, withUser(req, "alice"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().MarkNotificationRead(gomock.Any(), "alice", int64(4)).Return(domain.ErrNotificationNotFound)
	req = withParam(httptest.NewRequest(http.MethodPost, "/api/user/notifications/4/read", nil), "id", "4")
	rec = httptest.NewRecorder()
	handler.MarkNotificationRead(rec, withUser(req, "alice"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = withParam(httptest.NewRequest(http.MethodPost, "/api/user/notifications/x/read", nil), "id", "x")
	rec = httptest.NewRecorder()
	handler.MarkNotificationRead(rec, withUser(req, "alice"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
