package accountservice

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
	"github.com/GlebRadaev/rigledger/pkg/validate"
)

type mocks struct {
	accounts      *MockAccountRepo
	notifications *MockNotificationRepo
	settings      *MockSettingsRepo
	transactions  *MockTransactionRepo
	referrals     *MockReferrerFinder
	hash          *auth.MockHashServiceInterface
	jwt           *auth.MockJWTServiceInterface
	published     *recorder
}

// recorder keeps every published event in order.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		accounts:      NewMockAccountRepo(ctrl),
		notifications: NewMockNotificationRepo(ctrl),
		settings:      NewMockSettingsRepo(ctrl),
		transactions:  NewMockTransactionRepo(ctrl),
		referrals:     NewMockReferrerFinder(ctrl),
		hash:          auth.NewMockHashServiceInterface(ctrl),
		jwt:           auth.NewMockJWTServiceInterface(ctrl),
		published:     &recorder{},
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.accounts, m.notifications, m.settings, m.transactions, m.referrals,
		txManager, keylock.NewLocal(), m.published, m.hash, m.jwt, "admin")
	return service, m
}

var input = RegisterInput{
	Username:    "alice",
	Password:    "secret",
	Name:        "Alice",
	Bank:        "KBank",
	BankAccount: "0001",
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		input         func() RegisterInput
		prepareMock   func(m mocks)
		expectedError error
		referred      bool
	}{
		{
			name:  "Successful registration",
			input: func() RegisterInput { return input },
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
					assert.Equal(t, "hashed", a.PasswordHash)
					assert.Equal(t, domain.AccountStatusPending, a.Status)
					assert.True(t, a.Balance.IsZero())
					assert.True(t, validate.IsLuna(itoa(a.ID)))
					return nil
				})
			},
		},
		{
			name: "With referral code",
			input: func() RegisterInput {
				in := input
				in.ReferralCode = "x100008"
				return in
			},
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.referrals.EXPECT().FindReferrer(gomock.Any(), "x100008").Return(&domain.Account{Username: "bob", ID: 100008}, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			referred: true,
		},
		{
			name: "Referral code does not resolve",
			input: func() RegisterInput {
				in := input
				in.ReferralCode = "123"
				return in
			},
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.referrals.EXPECT().FindReferrer(gomock.Any(), "123").Return(nil, domain.ErrReferrerNotFound)
			},
			expectedError: domain.ErrReferrerNotFound,
		},
		{
			name:  "Username taken",
			input: func() RegisterInput { return input },
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice"}, nil)
			},
			expectedError: domain.ErrUsernameTaken,
		},
		{
			name: "Missing bank details",
			input: func() RegisterInput {
				in := input
				in.BankAccount = ""
				return in
			},
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:  "Id collision retried",
			input: func() RegisterInput { return input },
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				gomock.InOrder(
					m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAccountIDTaken),
					m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:  "Ids exhausted",
			input: func() RegisterInput { return input },
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAccountIDTaken).Times(idAttempts)
			},
			expectedError: domain.ErrAccountIDTaken,
		},
		{
			name:  "Hash failure",
			input: func() RegisterInput { return input },
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("", assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			account, err := service.Register(context.Background(), tt.input())
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", account.Username)
			if tt.referred {
				require.NotNil(t, account.ReferrerID)
				assert.Equal(t, int64(100008), *account.ReferrerID)
			} else {
				assert.Nil(t, account.ReferrerID)
			}
		})
	}
}

func TestCreateUserAndEnsureAdmin(t *testing.T) {
	service, m := NewMock(t)

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
	m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	account, err := service.CreateUser(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, account.Status)

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "admin").Return(&domain.Account{Username: "admin"}, nil)
	assert.NoError(t, service.EnsureAdmin(context.Background(), "admin"))

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, nil).Times(2)
	m.hash.EXPECT().HashPassword("root").Return("hashed", nil)
	m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
		assert.Equal(t, "admin", a.Username)
		assert.Equal(t, domain.AccountStatusActive, a.Status)
		return nil
	})
	assert.NoError(t, service.EnsureAdmin(context.Background(), "root"))
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:     "Successful login",
			username: "alice",
			prepareMock: func(m mocks) {
				m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil)
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice", PasswordHash: "hashed"}, nil).Times(2)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
				m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
					assert.False(t, a.LastActive.IsZero())
					return nil
				})
			},
		},
		{
			name:     "Wrong password",
			username: "alice",
			prepareMock: func(m mocks) {
				m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil)
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice", PasswordHash: "hashed"}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			username: "alice",
			prepareMock: func(m mocks) {
				m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil)
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Banned user",
			username: "alice",
			prepareMock: func(m mocks) {
				m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil)
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&domain.Account{Username: "alice", PasswordHash: "hashed", Status: domain.AccountStatusBanned}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Maintenance blocks users",
			username: "alice",
			prepareMock: func(m mocks) {
				m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{Maintenance: true}, nil)
			},
			expectedError: domain.ErrMaintenance,
		},
		{
			name:     "Maintenance lets admin in",
			username: "admin",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "admin").Return(&domain.Account{Username: "admin", PasswordHash: "hashed"}, nil).Times(2)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
				m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			account, err := service.Authenticate(context.Background(), tt.username, "secret")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, account.Username)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)

	m.jwt.EXPECT().GenerateJWT("alice", gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken("alice")
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	m.jwt.EXPECT().GenerateJWT("alice", gomock.Any()).Return("", assert.AnError)
	_, err = service.GenerateToken("alice")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil).Times(2)
	_, err := service.Get(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = service.Referrals(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&domain.Account{Username: "bob", ID: 100008}, nil)
	m.accounts.EXPECT().FindReferrals(gomock.Any(), int64(100008)).Return([]domain.Account{{Username: "alice"}}, nil)
	referrals, err := service.Referrals(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, referrals, 1)

	m.accounts.EXPECT().FindAll(gomock.Any()).Return([]domain.Account{{Username: "alice"}, {Username: "bob"}}, nil)
	all, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:     "Deleted",
			username: "alice",
			prepareMock: func(m mocks) {
				m.transactions.EXPECT().FindByUser(gomock.Any(), "alice").Return([]domain.Transaction{
					{ID: 1, Status: domain.TransactionStatusApproved},
					{ID: 2, Status: domain.TransactionStatusRejected},
				}, nil)
				m.accounts.EXPECT().Delete(gomock.Any(), "alice").Return(nil)
			},
		},
		{
			name:     "Pending withdrawal keeps the account",
			username: "alice",
			prepareMock: func(m mocks) {
				m.transactions.EXPECT().FindByUser(gomock.Any(), "alice").Return([]domain.Transaction{
					{ID: 1, Type: domain.TransactionTypeWithdraw, Status: domain.TransactionStatusPending},
				}, nil)
			},
			expectedError: domain.ErrPendingTransactions,
		},
		{
			name:          "Admin cannot be deleted",
			username:      "admin",
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:     "Unknown account",
			username: "ghost",
			prepareMock: func(m mocks) {
				m.transactions.EXPECT().FindByUser(gomock.Any(), "ghost").Return([]domain.Transaction{}, nil)
				m.accounts.EXPECT().Delete(gomock.Any(), "ghost").Return(domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:     "Lookup failure",
			username: "alice",
			prepareMock: func(m mocks) {
				m.transactions.EXPECT().FindByUser(gomock.Any(), "alice").Return(nil, assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Delete(context.Background(), tt.username)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, m.published.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []events.Type{events.TypeAccountDeleted}, m.published.types())
		})
	}
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	assert.ErrorIs(t, service.ResetPassword(ctx, "alice", "ab"), domain.ErrInvalidInput)

	m.hash.EXPECT().HashPassword("newpass").Return("rehashed", nil)
	m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice", PasswordHash: "old"}, nil)
	m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
		assert.Equal(t, "rehashed", a.PasswordHash)
		return nil
	})
	assert.NoError(t, service.ResetPassword(ctx, "alice", "newpass"))
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.notifications.EXPECT().FindByUser(gomock.Any(), "alice", true).Return([]domain.Notification{{ID: 1, User: "alice"}}, nil)
	list, err := service.Notifications(ctx, "alice", true)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.notifications.EXPECT().MarkRead(gomock.Any(), "alice", int64(1)).Return(domain.ErrNotificationNotFound)
	assert.ErrorIs(t, service.MarkNotificationRead(ctx, "alice", 1), domain.ErrNotificationNotFound)
}

func TestPublicStatus(t *testing.T) {
	service, m := NewMock(t)
	m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{
		Maintenance:        true,
		Announcement:       "Payouts delayed",
		AnnouncementActive: true,
		DepositFeePercent:  decimal.NewFromInt(5),
		WithdrawFeePercent: decimal.NewFromInt(2),
	}, nil)

	status, err := service.PublicStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Maintenance)
	assert.Equal(t, "Payouts delayed", status.Announcement)
	assert.True(t, status.AnnouncementActive)
	assert.True(t, decimal.NewFromInt(5).Equal(status.DepositFeePercent))
	assert.True(t, decimal.NewFromInt(2).Equal(status.WithdrawFeePercent))

	m.settings.EXPECT().Get(gomock.Any()).Return(nil, assert.AnError)
	_, err = service.PublicStatus(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSync(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
		credit        string
	}{
		{
			name: "Income credited and stored",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{
					Username:   "alice",
					Balance:    decimal.NewFromInt(10),
					Hashrate:   decimal.RequireFromString("0.25"),
					LastActive: start,
				}, nil)
				m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
					assert.True(t, decimal.NewFromInt(25).Equal(a.Balance), "balance %s", a.Balance)
					assert.Equal(t, start.Add(time.Minute), a.LastActive)
					return nil
				})
			},
			credit: "15",
		},
		{
			name: "Unknown account",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name: "Store failure",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice", LastActive: start}, nil)
				m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			service.now = func() time.Time { return start.Add(time.Minute) }
			tt.prepareMock(m)

			account, credit, err := service.Sync(context.Background(), "alice")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.credit).Equal(credit), "credit %s", credit)
			assert.True(t, decimal.NewFromInt(25).Equal(account.Balance))
		})
	}
}

func TestActivityEvents(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
	m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	_, err := service.Register(ctx, input)
	require.NoError(t, err)

	m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{}, nil)
	m.accounts.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.Account{Username: "alice", PasswordHash: "hashed"}, nil).Times(2)
	m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
	m.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	_, err = service.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, []events.Type{events.TypeAccountRegistered, events.TypeAccountLoggedIn}, m.published.types())
	assert.Equal(t, "none", m.published.events[0].Attributes["referrer"])
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestCheckReferral(t *testing.T) {
	service, m := NewMock(t)
	m.referrals.EXPECT().FindReferrer(gomock.Any(), "100008").Return(&domain.Account{Username: "bob", ID: 100008}, nil)

	referrer, err := service.CheckReferral(context.Background(), "100008")
	require.NoError(t, err)
	assert.Equal(t, "bob", referrer.Username)
}
