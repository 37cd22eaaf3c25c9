package accountrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

var columns = []string{
	"username", "id", "password_hash", "name", "bank", "bank_account", "balance", "hashrate", "status",
	"referrer_id", "referral_settled", "rigs", "created_at", "last_active",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func testAccount(now time.Time) *domain.Account {
	referrer := int64(100008)
	return &domain.Account{
		Username:     "alice",
		ID:           123455,
		PasswordHash: "hash",
		Name:         "Alice",
		Bank:         "KBank",
		BankAccount:  "0001",
		Balance:      decimal.NewFromInt(250),
		Hashrate:     decimal.RequireFromString("0.5"),
		Status:       domain.AccountStatusApproved,
		ReferrerID:   &referrer,
		Rigs: []domain.Rig{
			{Name: "GPU #1", Speed: decimal.RequireFromString("0.5"), Status: domain.RigStatusActive, Type: "gpu", PurchasedAt: now},
		},
		CreatedAt:  now,
		LastActive: now,
	}
}

func accountRow(t *testing.T, rows *pgxmock.Rows, a *domain.Account) *pgxmock.Rows {
	rigs, err := json.Marshal(a.Rigs)
	require.NoError(t, err)
	var referrer any
	if a.ReferrerID != nil {
		referrer = a.ReferrerID
	}
	return rows.AddRow(a.Username, a.ID, a.PasswordHash, a.Name, a.Bank, a.BankAccount, a.Balance, a.Hashrate,
		a.Status, referrer, a.ReferralSettled, rigs, a.CreatedAt, a.LastActive)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC().Truncate(time.Millisecond)
	account := testAccount(now)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Existing account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByUsername)).
					WithArgs("alice").
					WillReturnRows(accountRow(t, pgxmock.NewRows(columns), account))
			},
			result: account,
		},
		{
			name: "Missing account returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByUsername)).
					WithArgs("alice").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByUsername)).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Corrupted rigs",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).AddRow("alice", int64(123455), "hash", "", "", "",
					decimal.Zero, decimal.Zero, domain.AccountStatusPending, nil, false, []byte("{"), now, now)
				mock.ExpectQuery(regexp.QuoteMeta(queryByUsername)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUsername(context.Background(), "alice")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.result.Username, result.Username)
				assert.Equal(t, tt.result.ID, result.ID)
				assert.True(t, tt.result.Balance.Equal(result.Balance))
				assert.Equal(t, tt.result.Status, result.Status)
				assert.Equal(t, tt.result.ReferrerID, result.ReferrerID)
				require.Len(t, result.Rigs, 1)
				assert.Equal(t, "GPU #1", result.Rigs[0].Name)
				assert.True(t, result.Rigs[0].Speed.Equal(decimal.RequireFromString("0.5")))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()
	account := testAccount(now)
	account.ReferrerID = nil

	mock.ExpectQuery(regexp.QuoteMeta(queryByID)).
		WithArgs(int64(123455)).
		WillReturnRows(accountRow(t, pgxmock.NewRows(columns), account))
	result, err := repo.FindByID(context.Background(), 123455)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "alice", result.Username)
	assert.Nil(t, result.ReferrerID)

	mock.ExpectQuery(regexp.QuoteMeta(queryByID)).
		WithArgs(int64(999998)).
		WillReturnError(pgx.ErrNoRows)
	result, err = repo.FindByID(context.Background(), 999998)
	assert.NoError(t, err)
	assert.Nil(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindReferrals(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	first := testAccount(now)
	second := testAccount(now)
	second.Username = "bob"
	second.ID = 100016

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []string
	}{
		{
			name: "Two referrals",
			mockSetup: func() {
				rows := accountRow(t, accountRow(t, pgxmock.NewRows(columns), first), second)
				mock.ExpectQuery(regexp.QuoteMeta(queryReferrals)).WithArgs(int64(100008)).WillReturnRows(rows)
			},
			expected: []string{"alice", "bob"},
		},
		{
			name: "No referrals",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryReferrals)).WithArgs(int64(100008)).WillReturnRows(pgxmock.NewRows(columns))
			},
			expected: []string{},
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryReferrals)).WithArgs(int64(100008)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Row error",
			mockSetup: func() {
				rows := accountRow(t, pgxmock.NewRows(columns), first).RowError(0, errors.New("row error"))
				mock.ExpectQuery(regexp.QuoteMeta(queryReferrals)).WithArgs(int64(100008)).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindReferrals(context.Background(), 100008)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			names := []string{}
			for _, a := range result {
				names = append(names, a.Username)
			}
			assert.Equal(t, tt.expected, names)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(queryAll)).
		WillReturnRows(accountRow(t, pgxmock.NewRows(columns), testAccount(now)))

	result, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	now := time.Now().UTC()
	account := testAccount(now)
	rigs, err := json.Marshal(account.Rigs)
	require.NoError(t, err)

	args := []any{
		account.Username, account.ID, account.PasswordHash, account.Name, account.Bank, account.BankAccount,
		account.Balance, account.Hashrate, "approved", account.ReferrerID, false, rigs, now, now,
	}

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name: "Created",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccount)).WithArgs(args...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate username",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccount)).WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "accounts_pkey"})
			},
			expectedErr: domain.ErrUsernameTaken,
		},
		{
			name: "Duplicate id",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(insertAccount)).WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: idConstraint})
			},
			expectedErr: domain.ErrAccountIDTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Create(context.Background(), account)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	now := time.Now().UTC()
	account := testAccount(now)
	account.Rigs = nil

	args := []any{
		account.Username, account.PasswordHash, account.Name, account.Bank, account.BankAccount,
		account.Balance, account.Hashrate, "approved", account.ReferrerID, false, []byte("[]"), now,
	}

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Updated",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(updateAccount)).WithArgs(args...).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Missing account",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(updateAccount)).WithArgs(args...).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrAccountNotFound,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(updateAccount)).WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Update(context.Background(), account)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteAccount)).WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "alice"))

	mock.ExpectExec(regexp.QuoteMeta(deleteAccount)).WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "ghost"), domain.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
