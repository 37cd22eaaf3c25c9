package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

var columns = []string{
	"id", "username", "type", "amount", "status", "method", "bank", "bank_account", "item", "fee", "net_amount",
	"created_at", "processed_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	now := time.Now().UTC()
	tx := &domain.Transaction{
		ID:        42,
		User:      "alice",
		Type:      domain.TransactionTypeDeposit,
		Amount:    decimal.NewFromInt(100),
		Status:    domain.TransactionStatusPending,
		Method:    "qr_auto",
		CreatedAt: now,
	}
	args := []any{int64(42), "alice", "deposit", tx.Amount, "pending", "qr_auto", "", "", "",
		(*decimal.Decimal)(nil), (*decimal.Decimal)(nil), now, (*time.Time)(nil)}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "Saved",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(insertTransaction)).WithArgs(args...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(insertTransaction)).WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Create(context.Background(), tx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	now := time.Now().UTC()
	processed := now.Add(time.Minute)
	fee := decimal.NewFromInt(5)
	net := decimal.NewFromInt(95)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		check     func(t *testing.T, tx *domain.Transaction)
	}{
		{
			name: "Approved deposit with fee",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).AddRow(int64(1), "alice", domain.TransactionTypeDeposit,
					decimal.NewFromInt(100), domain.TransactionStatusApproved, "qr_auto", "", "", "",
					decimal.NullDecimal{Decimal: fee, Valid: true}, decimal.NullDecimal{Decimal: net, Valid: true},
					now, &processed)
				mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs(int64(1)).WillReturnRows(rows)
			},
			check: func(t *testing.T, tx *domain.Transaction) {
				require.NotNil(t, tx)
				require.NotNil(t, tx.Fee)
				require.NotNil(t, tx.NetAmount)
				assert.True(t, tx.Fee.Equal(fee))
				assert.True(t, tx.NetAmount.Equal(net))
				assert.Equal(t, domain.TransactionStatusApproved, tx.Status)
				require.NotNil(t, tx.ProcessedAt)
				assert.Equal(t, processed, *tx.ProcessedAt)
			},
		},
		{
			name: "Pending without fee",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).AddRow(int64(1), "alice", domain.TransactionTypeWithdraw,
					decimal.NewFromInt(100), domain.TransactionStatusPending, "", "KBank", "0001", "",
					nil, nil, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs(int64(1)).WillReturnRows(rows)
			},
			check: func(t *testing.T, tx *domain.Transaction) {
				require.NotNil(t, tx)
				assert.Nil(t, tx.Fee)
				assert.Nil(t, tx.NetAmount)
				assert.Nil(t, tx.ProcessedAt)
				assert.Equal(t, "KBank", tx.Bank)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
			},
			check: func(t *testing.T, tx *domain.Transaction) {
				assert.Nil(t, tx)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs(int64(1)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			tx, err := repo.FindByID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.check(t, tx)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	now := time.Now().UTC()
	fee := decimal.NewFromInt(5)
	net := decimal.NewFromInt(95)
	tx := &domain.Transaction{ID: 7, Status: domain.TransactionStatusApproved, Fee: &fee, NetAmount: &net, ProcessedAt: &now}

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Pending transaction settled",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(settleTransaction)).
					WithArgs(int64(7), "approved", &fee, &net, &now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already settled",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(settleTransaction)).
					WithArgs(int64(7), "approved", &fee, &net, &now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(settleTransaction)).
					WithArgs(int64(7), "approved", &fee, &net, &now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.UpdateStatus(context.Background(), tx)
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

func TestRepository_FindByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(columns).
		AddRow(int64(2), "alice", domain.TransactionTypePurchase, decimal.NewFromInt(150),
			domain.TransactionStatusCompleted, "", "", "", "GPU", nil, nil, now, nil).
		AddRow(int64(1), "alice", domain.TransactionTypeDeposit, decimal.NewFromInt(200),
			domain.TransactionStatusApproved, "qr_auto", "", "", "", nil, nil, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta(queryByUser)).WithArgs("alice").WillReturnRows(rows)

	txs, err := repo.FindByUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, "GPU", txs[0].Item)

	mock.ExpectQuery(regexp.QuoteMeta(queryByUser)).WithArgs("bob").WillReturnError(errors.New("database error"))
	_, err = repo.FindByUser(context.Background(), "bob")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryAll)).WillReturnRows(pgxmock.NewRows(columns))

	txs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteTransactions)).WillReturnResult(pgxmock.NewResult("DELETE", 3))
	assert.NoError(t, repo.DeleteAll(context.Background()))

	mock.ExpectExec(regexp.QuoteMeta(deleteTransactions)).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.DeleteAll(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
