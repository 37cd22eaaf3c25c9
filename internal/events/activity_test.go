package events

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

func TestActivitySink_Deliver(t *testing.T) {
	tx := &domain.Transaction{
		ID:     42,
		Type:   domain.TransactionTypeWithdraw,
		Amount: decimal.NewFromInt(50),
		Status: domain.TransactionStatusApproved,
	}

	tests := []struct {
		name        string
		event       Event
		prepareMock func(repo *MockActivityRepo)
		expectedErr bool
	}{
		{
			name:  "Registration",
			event: New(TypeAccountRegistered, "alice").With("referrer", "100008"),
			prepareMock: func(repo *MockActivityRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.ActivityLog) error {
					assert.Equal(t, domain.ActivityRegister, e.Type)
					assert.Equal(t, "alice", e.User)
					assert.Equal(t, "account.registered", e.Action)
					assert.Equal(t, "referrer=100008", e.Details)
					assert.False(t, e.CreatedAt.IsZero())
					return nil
				})
			},
		},
		{
			name:  "Transaction details come first",
			event: New(TypeTransactionApproved, "alice").WithTransaction(tx).With("fee", "1"),
			prepareMock: func(repo *MockActivityRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.ActivityLog) error {
					assert.Equal(t, domain.ActivityTransaction, e.Type)
					assert.Equal(t, "id=42, type=withdraw, amount=50, status=approved, fee=1", e.Details)
					return nil
				})
			},
		},
		{
			name:  "Rig change is an admin action",
			event: New(TypeRigUpdated, "bob").With("rig", "GPU").With("action", "toggle"),
			prepareMock: func(repo *MockActivityRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.ActivityLog) error {
					assert.Equal(t, domain.ActivityAdmin, e.Type)
					assert.Equal(t, "action=toggle, rig=GPU", e.Details)
					return nil
				})
			},
		},
		{
			name:  "Login",
			event: New(TypeAccountLoggedIn, "carol"),
			prepareMock: func(repo *MockActivityRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.ActivityLog) error {
					assert.Equal(t, domain.ActivityLogin, e.Type)
					assert.Empty(t, e.Details)
					return nil
				})
			},
		},
		{
			name:  "Repository error",
			event: New(TypePurchaseCompleted, "dave"),
			prepareMock: func(repo *MockActivityRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockActivityRepo(ctrl)
			tt.prepareMock(repo)

			err := NewActivitySink(repo).Deliver(context.Background(), tt.event)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
