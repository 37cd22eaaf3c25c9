package settingsservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *events.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := events.NewMockPublisher(ctrl)
	return New(repo, publisher), repo, publisher
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name          string
		settings      domain.Settings
		mockSetup     func(repo *MockRepo)
		expectedError error
		published     bool
	}{
		{
			name:     "Valid settings",
			settings: domain.Settings{DepositFeePercent: decimal.NewFromInt(5), WithdrawFeePercent: decimal.NewFromFloat(2.5), ShopNotice: "sale"},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			published: true,
		},
		{
			name:          "Negative fee",
			settings:      domain.Settings{DepositFeePercent: decimal.NewFromInt(-1)},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Fee above hundred",
			settings:      domain.Settings{WithdrawFeePercent: decimal.NewFromInt(101)},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:     "Storage error",
			settings: domain.Settings{},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, publisher := NewMock(t)
			tt.mockSetup(repo)
			if tt.published {
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
					assert.Equal(t, events.TypeSettingsUpdated, e.Type)
					assert.Equal(t, "admin", e.User)
					assert.Equal(t, "5", e.Attributes["deposit_fee"])
					assert.Equal(t, "2.5", e.Attributes["withdraw_fee"])
				})
			}

			settings, err := service.Update(context.Background(), "admin", tt.settings)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, settings)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.settings.ShopNotice, settings.ShopNotice)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{Maintenance: true}, nil)

	settings, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.True(t, settings.Maintenance)
}
