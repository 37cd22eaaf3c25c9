package shopservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

func TestGenerateCatalog(t *testing.T) {
	items := GenerateCatalog(catalogLevels)
	require.Len(t, items, 100)

	byLevel := func(lv int) domain.ShopItem { return items[lv-1] }

	first := byLevel(1)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "AI Miner System Lv.1", first.Name)
	assert.True(t, decimal.NewFromInt(500).Equal(first.Price))
	assert.True(t, decimal.RequireFromString("0.00011574").Equal(first.Speed), first.Speed.String())
	assert.Equal(t, "basic", first.Tier)
	assert.Equal(t, "fa-fan", first.Icon)
	assert.Equal(t, "new", first.Tag)

	prices := map[int]int64{2: 570, 10: 1600, 20: 5500, 50: 248000, 100: 139170000}
	for lv, want := range prices {
		assert.True(t, decimal.NewFromInt(want).Equal(byLevel(lv).Price), "level %d: %s", lv, byLevel(lv).Price)
	}

	assert.Equal(t, "sale", byLevel(10).Tag)
	assert.Equal(t, "hot", byLevel(25).Tag)
	assert.Equal(t, "", byLevel(33).Tag)
	assert.Equal(t, "mid", byLevel(21).Tier)
	assert.Equal(t, "fa-server", byLevel(21).Icon)
	assert.Equal(t, "pro", byLevel(80).Tier)
	assert.Equal(t, "legendary", byLevel(99).Tier)
	assert.Equal(t, "fa-brain", byLevel(99).Icon)
	assert.Equal(t, "limited", byLevel(100).Tier)
	assert.Equal(t, "fa-rocket", byLevel(100).Icon)
	assert.Equal(t, "best", byLevel(100).Tag)

	for i := 1; i < len(items); i++ {
		assert.True(t, items[i].Price.GreaterThanOrEqual(items[i-1].Price), "price drops at level %d", i+1)
		assert.True(t, items[i].Speed.GreaterThan(items[i-1].Speed), "speed drops at level %d", i+1)
	}
}

func TestRegenerate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedCount int
		expectedError error
	}{
		{
			name: "Replaces catalog",
			prepareMock: func(m mocks) {
				m.items.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				m.items.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(catalogLevels)
			},
			expectedCount: catalogLevels,
		},
		{
			name: "Save fails",
			prepareMock: func(m mocks) {
				m.items.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				m.items.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			count, err := service.Regenerate(context.Background())

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Zero(t, count)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}
