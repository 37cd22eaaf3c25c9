package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rigledger/internal/pg"
	accountrepo "github.com/GlebRadaev/rigledger/internal/repo/account-repo"
	"github.com/GlebRadaev/rigledger/internal/repo/memstore"
	notificationrepo "github.com/GlebRadaev/rigledger/internal/repo/notification-repo"
	settingsrepo "github.com/GlebRadaev/rigledger/internal/repo/settings-repo"
	shoprepo "github.com/GlebRadaev/rigledger/internal/repo/shop-repo"
	transactionrepo "github.com/GlebRadaev/rigledger/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)
	assert.IsType(t, &shoprepo.Repository{}, repo.ShopRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)
	assert.NotNil(t, repo.TXManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewMemory(t *testing.T) {
	repo := NewMemory()

	assert.IsType(t, &memstore.Accounts{}, repo.AccountRepo)
	assert.IsType(t, &memstore.Transactions{}, repo.TransactionRepo)
	assert.IsType(t, &memstore.Settings{}, repo.SettingsRepo)
	assert.IsType(t, &memstore.Shop{}, repo.ShopRepo)
	assert.IsType(t, &memstore.Notifications{}, repo.NotificationRepo)
	assert.IsType(t, &memstore.TX{}, repo.TXManager)
}
