package repo

import (
	"context"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	accountrepo "github.com/GlebRadaev/rigledger/internal/repo/account-repo"
	activityrepo "github.com/GlebRadaev/rigledger/internal/repo/activity-repo"
	"github.com/GlebRadaev/rigledger/internal/repo/memstore"
	notificationrepo "github.com/GlebRadaev/rigledger/internal/repo/notification-repo"
	settingsrepo "github.com/GlebRadaev/rigledger/internal/repo/settings-repo"
	shoprepo "github.com/GlebRadaev/rigledger/internal/repo/shop-repo"
	transactionrepo "github.com/GlebRadaev/rigledger/internal/repo/transaction-repo"
	"github.com/GlebRadaev/rigledger/internal/service/accountservice"
	"github.com/GlebRadaev/rigledger/internal/service/activityservice"
	"github.com/GlebRadaev/rigledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/rigledger/internal/service/settingsservice"
	"github.com/GlebRadaev/rigledger/internal/service/shopservice"
)

type AccountRepo interface {
	accountservice.AccountRepo
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}

type NotificationRepo interface {
	events.NotificationRepo
	accountservice.NotificationRepo
}

type ActivityRepo interface {
	events.ActivityRepo
	activityservice.Repo
}

type Repositories struct {
	AccountRepo      AccountRepo
	TransactionRepo  ledgerservice.TransactionRepo
	SettingsRepo     settingsservice.Repo
	ShopRepo         shopservice.ItemRepo
	NotificationRepo NotificationRepo
	ActivityRepo     ActivityRepo
	TXManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:      accountrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		SettingsRepo:     settingsrepo.New(conn, txManager),
		ShopRepo:         shoprepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		ActivityRepo:     activityrepo.New(conn),
		TXManager:        txManager,
	}
}

// NewMemory keeps every repository in process memory. Data is lost on restart.
func NewMemory() *Repositories {
	store := memstore.New()
	return &Repositories{
		AccountRepo:      store.Accounts,
		TransactionRepo:  store.Transactions,
		SettingsRepo:     store.Settings,
		ShopRepo:         store.Shop,
		NotificationRepo: store.Notifications,
		ActivityRepo:     store.Activity,
		TXManager:        store.TX,
	}
}
