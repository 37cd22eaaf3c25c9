package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/handlers/account"
	"github.com/GlebRadaev/rigledger/internal/handlers/admin"
	"github.com/GlebRadaev/rigledger/internal/handlers/shop"
	"github.com/GlebRadaev/rigledger/internal/handlers/transactions"
	"github.com/GlebRadaev/rigledger/internal/repo"
	"github.com/GlebRadaev/rigledger/internal/service/accountservice"
	"github.com/GlebRadaev/rigledger/internal/service/activityservice"
	"github.com/GlebRadaev/rigledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/rigledger/internal/service/referralservice"
	"github.com/GlebRadaev/rigledger/internal/service/rigservice"
	"github.com/GlebRadaev/rigledger/internal/service/settingsservice"
	"github.com/GlebRadaev/rigledger/internal/service/shopservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/idgen"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
)

type AccountService interface {
	account.Service
	admin.AccountService
	EnsureAdmin(ctx context.Context, password string) error
}

type LedgerService interface {
	transactions.Service
	admin.LedgerService
}

type ActivityService interface {
	account.ActivityRecorder
	admin.ActivityService
}

type ShopService interface {
	shop.Service
	admin.ShopService
}

type Services struct {
	AccountService  AccountService
	LedgerService   LedgerService
	ShopService     ShopService
	StatusService   admin.StatusService
	SettingsService admin.SettingsService
	RigService      admin.RigService
	ActivityService ActivityService
}

type Options struct {
	Locker        keylock.Locker
	IDs           idgen.Generator
	Publisher     events.Publisher
	JWT           auth.JWTServiceInterface
	Hash          auth.HashServiceInterface
	AdminLogin    string
	ReferrerBonus decimal.Decimal
	SignupBonus   decimal.Decimal
}

func New(repo *repo.Repositories, opts Options) *Services {
	if opts.Publisher == nil {
		opts.Publisher = events.Nop{}
	}
	if opts.Locker == nil {
		opts.Locker = keylock.NewLocal()
	}

	ledgerService := ledgerservice.New(repo.AccountRepo, repo.TransactionRepo, repo.SettingsRepo, repo.TXManager, opts.Locker, opts.IDs, opts.Publisher)
	referralService := referralservice.New(repo.AccountRepo, ledgerService, repo.TXManager, opts.Locker, opts.Publisher, opts.ReferrerBonus, opts.SignupBonus)
	rigService := rigservice.New(repo.AccountRepo, repo.TXManager, opts.Locker, opts.Publisher)
	shopService := shopservice.New(repo.AccountRepo, repo.ShopRepo, repo.SettingsRepo, ledgerService, repo.TXManager, opts.Locker, opts.IDs, opts.Publisher)
	settingsService := settingsservice.New(repo.SettingsRepo, opts.Publisher)
	accountService := accountservice.New(repo.AccountRepo, repo.NotificationRepo, repo.SettingsRepo, repo.TransactionRepo, referralService,
		repo.TXManager, opts.Locker, opts.Publisher, opts.Hash, opts.JWT, opts.AdminLogin)
	activityService := activityservice.New(repo.ActivityRepo, repo.TXManager)

	return &Services{
		AccountService:  accountService,
		LedgerService:   ledgerService,
		ShopService:     shopService,
		StatusService:   referralService,
		SettingsService: settingsService,
		RigService:      rigService,
		ActivityService: activityService,
	}
}
