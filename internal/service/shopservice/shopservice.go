package shopservice

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/internal/service/rigservice"
	"github.com/GlebRadaev/rigledger/pkg/idgen"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
)

const rigType = "GPU"

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type ItemRepo interface {
	FindAll(ctx context.Context) ([]domain.ShopItem, error)
	FindByID(ctx context.Context, id int64) (*domain.ShopItem, error)
	Save(ctx context.Context, item *domain.ShopItem) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Ledger interface {
	RecordPurchase(ctx context.Context, username string, price decimal.Decimal, item string) (*domain.Transaction, error)
}

type Catalog struct {
	Disabled bool              `json:"disabled"`
	Notice   string            `json:"notice,omitempty"`
	Items    []domain.ShopItem `json:"items"`
}

type Receipt struct {
	Account     *domain.Account     `json:"-"`
	Rig         domain.Rig          `json:"rig"`
	Transaction *domain.Transaction `json:"transaction"`
}

type Service struct {
	accounts  AccountRepo
	items     ItemRepo
	settings  SettingsRepo
	ledger    Ledger
	txManager pg.TXManager
	locker    keylock.Locker
	ids       idgen.Generator
	publisher events.Publisher
	now       func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(
	accounts AccountRepo,
	items ItemRepo,
	settings SettingsRepo,
	ledger Ledger,
	txManager pg.TXManager,
	locker keylock.Locker,
	ids idgen.Generator,
	publisher events.Publisher,
) *Service {
	return &Service{
		accounts:  accounts,
		items:     items,
		settings:  settings,
		ledger:    ledger,
		txManager: txManager,
		locker:    locker,
		ids:       ids,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Buy debits the item price, attaches a new rig and records the purchase as one
// unit of work. Any failure leaves the account and the log untouched.
func (s *Service) Buy(ctx context.Context, username string, itemID int64) (*Receipt, error) {
	receipt, err := s.buy(ctx, username, itemID)
	if err != nil {
		zap.L().Error("failed to buy item", zap.String("username", username), zap.Int64("item", itemID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("item purchased", zap.String("username", username), zap.Int64("item", itemID), zap.String("rig", receipt.Rig.Name))
	s.publisher.Publish(ctx, events.New(events.TypePurchaseCompleted, username).
		WithTransaction(receipt.Transaction).
		With("rig", receipt.Rig.Name).
		Notify(domain.NotificationSuccess, fmt.Sprintf("Purchased %s for %s", receipt.Rig.Name, receipt.Transaction.Amount)))
	return receipt, nil
}

// buy releases the account lock before returning so events go out unlocked.
func (s *Service) buy(ctx context.Context, username string, itemID int64) (*Receipt, error) {
	unlock, err := s.locker.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var receipt *Receipt
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		settings, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		if settings.ShopDisabled {
			return domain.ErrShopDisabled
		}

		item, err := s.items.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		// settle income at the old hashrate before the new rig counts
		rigservice.Accrue(account, s.now())
		if account.Balance.LessThan(item.Price) {
			return domain.ErrInsufficientFunds
		}

		account.Balance = account.Balance.Sub(item.Price)
		rig := rigservice.AttachRig(account, s.newRig(item))
		if err := s.accounts.Update(ctx, account); err != nil {
			return err
		}

		tx, err := s.ledger.RecordPurchase(ctx, username, item.Price, item.Name)
		if err != nil {
			return err
		}
		receipt = &Receipt{Account: account, Rig: rig, Transaction: tx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *Service) newRig(item *domain.ShopItem) domain.Rig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Rig{
		Name:   item.Name,
		Speed:  item.Speed,
		Status: domain.RigStatusActive,
		Type:   rigType,
		Temp:   float64(60 + s.rnd.Intn(21)),
		Power:  float64(120 + s.rnd.Intn(51)),
		Fan:    float64(50 + s.rnd.Intn(31)),
	}
}

func (s *Service) Items(ctx context.Context) (*Catalog, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Error(err))
		return nil, err
	}
	items, err := s.items.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list items", zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []domain.ShopItem{}
	}
	return &Catalog{Disabled: settings.ShopDisabled, Notice: settings.ShopNotice, Items: items}, nil
}

// AddItem stores item, replacing the one with the same id. A zero id gets a fresh one.
func (s *Service) AddItem(ctx context.Context, item domain.ShopItem) (*domain.ShopItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Speed.IsNegative() || !domain.FitsScale(item.Speed, domain.SpeedScale) {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidMoney(item.Price) {
		return nil, domain.ErrInvalidAmount
	}
	if item.ID == 0 {
		item.ID = s.ids.NextID()
	}

	if err := s.items.Save(ctx, &item); err != nil {
		zap.L().Error("failed to save item", zap.Int64("id", item.ID), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete item", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ClearItems(ctx context.Context) error {
	if err := s.items.DeleteAll(ctx); err != nil {
		zap.L().Error("failed to clear items", zap.Error(err))
		return err
	}
	return nil
}
