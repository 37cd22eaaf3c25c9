package referralservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
	"github.com/GlebRadaev/rigledger/pkg/validate"
)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type Ledger interface {
	CreditBonus(ctx context.Context, account *domain.Account, amount decimal.Decimal, kind domain.TransactionType) (*domain.Transaction, error)
	PublishBonus(ctx context.Context, tx *domain.Transaction)
}

type Service struct {
	accounts      AccountRepo
	ledger        Ledger
	txManager     pg.TXManager
	locker        keylock.Locker
	publisher     events.Publisher
	referrerBonus decimal.Decimal
	signupBonus   decimal.Decimal
}

func New(
	accounts AccountRepo,
	ledger Ledger,
	txManager pg.TXManager,
	locker keylock.Locker,
	publisher events.Publisher,
	referrerBonus, signupBonus decimal.Decimal,
) *Service {
	return &Service{
		accounts:      accounts,
		ledger:        ledger,
		txManager:     txManager,
		locker:        locker,
		publisher:     publisher,
		referrerBonus: referrerBonus,
		signupBonus:   signupBonus,
	}
}

// FindReferrer resolves a referral code to the account that owns it.
func (s *Service) FindReferrer(ctx context.Context, code string) (*domain.Account, error) {
	id, ok := validate.ParseReferralCode(code)
	if !ok {
		return nil, domain.ErrReferrerNotFound
	}
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to find referrer", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrReferrerNotFound
	}
	return account, nil
}

// UpdateStatus moves the account to status. The first approval of a referred
// account pays the referrer and the account itself, once.
func (s *Service) UpdateStatus(ctx context.Context, username string, status domain.AccountStatus) (*domain.Account, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		zap.L().Error("failed to get account", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	keys := []string{username}
	var referrerName string
	if cascades(account, status) {
		referrer, err := s.accounts.FindByID(ctx, *account.ReferrerID)
		if err != nil {
			zap.L().Error("failed to find referrer", zap.Int64("id", *account.ReferrerID), zap.Error(err))
			return nil, err
		}
		if referrer != nil {
			referrerName = referrer.Username
			keys = append(keys, referrerName)
		}
	}

	var (
		updated *domain.Account
		bonuses []*domain.Transaction
	)
	// events go out after Run returns, once the locks are released
	err = keylock.Run(ctx, s.locker, func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			bonuses = nil

			account, err := s.accounts.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrAccountNotFound
			}

			if cascades(account, status) {
				referrer, err := s.accounts.FindByID(ctx, *account.ReferrerID)
				if err != nil {
					return err
				}
				resolved := ""
				if referrer != nil {
					resolved = referrer.Username
				}
				if resolved != referrerName {
					return domain.ErrConflict
				}

				if referrer != nil && referrer.Username != account.Username {
					paid, err := s.ledger.CreditBonus(ctx, referrer, s.referrerBonus, domain.TransactionTypeReferralBonus)
					if err != nil {
						return err
					}
					if err := s.accounts.Update(ctx, referrer); err != nil {
						return err
					}
					welcome, err := s.ledger.CreditBonus(ctx, account, s.signupBonus, domain.TransactionTypeSignupBonus)
					if err != nil {
						return err
					}
					bonuses = append(bonuses, paid, welcome)
				}
				account.ReferralSettled = true
			}

			account.Status = status
			if err := s.accounts.Update(ctx, account); err != nil {
				return err
			}
			updated = account
			return nil
		})
	}, keys...)
	if err != nil {
		zap.L().Error("failed to update account status", zap.String("username", username), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}

	zap.L().Info("account status updated", zap.String("username", username), zap.String("status", string(status)), zap.Int("bonuses", len(bonuses)))
	s.publisher.Publish(ctx, events.New(events.TypeAccountStatusChanged, username).
		With("status", string(status)).
		Notify(domain.NotificationInfo, fmt.Sprintf("Account status changed to %s", status)))
	for _, tx := range bonuses {
		s.ledger.PublishBonus(ctx, tx)
	}
	return updated, nil
}

func cascades(account *domain.Account, status domain.AccountStatus) bool {
	return status == domain.AccountStatusApproved && !account.ReferralSettled && account.ReferrerID != nil
}
