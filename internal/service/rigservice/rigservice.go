package rigservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type ToggleResult struct {
	Success bool             `json:"success"`
	Status  domain.RigStatus `json:"status,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// MaxAccrualWindow caps the idle time a single accrual pays for.
const MaxAccrualWindow = 24 * time.Hour

type Service struct {
	accounts  AccountRepo
	txManager pg.TXManager
	locker    keylock.Locker
	publisher events.Publisher
	now       func() time.Time
}

func New(accounts AccountRepo, txManager pg.TXManager, locker keylock.Locker, publisher events.Publisher) *Service {
	return &Service{
		accounts:  accounts,
		txManager: txManager,
		locker:    locker,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Accrue credits the mining income earned since account.LastActive at the
// current hashrate and moves LastActive to now. Income is truncated to the
// money scale and the window is capped at MaxAccrualWindow. Banned accounts
// and accounts without a LastActive earn nothing. The caller holds the account
// lock, runs before any hashrate change and stores the account afterwards.
func Accrue(account *domain.Account, now time.Time) decimal.Decimal {
	credit := decimal.Zero
	if !account.LastActive.IsZero() && now.After(account.LastActive) &&
		account.Status != domain.AccountStatusBanned && account.Hashrate.IsPositive() {
		elapsed := now.Sub(account.LastActive)
		if elapsed > MaxAccrualWindow {
			elapsed = MaxAccrualWindow
		}
		seconds := decimal.New(elapsed.Milliseconds(), -3)
		credit = account.Hashrate.Mul(seconds).Truncate(domain.MoneyScale)
		account.Balance = account.Balance.Add(credit)
	}
	if now.After(account.LastActive) {
		account.LastActive = now
	}
	return credit
}

// RecomputeHashrate sums the speed of every rig that is not paused.
func RecomputeHashrate(rigs []domain.Rig) decimal.Decimal {
	total := decimal.Zero
	for _, rig := range rigs {
		if rig.Status != domain.RigStatusPaused {
			total = total.Add(rig.Speed)
		}
	}
	return total
}

// AttachRig appends rig to the account snapshot. A name already present gets a
// numeric suffix, since rigs are addressed by name.
func AttachRig(account *domain.Account, rig domain.Rig) domain.Rig {
	if rig.Status == "" {
		rig.Status = domain.RigStatusActive
	}
	if rig.PurchasedAt.IsZero() {
		rig.PurchasedAt = time.Now().UTC()
	}
	rig.Name = uniqueName(account.Rigs, rig.Name)

	account.Rigs = append(account.Rigs, rig)
	if rig.Status != domain.RigStatusPaused {
		account.Hashrate = account.Hashrate.Add(rig.Speed)
	}
	return rig
}

func uniqueName(rigs []domain.Rig, name string) string {
	taken := make(map[string]struct{}, len(rigs))
	for _, r := range rigs {
		taken[r.Name] = struct{}{}
	}
	if _, ok := taken[name]; !ok {
		return name
	}
	for n := 2; ; n++ {
		candidate := name + " #" + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func (s *Service) AddRig(ctx context.Context, username string, rig domain.Rig) (*domain.Account, error) {
	if rig.Speed.IsNegative() {
		return nil, fmt.Errorf("%w: rig speed must not be negative", domain.ErrInvalidInput)
	}
	if !domain.FitsScale(rig.Speed, domain.SpeedScale) {
		return nil, fmt.Errorf("%w: rig speed has more than %d decimals", domain.ErrInvalidInput, domain.SpeedScale)
	}
	if rig.Status != "" && rig.Status != domain.RigStatusActive && rig.Status != domain.RigStatusPaused {
		return nil, fmt.Errorf("%w: unknown rig status %q", domain.ErrInvalidInput, rig.Status)
	}

	var added domain.Rig
	account, err := s.mutate(ctx, username, func(account *domain.Account) bool {
		added = AttachRig(account, rig)
		return true
	})
	if err != nil {
		zap.L().Error("failed to add rig", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, events.New(events.TypeRigUpdated, username).
		Notify(domain.NotificationSuccess, fmt.Sprintf("Rig %s added", added.Name)).
		With("action", "add").
		With("rig", added.Name).
		With("hashrate", account.Hashrate.String()))
	return account, nil
}

// RemoveRig removes the first rig named rigName. It reports false when no rig matches.
func (s *Service) RemoveRig(ctx context.Context, username, rigName string) (bool, error) {
	removed := false
	account, err := s.mutate(ctx, username, func(account *domain.Account) bool {
		for i, rig := range account.Rigs {
			if rig.Name == rigName {
				account.Rigs = append(account.Rigs[:i:i], account.Rigs[i+1:]...)
				account.Hashrate = RecomputeHashrate(account.Rigs)
				removed = true
				return true
			}
		}
		return false
	})
	if err != nil {
		zap.L().Error("failed to remove rig", zap.String("username", username), zap.Error(err))
		return false, err
	}
	if !removed {
		return false, nil
	}

	s.publisher.Publish(ctx, events.New(events.TypeRigUpdated, username).
		Notify(domain.NotificationInfo, fmt.Sprintf("Rig %s removed", rigName)).
		With("action", "remove").
		With("rig", rigName).
		With("hashrate", account.Hashrate.String()))
	return true, nil
}

// ToggleRig flips the named rig between active and paused.
func (s *Service) ToggleRig(ctx context.Context, username, rigName string) (ToggleResult, error) {
	var result ToggleResult
	account, err := s.mutate(ctx, username, func(account *domain.Account) bool {
		for i := range account.Rigs {
			rig := &account.Rigs[i]
			if rig.Name != rigName {
				continue
			}
			if rig.Status == domain.RigStatusPaused {
				rig.Status = domain.RigStatusActive
			} else {
				rig.Status = domain.RigStatusPaused
			}
			account.Hashrate = RecomputeHashrate(account.Rigs)
			result = ToggleResult{Success: true, Status: rig.Status}
			return true
		}
		result = ToggleResult{Success: false, Error: fmt.Sprintf("rig %q not found", rigName)}
		return false
	})
	if err != nil {
		zap.L().Error("failed to toggle rig", zap.String("username", username), zap.Error(err))
		return ToggleResult{}, err
	}
	if !result.Success {
		return result, nil
	}

	s.publisher.Publish(ctx, events.New(events.TypeRigUpdated, username).
		Notify(domain.NotificationInfo, fmt.Sprintf("Rig %s is now %s", rigName, result.Status)).
		With("action", "toggle").
		With("rig", rigName).
		With("status", string(result.Status)).
		With("hashrate", account.Hashrate.String()))
	return result, nil
}

// mutate loads the account under its lock, applies fn and stores the record when fn reports a change.
func (s *Service) mutate(ctx context.Context, username string, fn func(account *domain.Account) bool) (*domain.Account, error) {
	unlock, err := s.locker.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		// income up to now is paid at the rate in force before fn runs
		Accrue(account, s.now())
		if !fn(account) {
			result = account
			return nil
		}
		if err := s.accounts.Update(ctx, account); err != nil {
			return err
		}
		result = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
