package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/pkg/idgen"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
)

const DefaultDepositMethod = "qr_auto"

var hundred = decimal.NewFromInt(100)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx *domain.Transaction) error
	FindByUser(ctx context.Context, username string) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
	DeleteAll(ctx context.Context) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Service struct {
	accounts     AccountRepo
	transactions TransactionRepo
	settings     SettingsRepo
	txManager    pg.TXManager
	locker       keylock.Locker
	ids          idgen.Generator
	publisher    events.Publisher
	now          func() time.Time
}

func New(
	accounts AccountRepo,
	transactions TransactionRepo,
	settings SettingsRepo,
	txManager pg.TXManager,
	locker keylock.Locker,
	ids idgen.Generator,
	publisher events.Publisher,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		settings:     settings,
		txManager:    txManager,
		locker:       locker,
		ids:          ids,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateDeposit records a pending deposit. The balance changes only on approval.
func (s *Service) CreateDeposit(ctx context.Context, username string, amount decimal.Decimal, method string) (*domain.Transaction, error) {
	if !domain.ValidMoney(amount) {
		return nil, domain.ErrInvalidAmount
	}
	if method == "" {
		method = DefaultDepositMethod
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		zap.L().Error("failed to get account", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	tx := &domain.Transaction{
		ID:        s.ids.NextID(),
		User:      username,
		Type:      domain.TransactionTypeDeposit,
		Amount:    amount,
		Status:    domain.TransactionStatusPending,
		Method:    method,
		CreatedAt: s.now(),
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		zap.L().Error("failed to create deposit", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit requested", zap.String("username", username), zap.Int64("id", tx.ID), zap.String("amount", amount.String()))
	s.publisher.Publish(ctx, events.New(events.TypeTransactionCreated, username).
		WithTransaction(tx).
		Notify(domain.NotificationInfo, fmt.Sprintf("Deposit of %s is waiting for review", amount)))
	return tx, nil
}

// CreateWithdraw holds amount on the balance and records a pending withdrawal.
func (s *Service) CreateWithdraw(ctx context.Context, username string, amount decimal.Decimal, bank, bankAccount string) (*domain.Transaction, error) {
	if !domain.ValidMoney(amount) {
		return nil, domain.ErrInvalidAmount
	}

	var tx *domain.Transaction
	err := keylock.Run(ctx, s.locker, func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			account, err := s.accounts.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrAccountNotFound
			}
			if account.Balance.LessThan(amount) {
				return domain.ErrInsufficientFunds
			}
	
			if bank == "" && bankAccount == "" {
				bank, bankAccount = account.Bank, account.BankAccount
			}
			account.Balance = account.Balance.Sub(amount)
			if err := s.accounts.Update(ctx, account); err != nil {
				return err
			}
	
			tx = &domain.Transaction{
				ID:          s.ids.NextID(),
				User:        username,
				Type:        domain.TransactionTypeWithdraw,
				Amount:      amount,
				Status:      domain.TransactionStatusPending,
				Bank:        bank,
				BankAccount: bankAccount,
				CreatedAt:   s.now(),
			}
			return s.transactions.Create(ctx, tx)
		})
	}, username)
	if err != nil {
		zap.L().Error("failed to create withdrawal", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal requested", zap.String("username", username), zap.Int64("id", tx.ID), zap.String("amount", amount.String()))
	s.publisher.Publish(ctx, events.New(events.TypeTransactionCreated, username).
		WithTransaction(tx).
		Notify(domain.NotificationInfo, fmt.Sprintf("Withdrawal of %s is waiting for review", amount)))
	return tx, nil
}

// Approve settles a pending deposit or withdrawal, charging the configured fee.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := s.settle(ctx, id, domain.TransactionStatusApproved)
	if err != nil {
		return nil, err
	}

	var message string
	switch tx.Type {
	case domain.TransactionTypeDeposit:
		message = fmt.Sprintf("Deposit of %s approved, credited %s", tx.Amount, tx.NetAmount)
	default:
		message = fmt.Sprintf("Withdrawal of %s approved, you receive %s", tx.Amount, tx.NetAmount)
	}
	s.publisher.Publish(ctx, events.New(events.TypeTransactionApproved, tx.User).
		WithTransaction(tx).
		Notify(domain.NotificationSuccess, message))
	return tx, nil
}

// Reject closes a pending transaction. A rejected withdrawal returns its hold.
func (s *Service) Reject(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := s.settle(ctx, id, domain.TransactionStatusRejected)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Deposit of %s rejected", tx.Amount)
	if tx.Type == domain.TransactionTypeWithdraw {
		message = fmt.Sprintf("Withdrawal of %s rejected, amount returned to balance", tx.Amount)
	}
	s.publisher.Publish(ctx, events.New(events.TypeTransactionRejected, tx.User).
		WithTransaction(tx).
		Notify(domain.NotificationError, message))
	return tx, nil
}

func (s *Service) settle(ctx context.Context, id int64, status domain.TransactionStatus) (*domain.Transaction, error) {
	current, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get transaction", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrTransactionNotFound
	}

	unlock, err := s.locker.Lock(ctx, current.User)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var settled *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.transactions.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrTransactionNotFound
		}
		if tx.Status != domain.TransactionStatusPending {
			return domain.ErrInvalidState
		}

		now := s.now()
		tx.Status = status
		tx.ProcessedAt = &now

		var credit decimal.Decimal
		switch {
		case status == domain.TransactionStatusApproved:
			fee, net, err := s.fee(ctx, tx)
			if err != nil {
				return err
			}
			tx.Fee, tx.NetAmount = &fee, &net
			if tx.Type == domain.TransactionTypeDeposit {
				credit = net
			}
		case tx.Type == domain.TransactionTypeWithdraw:
			credit = tx.Amount
		}

		if credit.IsPositive() {
			account, err := s.accounts.GetByUsername(ctx, tx.User)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrAccountNotFound
			}
			account.Balance = account.Balance.Add(credit)
			if err := s.accounts.Update(ctx, account); err != nil {
				return err
			}
		}

		if err := s.transactions.UpdateStatus(ctx, tx); err != nil {
			return err
		}
		settled = tx
		return nil
	})
	if err != nil {
		zap.L().Error("failed to settle transaction", zap.Int64("id", id), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction settled", zap.Int64("id", id), zap.String("status", string(status)))
	return settled, nil
}

// fee applies the percent configured for the transaction type.
func (s *Service) fee(ctx context.Context, tx *domain.Transaction) (fee, net decimal.Decimal, err error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	percent := decimal.Zero
	switch tx.Type {
	case domain.TransactionTypeDeposit:
		percent = settings.DepositFeePercent
	case domain.TransactionTypeWithdraw:
		percent = settings.WithdrawFeePercent
	}
	fee = tx.Amount.Mul(percent).Div(hundred).Round(8)
	return fee, tx.Amount.Sub(fee), nil
}

// CreateSettledBonus credits a bonus that needs no review.
func (s *Service) CreateSettledBonus(ctx context.Context, username string, amount decimal.Decimal, kind domain.TransactionType) (*domain.Transaction, error) {
	if err := validateBonus(amount, kind); err != nil {
		return nil, err
	}

	var tx *domain.Transaction
	err := keylock.Run(ctx, s.locker, func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			account, err := s.accounts.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrAccountNotFound
			}
			if tx, err = s.CreditBonus(ctx, account, amount, kind); err != nil {
				return err
			}
			return s.accounts.Update(ctx, account)
		})
	}, username)
	if err != nil {
		zap.L().Error("failed to credit bonus", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	s.PublishBonus(ctx, tx)
	return tx, nil
}

// CreditBonus adds amount to the account snapshot and appends the settled
// transaction. The caller holds the account lock, runs inside a unit of work
// and stores the account afterwards.
func (s *Service) CreditBonus(ctx context.Context, account *domain.Account, amount decimal.Decimal, kind domain.TransactionType) (*domain.Transaction, error) {
	if err := validateBonus(amount, kind); err != nil {
		return nil, err
	}

	now := s.now()
	tx := &domain.Transaction{
		ID:          s.ids.NextID(),
		User:        account.Username,
		Type:        kind,
		Amount:      amount,
		Status:      domain.TransactionStatusApproved,
		Method:      string(kind),
		CreatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	account.Balance = account.Balance.Add(amount)
	return tx, nil
}

func (s *Service) PublishBonus(ctx context.Context, tx *domain.Transaction) {
	message := fmt.Sprintf("Welcome bonus of %s credited", tx.Amount)
	if tx.Type == domain.TransactionTypeReferralBonus {
		message = fmt.Sprintf("Referral bonus of %s credited", tx.Amount)
	}
	s.publisher.Publish(ctx, events.New(events.TypeBonusSettled, tx.User).
		WithTransaction(tx).
		Notify(domain.NotificationSuccess, message))
}

// RecordPurchase appends a completed purchase. The debit belongs to the caller's unit of work.
func (s *Service) RecordPurchase(ctx context.Context, username string, price decimal.Decimal, item string) (*domain.Transaction, error) {
	if !domain.ValidMoney(price) {
		return nil, domain.ErrInvalidAmount
	}
	now := s.now()
	tx := &domain.Transaction{
		ID:          s.ids.NextID(),
		User:        username,
		Type:        domain.TransactionTypePurchase,
		Amount:      price,
		Status:      domain.TransactionStatusCompleted,
		Item:        item,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) ListByUser(ctx context.Context, username string) ([]domain.Transaction, error) {
	txs, err := s.transactions.FindByUser(ctx, username)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.transactions.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Clear drops the whole transaction log. Balances are not touched.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.transactions.DeleteAll(ctx); err != nil {
		zap.L().Error("failed to clear transactions", zap.Error(err))
		return err
	}
	zap.L().Warn("transaction log cleared")
	return nil
}

func validateBonus(amount decimal.Decimal, kind domain.TransactionType) error {
	if kind != domain.TransactionTypeReferralBonus && kind != domain.TransactionTypeSignupBonus {
		return domain.ErrInvalidBonusKind
	}
	if !domain.ValidMoney(amount) {
		return domain.ErrInvalidAmount
	}
	return nil
}
