package accountservice

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/internal/service/rigservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
	"github.com/GlebRadaev/rigledger/pkg/validate"
)

const (
	tokenTTL    = 24 * time.Hour
	idAttempts  = 10
	minPassword = 4
)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindReferrals(ctx context.Context, id int64) ([]domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, username string) error
}

type NotificationRepo interface {
	FindByUser(ctx context.Context, username string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, username string, id int64) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type TransactionRepo interface {
	FindByUser(ctx context.Context, username string) ([]domain.Transaction, error)
}

type ReferrerFinder interface {
	FindReferrer(ctx context.Context, code string) (*domain.Account, error)
}

type RegisterInput struct {
	Username     string
	Password     string
	Name         string
	Bank         string
	BankAccount  string
	ReferralCode string
}

type Service struct {
	accounts      AccountRepo
	notifications NotificationRepo
	settings      SettingsRepo
	transactions  TransactionRepo
	referrals     ReferrerFinder
	txManager     pg.TXManager
	locker        keylock.Locker
	publisher     events.Publisher
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	adminLogin    string
	now           func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(
	accounts AccountRepo,
	notifications NotificationRepo,
	settings SettingsRepo,
	transactions TransactionRepo,
	referrals ReferrerFinder,
	txManager pg.TXManager,
	locker keylock.Locker,
	publisher events.Publisher,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	adminLogin string,
) *Service {
	return &Service{
		accounts:      accounts,
		notifications: notifications,
		settings:      settings,
		transactions:  transactions,
		referrals:     referrals,
		txManager:     txManager,
		locker:        locker,
		publisher:     publisher,
		hashService:   hashService,
		jwtService:    jwtService,
		adminLogin:    adminLogin,
		now:           func() time.Time { return time.Now().UTC() },
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Register creates a pending account. A referral code, when given, must resolve.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	account, err := s.create(ctx, in, domain.AccountStatusPending)
	if err != nil {
		return nil, err
	}
	referrer := "none"
	if account.ReferrerID != nil {
		referrer = strconv.FormatInt(*account.ReferrerID, 10)
	}
	s.publisher.Publish(ctx, events.New(events.TypeAccountRegistered, account.Username).
		With("referrer", referrer))
	return account, nil
}

// CreateUser is the admin path: the account starts active.
func (s *Service) CreateUser(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	account, err := s.create(ctx, in, domain.AccountStatusActive)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, events.New(events.TypeAccountCreated, account.Username))
	return account, nil
}

// EnsureAdmin creates the admin account unless it already exists.
func (s *Service) EnsureAdmin(ctx context.Context, password string) error {
	existing, err := s.accounts.GetByUsername(ctx, s.adminLogin)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = s.create(ctx, RegisterInput{
		Username:    s.adminLogin,
		Password:    password,
		Name:        "Administrator",
		Bank:        "-",
		BankAccount: "-",
	}, domain.AccountStatusActive)
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil
	}
	return err
}

func (s *Service) create(ctx context.Context, in RegisterInput, status domain.AccountStatus) (*domain.Account, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	if in.Username == "" || len(in.Password) < minPassword || in.Name == "" || in.Bank == "" || in.BankAccount == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.accounts.GetByUsername(ctx, in.Username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("username", in.Username))
		return nil, domain.ErrUsernameTaken
	}

	var referrerID *int64
	if strings.TrimSpace(in.ReferralCode) != "" {
		referrer, err := s.referrals.FindReferrer(ctx, in.ReferralCode)
		if err != nil {
			return nil, err
		}
		referrerID = &referrer.ID
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	now := s.now()
	account := &domain.Account{
		Username:     in.Username,
		PasswordHash: hashedPassword,
		Name:         in.Name,
		Bank:         in.Bank,
		BankAccount:  in.BankAccount,
		Balance:      decimal.Zero,
		Hashrate:     decimal.Zero,
		Status:       status,
		ReferrerID:   referrerID,
		Rigs:         []domain.Rig{},
		CreatedAt:    now,
		LastActive:   now,
	}

	if err := s.insert(ctx, account); err != nil {
		zap.L().Error("can't create account", zap.String("username", in.Username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("username", in.Username), zap.Int64("id", account.ID))
	return account, nil
}

// insert retries with a fresh id while the random one is taken.
func (s *Service) insert(ctx context.Context, account *domain.Account) error {
	err := domain.ErrAccountIDTaken
	for attempt := 0; attempt < idAttempts && errors.Is(err, domain.ErrAccountIDTaken); attempt++ {
		id, idErr := s.newID()
		if idErr != nil {
			return idErr
		}
		if account.ReferrerID != nil && *account.ReferrerID == id {
			continue
		}
		account.ID = id
		err = s.accounts.Create(ctx, account)
	}
	return err
}

func (s *Service) newID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validate.NewReferralID(s.rnd)
}

func (s *Service) CheckReferral(ctx context.Context, code string) (*domain.Account, error) {
	return s.referrals.FindReferrer(ctx, code)
}

// Authenticate checks credentials and stamps the login time. While the system
// is in maintenance only the admin can log in.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	if username != s.adminLogin {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			zap.L().Error("can't get settings", zap.Error(err))
			return nil, err
		}
		if settings.Maintenance {
			return nil, domain.ErrMaintenance
		}
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil || account == nil {
		zap.L().Info("invalid credentials", zap.String("username", username), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if account.Status == domain.AccountStatusBanned {
		return nil, domain.ErrInvalidCredentials
	}

	// the login stamp pays out income earned since the last activity first
	if synced, _, err := s.sync(ctx, username); err != nil {
		zap.L().Warn("can't update last activity", zap.String("username", username), zap.Error(err))
	} else {
		account = synced
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	s.publisher.Publish(ctx, events.New(events.TypeAccountLoggedIn, username))
	return account, nil
}

// Sync credits the mining income earned since the account was last active
// and returns the updated account with the credited amount.
func (s *Service) Sync(ctx context.Context, username string) (*domain.Account, decimal.Decimal, error) {
	account, credit, err := s.sync(ctx, username)
	if err != nil {
		zap.L().Error("can't sync account", zap.String("username", username), zap.Error(err))
		return nil, decimal.Zero, err
	}
	if credit.IsPositive() {
		zap.L().Debug("mining income credited", zap.String("username", username), zap.String("amount", credit.String()))
	}
	return account, credit, nil
}

func (s *Service) sync(ctx context.Context, username string) (*domain.Account, decimal.Decimal, error) {
	var (
		account *domain.Account
		credit  decimal.Decimal
	)
	err := keylock.Run(ctx, s.locker, func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			account, err = s.accounts.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrAccountNotFound
			}
			credit = rigservice.Accrue(account, s.now())
			return s.accounts.Update(ctx, account)
		})
	}, username)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return account, credit, nil
}

func (s *Service) GenerateToken(username string) (string, error) {
	token, err := s.jwtService.GenerateJWT(username, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Get(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't get account", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) Referrals(ctx context.Context, username string) ([]domain.Account, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	referrals, err := s.accounts.FindReferrals(ctx, account.ID)
	if err != nil {
		zap.L().Error("can't list referrals", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// Delete removes the account. The admin account cannot be deleted.
func (s *Service) Delete(ctx context.Context, username string) error {
	if username == s.adminLogin {
		return domain.ErrInvalidInput
	}

	// withdrawals take the same lock, so no new pending transaction can appear
	// between the check and the delete
	err := keylock.Run(ctx, s.locker, func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			txs, err := s.transactions.FindByUser(ctx, username)
			if err != nil {
				return err
			}
			for _, tx := range txs {
				if tx.Status == domain.TransactionStatusPending {
					return domain.ErrPendingTransactions
				}
			}
			return s.accounts.Delete(ctx, username)
		})
	}, username)
	if err != nil {
		zap.L().Error("can't delete account", zap.String("username", username), zap.Error(err))
		return err
	}
	zap.L().Info("account deleted", zap.String("username", username))
	s.publisher.Publish(ctx, events.New(events.TypeAccountDeleted, username))
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, username, password string) error {
	if len(password) < minPassword {
		return domain.ErrInvalidInput
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}

	err = keylock.Run(ctx, s.locker, func() error {
		account, err := s.Get(ctx, username)
		if err != nil {
			return err
		}
		account.PasswordHash = hashedPassword
		if err := s.accounts.Update(ctx, account); err != nil {
			zap.L().Error("can't reset password", zap.String("username", username), zap.Error(err))
			return err
		}
		return nil
	}, username)
	if err != nil {
		return err
	}
	zap.L().Info("password reset", zap.String("username", username))
	s.publisher.Publish(ctx, events.New(events.TypePasswordReset, username))
	return nil
}

func (s *Service) Notifications(ctx context.Context, username string, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.notifications.FindByUser(ctx, username, unreadOnly)
	if err != nil {
		zap.L().Error("can't list notifications", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, username string, id int64) error {
	return s.notifications.MarkRead(ctx, username, id)
}

// PublicStatus returns the settings anyone may read before logging in: the
// maintenance switch, the announcement and the fees.
func (s *Service) PublicStatus(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}
