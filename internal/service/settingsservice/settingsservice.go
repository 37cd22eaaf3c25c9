package settingsservice

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/events"
)

var hundred = decimal.NewFromInt(100)

type Repo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

type Service struct {
	repo      Repo
	publisher events.Publisher
}

func New(repo Repo, publisher events.Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

// Update replaces every setting on behalf of actor. Fee percents must lie in [0, 100].
func (s *Service) Update(ctx context.Context, actor string, settings domain.Settings) (*domain.Settings, error) {
	for _, percent := range []decimal.Decimal{settings.DepositFeePercent, settings.WithdrawFeePercent} {
		if percent.IsNegative() || percent.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := s.repo.Update(ctx, &settings); err != nil {
		zap.L().Error("can't update settings", zap.Error(err))
		return nil, err
	}
	zap.L().Info("settings updated",
		zap.String("deposit_fee", settings.DepositFeePercent.String()),
		zap.String("withdraw_fee", settings.WithdrawFeePercent.String()),
		zap.Bool("shop_disabled", settings.ShopDisabled),
		zap.Bool("maintenance", settings.Maintenance),
	)
	s.publisher.Publish(ctx, events.New(events.TypeSettingsUpdated, actor).
		With("deposit_fee", settings.DepositFeePercent.String()).
		With("withdraw_fee", settings.WithdrawFeePercent.String()).
		With("shop_disabled", strconv.FormatBool(settings.ShopDisabled)).
		With("maintenance", strconv.FormatBool(settings.Maintenance)).
		With("announcement_active", strconv.FormatBool(settings.AnnouncementActive)))
	return &settings, nil
}
