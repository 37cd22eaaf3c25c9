package settingsrepo

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	keyDepositFee  = "deposit_fee_percent"
	keyWithdrawFee = "withdraw_fee_percent"
	keyShopOff     = "shop_disabled"
	keyShopNotice  = "shop_notice"
	keyMaintenance = "maintenance"
	keyAnnounce    = "system_announcement"
	keyAnnounceOn  = "system_announcement_active"
)

const (
	selectSettings = `SELECT key, value FROM settings`
	upsertSetting  = `INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Get returns stored settings. Missing or unparsable keys keep their zero defaults.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	rows, err := r.db.Query(ctx, selectSettings)
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := &domain.Settings{
		DepositFeePercent:  decimal.Zero,
		WithdrawFeePercent: decimal.Zero,
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan setting", zap.Error(err))
			return nil, err
		}
		apply(settings, key, value)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (r *Repository) Update(ctx context.Context, settings *domain.Settings) error {
	values := [][2]string{
		{keyDepositFee, settings.DepositFeePercent.String()},
		{keyWithdrawFee, settings.WithdrawFeePercent.String()},
		{keyShopOff, strconv.FormatBool(settings.ShopDisabled)},
		{keyShopNotice, settings.ShopNotice},
		{keyMaintenance, strconv.FormatBool(settings.Maintenance)},
		{keyAnnounce, settings.Announcement},
		{keyAnnounceOn, strconv.FormatBool(settings.AnnouncementActive)},
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, kv := range values {
			if _, err := r.db.Exec(ctx, upsertSetting, kv[0], kv[1]); err != nil {
				zap.L().Error("can't save setting", zap.String("key", kv[0]), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func apply(s *domain.Settings, key, value string) {
	var err error
	switch key {
	case keyDepositFee:
		s.DepositFeePercent, err = decimal.NewFromString(value)
	case keyWithdrawFee:
		s.WithdrawFeePercent, err = decimal.NewFromString(value)
	case keyShopOff:
		s.ShopDisabled, err = strconv.ParseBool(value)
	case keyShopNotice:
		s.ShopNotice = value
	case keyMaintenance:
		s.Maintenance, err = strconv.ParseBool(value)
	case keyAnnounce:
		s.Announcement = value
	case keyAnnounceOn:
		s.AnnouncementActive, err = strconv.ParseBool(value)
	default:
		return
	}
	if err != nil {
		zap.L().Warn("ignoring invalid setting", zap.String("key", key), zap.String("value", value), zap.Error(err))
	}
}
