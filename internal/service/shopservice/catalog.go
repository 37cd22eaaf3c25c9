package shopservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

// Exponential progression of the generated catalog.
const (
	catalogLevels = 100
	speedPlaces   = 8
)

var (
	basePrice      = decimal.NewFromInt(500)
	baseIncome     = decimal.NewFromInt(300)
	priceMult      = decimal.RequireFromString("1.135")
	incomeMult     = decimal.RequireFromString("1.10")
	secondsInMonth = decimal.NewFromInt(30 * 24 * 3600)
)

// GenerateCatalog builds levels items. Each level costs 13.5% more than the
// previous one and earns 10% more per month; speed is the income per second.
func GenerateCatalog(levels int) []domain.ShopItem {
	items := make([]domain.ShopItem, 0, levels)
	for lv := 1; lv <= levels; lv++ {
		step := decimal.NewFromInt(int64(lv - 1))
		price := basePrice.Mul(priceMult.Pow(step))
		income := baseIncome.Mul(incomeMult.Pow(step))

		items = append(items, domain.ShopItem{
			ID:    int64(lv),
			Name:  fmt.Sprintf("AI Miner System Lv.%d", lv),
			Price: roundPrice(price),
			Speed: income.DivRound(secondsInMonth, speedPlaces),
			Tier:  tier(lv),
			Icon:  icon(lv),
			Tag:   tag(lv),
		})
	}
	return items
}

func roundPrice(p decimal.Decimal) decimal.Decimal {
	var step int64
	switch {
	case p.LessThan(decimal.NewFromInt(1000)):
		step = 10
	case p.LessThan(decimal.NewFromInt(10000)):
		step = 100
	case p.LessThan(decimal.NewFromInt(1000000)):
		step = 1000
	default:
		step = 10000
	}
	s := decimal.NewFromInt(step)
	return p.Div(s).Round(0).Mul(s)
}

func tier(lv int) string {
	switch {
	case lv <= 20:
		return "basic"
	case lv <= 50:
		return "mid"
	case lv <= 80:
		return "pro"
	case lv < 100:
		return "legendary"
	}
	return "limited"
}

func icon(lv int) string {
	switch {
	case lv <= 20:
		return "fa-fan"
	case lv <= 40:
		return "fa-server"
	case lv <= 60:
		return "fa-microchip"
	case lv <= 80:
		return "fa-memory"
	case lv < 100:
		return "fa-brain"
	}
	return "fa-rocket"
}

func tag(lv int) string {
	switch {
	case lv == 1:
		return "new"
	case lv == 100:
		return "best"
	case lv%25 == 0:
		return "hot"
	case lv%10 == 0:
		return "sale"
	}
	return ""
}

// Regenerate replaces the whole catalog with the generated progression.
func (s *Service) Regenerate(ctx context.Context) (int, error) {
	items := GenerateCatalog(catalogLevels)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.items.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range items {
			if err := s.items.Save(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to regenerate catalog", zap.Error(err))
		return 0, err
	}

	zap.L().Info("catalog regenerated", zap.Int("items", len(items)))
	return len(items), nil
}
