package shoprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	selectItem = `SELECT id, name, price, speed, tier, icon, tag FROM shop_items`
	queryAll   = selectItem + ` ORDER BY price, id`
	queryByID  = selectItem + ` WHERE id = $1`
	upsertItem = `INSERT INTO shop_items (id, name, price, speed, tier, icon, tag) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, speed = EXCLUDED.speed,
		tier = EXCLUDED.tier, icon = EXCLUDED.icon, tag = EXCLUDED.tag`
	deleteItem  = `DELETE FROM shop_items WHERE id = $1`
	deleteItems = `DELETE FROM shop_items`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.ShopItem, error) {
	rows, err := r.db.Query(ctx, queryAll)
	if err != nil {
		zap.L().Error("can't get shop items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []domain.ShopItem{}
	for rows.Next() {
		var item domain.ShopItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Speed, &item.Tier, &item.Icon, &item.Tag); err != nil {
			zap.L().Error("can't scan shop item", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating shop items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.ShopItem, error) {
	var item domain.ShopItem
	err := r.db.QueryRow(ctx, queryByID, id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Speed, &item.Tier, &item.Icon, &item.Tag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find shop item", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Save(ctx context.Context, item *domain.ShopItem) error {
	_, err := r.db.Exec(ctx, upsertItem, item.ID, item.Name, item.Price, item.Speed, item.Tier, item.Icon, item.Tag)
	if err != nil {
		zap.L().Error("can't save shop item", zap.Int64("id", item.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteItem, id)
	if err != nil {
		zap.L().Error("can't delete shop item", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, deleteItems); err != nil {
		zap.L().Error("can't clear shop items", zap.Error(err))
		return err
	}
	return nil
}
