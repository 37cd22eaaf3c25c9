package memstore

import (
	"context"
	"sort"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type Settings struct {
	s *Store
}

func (r *Settings) Get(_ context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	r.s.read(func(d *data) {
		settings = d.settings
	})
	return &settings, nil
}

func (r *Settings) Update(ctx context.Context, settings *domain.Settings) error {
	return r.s.write(ctx, func(d *data) error {
		d.settings = *settings
		return nil
	})
}

type Shop struct {
	s *Store
}

func (r *Shop) FindAll(_ context.Context) ([]domain.ShopItem, error) {
	items := []domain.ShopItem{}
	r.s.read(func(d *data) {
		for _, item := range d.items {
			items = append(items, item)
		}
	})
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Price.Equal(items[j].Price) {
			return items[i].Price.LessThan(items[j].Price)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *Shop) FindByID(_ context.Context, id int64) (*domain.ShopItem, error) {
	var found *domain.ShopItem
	r.s.read(func(d *data) {
		if item, ok := d.items[id]; ok {
			found = &item
		}
	})
	return found, nil
}

func (r *Shop) Save(ctx context.Context, item *domain.ShopItem) error {
	return r.s.write(ctx, func(d *data) error {
		d.items[item.ID] = *item
		return nil
	})
}

func (r *Shop) Delete(ctx context.Context, id int64) error {
	return r.s.write(ctx, func(d *data) error {
		if _, ok := d.items[id]; !ok {
			return domain.ErrItemNotFound
		}
		delete(d.items, id)
		return nil
	})
}

func (r *Shop) DeleteAll(ctx context.Context) error {
	return r.s.write(ctx, func(d *data) error {
		d.items = map[int64]domain.ShopItem{}
		return nil
	})
}
