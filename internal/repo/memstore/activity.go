package memstore

import (
	"context"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

// activityRetention bounds the in-memory log; the oldest entries go first.
const activityRetention = 1000

type Activity struct {
	s *Store
}

func (r *Activity) Create(ctx context.Context, entry *domain.ActivityLog) error {
	return r.s.write(ctx, func(d *data) error {
		d.activityN++
		entry.ID = d.activityN
		d.activity = append(d.activity, *entry)
		if extra := len(d.activity) - activityRetention; extra > 0 {
			d.activity = append([]domain.ActivityLog(nil), d.activity[extra:]...)
		}
		return nil
	})
}

func (r *Activity) FindRecent(_ context.Context, limit int) ([]domain.ActivityLog, error) {
	out := []domain.ActivityLog{}
	r.s.read(func(d *data) {
		for i := len(d.activity) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, d.activity[i])
		}
	})
	return out, nil
}

func (r *Activity) DeleteAll(ctx context.Context) error {
	return r.s.write(ctx, func(d *data) error {
		d.activity = nil
		return nil
	})
}
