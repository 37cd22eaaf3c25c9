package memstore

import (
	"context"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

const notificationLimit = 50

type Notifications struct {
	s *Store
}

func (r *Notifications) Create(ctx context.Context, n *domain.Notification) error {
	return r.s.write(ctx, func(d *data) error {
		d.notificationN++
		n.ID = d.notificationN
		d.notifications = append(d.notifications, *n)
		return nil
	})
}

func (r *Notifications) FindByUser(_ context.Context, username string, unreadOnly bool) ([]domain.Notification, error) {
	out := []domain.Notification{}
	r.s.read(func(d *data) {
		for i := len(d.notifications) - 1; i >= 0 && len(out) < notificationLimit; i-- {
			n := d.notifications[i]
			if n.User != username || (unreadOnly && n.Read) {
				continue
			}
			out = append(out, n)
		}
	})
	return out, nil
}

func (r *Notifications) MarkRead(ctx context.Context, username string, id int64) error {
	return r.s.write(ctx, func(d *data) error {
		for i := range d.notifications {
			if d.notifications[i].ID == id && d.notifications[i].User == username {
				d.notifications[i].Read = true
				return nil
			}
		}
		return domain.ErrNotificationNotFound
	})
}
