package notificationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const limit = 50

const (
	insertNotification = `INSERT INTO notifications (username, message, kind, read, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	queryByUser = `SELECT id, username, message, kind, read, created_at FROM notifications
		WHERE username = $1 AND (NOT $2 OR read = FALSE) ORDER BY created_at DESC, id DESC LIMIT $3`
	markRead = `UPDATE notifications SET read = TRUE WHERE id = $1 AND username = $2`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	err := r.db.QueryRow(ctx, insertNotification, n.User, n.Message, string(n.Kind), n.Read, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		zap.L().Error("can't save notification", zap.String("username", n.User), zap.Error(err))
		return err
	}
	return nil
}

// FindByUser returns the latest notifications of a user, newest first.
func (r *Repository) FindByUser(ctx context.Context, username string, unreadOnly bool) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, queryByUser, username, unreadOnly, limit)
	if err != nil {
		zap.L().Error("can't get notifications", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.User, &n.Message, &n.Kind, &n.Read, &n.CreatedAt); err != nil {
			zap.L().Error("can't scan notification", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, username string, id int64) error {
	tag, err := r.db.Exec(ctx, markRead, id, username)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
