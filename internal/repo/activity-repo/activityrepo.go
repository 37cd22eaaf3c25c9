package activityrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	insertLog = `INSERT INTO activity_logs (type, username, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	queryRecent = `SELECT id, type, username, action, details, created_at FROM activity_logs
		ORDER BY created_at DESC, id DESC LIMIT $1`
	deleteAll = `DELETE FROM activity_logs`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	err := r.db.QueryRow(ctx, insertLog, string(entry.Type), entry.User, entry.Action, entry.Details, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save activity log", zap.String("action", entry.Action), zap.Error(err))
		return err
	}
	return nil
}

// FindRecent returns up to limit entries, newest first.
func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	rows, err := r.db.Query(ctx, queryRecent, limit)
	if err != nil {
		zap.L().Error("can't get activity logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	logs := []domain.ActivityLog{}
	for rows.Next() {
		var e domain.ActivityLog
		if err := rows.Scan(&e.ID, &e.Type, &e.User, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan activity log", zap.Error(err))
			return nil, err
		}
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating activity logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, deleteAll); err != nil {
		zap.L().Error("can't clear activity logs", zap.Error(err))
		return err
	}
	return nil
}
