// Package activityservice serves the admin activity log.
package activityservice

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	DefaultLimit = 200
	MaxLimit     = 1000

	maxActionLen  = 100
	maxDetailsLen = 2000
	maxUserLen    = 64
)

type Repo interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]domain.ActivityLog, error)
	DeleteAll(ctx context.Context) error
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List returns the newest entries. A limit outside (0, MaxLimit] falls back to DefaultLimit.
func (s *Service) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	logs, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("can't list activity logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// Clear empties the log and leaves one entry recording who cleared it.
func (s *Service) Clear(ctx context.Context, actor string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteAll(ctx); err != nil {
			return err
		}
		return s.repo.Create(ctx, &domain.ActivityLog{
			Type:      domain.ActivitySystem,
			User:      actor,
			Action:    "clear_logs",
			Details:   "activity log cleared",
			CreatedAt: s.now(),
		})
	})
	if err != nil {
		zap.L().Error("can't clear activity logs", zap.Error(err))
		return err
	}
	zap.L().Info("activity log cleared", zap.String("by", actor))
	return nil
}

// RecordClient stores a log line sent by a browser. Oversized fields are cut.
func (s *Service) RecordClient(ctx context.Context, user, action, details string) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return domain.ErrInvalidInput
	}
	entry := &domain.ActivityLog{
		Type:      domain.ActivityClient,
		User:      truncate(strings.TrimSpace(user), maxUserLen),
		Action:    truncate(action, maxActionLen),
		Details:   truncate(details, maxDetailsLen),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		zap.L().Error("can't save client log", zap.Error(err))
		return err
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
