package events

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
}

// ActivitySink writes every event into the admin activity log.
type ActivitySink struct {
	repo ActivityRepo
}

func NewActivitySink(repo ActivityRepo) *ActivitySink {
	return &ActivitySink{repo: repo}
}

func (s *ActivitySink) Name() string { return "activity" }

func (s *ActivitySink) Deliver(ctx context.Context, event Event) error {
	return s.repo.Create(ctx, &domain.ActivityLog{
		Type:      activityType(event.Type),
		User:      event.User,
		Action:    string(event.Type),
		Details:   details(event),
		CreatedAt: event.OccurredAt,
	})
}

func activityType(t Type) domain.ActivityType {
	switch t {
	case TypeAccountRegistered:
		return domain.ActivityRegister
	case TypeAccountLoggedIn:
		return domain.ActivityLogin
	case TypeTransactionCreated, TypeTransactionApproved, TypeTransactionRejected, TypeBonusSettled:
		return domain.ActivityTransaction
	case TypePurchaseCompleted:
		return domain.ActivityPurchase
	default:
		return domain.ActivityAdmin
	}
}

// details renders the transaction and the attributes in a stable order.
func details(event Event) string {
	parts := make([]string, 0, len(event.Attributes)+4)
	if tx := event.Transaction; tx != nil {
		parts = append(parts,
			fmt.Sprintf("id=%d", tx.ID),
			"type="+string(tx.Type),
			"amount="+tx.Amount.String(),
			"status="+string(tx.Status),
		)
	}
	keys := make([]string, 0, len(event.Attributes))
	for k := range event.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+event.Attributes[k])
	}
	return strings.Join(parts, ", ")
}
