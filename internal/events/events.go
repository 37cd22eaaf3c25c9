// Package events carries ledger events out of the engine after a unit of work commits.
// Delivery is best effort and asynchronous; nothing in the engine waits for it.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type Type string

const (
	TypeTransactionCreated   Type = "transaction.created"
	TypeTransactionApproved  Type = "transaction.approved"
	TypeTransactionRejected  Type = "transaction.rejected"
	TypeBonusSettled         Type = "bonus.settled"
	TypeAccountStatusChanged Type = "account.status_changed"
	TypePurchaseCompleted    Type = "purchase.completed"
	TypeRigUpdated           Type = "rig.updated"
	TypeAccountRegistered    Type = "account.registered"
	TypeAccountCreated       Type = "account.created"
	TypeAccountLoggedIn      Type = "account.logged_in"
	TypeAccountDeleted       Type = "account.deleted"
	TypePasswordReset        Type = "account.password_reset"
	TypeSettingsUpdated      Type = "settings.updated"
)

type Event struct {
	ID          string                  `json:"id"`
	Type        Type                    `json:"type"`
	User        string                  `json:"user"`
	Message     string                  `json:"message,omitempty"`
	Kind        domain.NotificationKind `json:"kind,omitempty"`
	Transaction *domain.Transaction     `json:"transaction,omitempty"`
	Attributes  map[string]string       `json:"attributes,omitempty"`
	OccurredAt  time.Time               `json:"occurred_at"`
}

func New(t Type, user string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		User:       user,
		OccurredAt: time.Now().UTC(),
	}
}

// Notify attaches a user-facing message; events with a message become notifications.
func (e Event) Notify(kind domain.NotificationKind, message string) Event {
	e.Kind = kind
	e.Message = message
	return e
}

func (e Event) WithTransaction(tx *domain.Transaction) Event {
	if tx != nil {
		c := *tx
		e.Transaction = &c
	}
	return e
}

func (e Event) With(key, value string) Event {
	attrs := make(map[string]string, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attributes = attrs
	return e
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) {}
