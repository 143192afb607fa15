package events

import (
	"context"
	"time"

	"github.com/nttbank/account-service/internal/core/domain"
)

// Account lifecycle event types.
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// AccountEvent is published after an account change has been persisted.
type AccountEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Account    domain.Account `json:"account"`
}

// Publisher delivers account events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event AccountEvent) error
	Close() error
}
