package events

import (
	"context"

	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
)

// NoopPublisher discards every event. Used when EVENTS_BACKEND=none.
type NoopPublisher struct{}

var _ portsevents.Publisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, portsevents.AccountEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
