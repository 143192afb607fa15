package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nttbank/account-service/internal/core/domain"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
)

const eventPublishTimeout = 5 * time.Second

// accountEvents publishes lifecycle events after a change has been persisted.
// Publishing happens on the background runner; failures are logged only.
type accountEvents struct {
	publisher portsevents.Publisher
	tasks     *BackgroundTasks
	now       func() time.Time
}

func (e accountEvents) emit(ctx context.Context, eventType string, account domain.Account) {
	if e.publisher == nil || e.tasks == nil {
		return
	}
	now := time.Now
	if e.now != nil {
		now = e.now
	}
	event := portsevents.AccountEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: now().UTC(),
		Account:    account,
	}
	e.tasks.Go(ctx, "publish "+eventType, eventPublishTimeout, func(ctx context.Context) error {
		if err := e.publisher.Publish(ctx, event); err != nil {
			return fmt.Errorf("publish %s for account %s: %w", eventType, account.AccountID, err)
		}
		return nil
	})
}
