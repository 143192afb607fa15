package events

import (
	"context"
	"encoding/json"
	"fmt"

	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	"github.com/redis/go-redis/v9"
)

// RedisStreamPublisher appends account events to a redis stream.
type RedisStreamPublisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

var _ portsevents.Publisher = (*RedisStreamPublisher)(nil)

// NewRedisStreamPublisher creates a publisher writing to stream. maxLen caps the stream
// approximately; 0 leaves it unbounded.
func NewRedisStreamPublisher(client redis.Cmdable, stream string, maxLen int64) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, event portsevents.AccountEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"type":  event.Type,
			"event": eventJSON,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close is a no-op; the redis client is owned by the caller.
func (p *RedisStreamPublisher) Close() error {
	return nil
}
