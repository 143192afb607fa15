package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nttbank/account-service/internal/core/domain"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "accounts"}
	event := portsevents.AccountEvent{
		ID:         "evt-1",
		Type:       portsevents.AccountCreated,
		OccurredAt: time.Now().UTC(),
		Account:    domain.Account{AccountID: "acc-1", AccountType: domain.Savings},
	}

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, []byte("acc-1"), msg.Key)
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte(portsevents.AccountCreated)})

	var decoded portsevents.AccountEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "acc-1", decoded.Account.AccountID)
	assert.Equal(t, portsevents.AccountCreated, decoded.Type)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, topic: "accounts"}

	err := p.Publish(context.Background(), portsevents.AccountEvent{Type: portsevents.AccountDeleted})

	assert.ErrorContains(t, err, "kafka publish to accounts")
}
