//go:build unit

package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bookingEvent(userID, providerID string) shared.Event {
	return shared.Event{
		ID:         uuid.New(),
		Type:       shared.EventBookingCreated,
		SpotID:     uuid.New(),
		UserID:     userID,
		ProviderID: providerID,
		OccurredAt: time.Now(),
	}
}

func TestBroker_Fanout(t *testing.T) {
	b := NewBroker(discard())
	user := b.Subscribe(func(e shared.Event) bool { return e.Concerns("user-1") })
	other := b.Subscribe(func(e shared.Event) bool { return e.Concerns("user-2") })
	defer user.Close()
	defer other.Close()

	e := bookingEvent("user-1", "provider-1")
	b.Publish(context.Background(), e)

	select {
	case got := <-user.C():
		assert.Equal(t, e.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	assert.Empty(t, other.C())

	spotEvt := shared.Event{ID: uuid.New(), Type: shared.EventSpotUpdated, SpotID: uuid.New()}
	b.Publish(context.Background(), spotEvt)
	assert.Len(t, other.C(), 1)
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker(discard())
	s := b.Subscribe(nil)
	defer s.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < defaultBuffer*3; i++ {
			b.Publish(context.Background(), bookingEvent("u", ""))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Len(t, s.C(), defaultBuffer)
}

func TestSubscription_Close(t *testing.T) {
	b := NewBroker(discard())
	s := b.Subscribe(nil)
	require.Equal(t, 1, b.Subscribers())

	s.Close()
	s.Close()

	assert.Equal(t, 0, b.Subscribers())
	_, open := <-s.C()
	assert.False(t, open)

	// publishing after close must not panic
	b.Publish(context.Background(), bookingEvent("u", ""))
}

func TestBroker_CloseDetachesAll(t *testing.T) {
	b := NewBroker(discard())
	s1 := b.Subscribe(nil)
	s2 := b.Subscribe(nil)

	b.Close()
	s1.Close()

	_, open1 := <-s1.C()
	_, open2 := <-s2.C()
	assert.False(t, open1)
	assert.False(t, open2)
}

type recordingChannel struct {
	mu   sync.Mutex
	keys []string
}

func (r *recordingChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, _ amqp.Publishing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return nil
}

func TestAMQPForwarder_RoutesByEventType(t *testing.T) {
	ch := &recordingChannel{}
	f := newAMQPForwarder(ch, "events", discard())
	b := NewBroker(discard(), f)

	b.Publish(context.Background(), bookingEvent("u", ""))
	b.Publish(context.Background(), shared.Event{ID: uuid.New(), Type: shared.EventPayoutReleased})
	require.NoError(t, f.Close())

	assert.Equal(t, []string{"booking.created", "payout.released"}, ch.keys)

	// forwarding after close is ignored
	f.Forward(bookingEvent("u", ""))
}
