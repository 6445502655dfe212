package events

import (
	"context"
	"log/slog"
	"sync"

	"find-my-space/internal/usecase/shared"
)

const defaultBuffer = 32

// Forwarder receives every published event after local fan-out. Forward must not block.
type Forwarder interface {
	Forward(e shared.Event)
}

// Broker fans events out to live subscriptions. A slow subscriber loses events instead of
// holding up the publisher.
type Broker struct {
	mu         sync.RWMutex
	subs       map[*Subscription]struct{}
	forwarders []Forwarder
	buffer     int
	logger     *slog.Logger
}

func NewBroker(logger *slog.Logger, forwarders ...Forwarder) *Broker {
	return &Broker{
		subs:       make(map[*Subscription]struct{}),
		forwarders: forwarders,
		buffer:     defaultBuffer,
		logger:     logger,
	}
}

// Subscribe registers a subscription receiving the events accepted by filter; nil accepts all.
func (b *Broker) Subscribe(filter func(shared.Event) bool) *Subscription {
	s := &Subscription{
		ch:     make(chan shared.Event, b.buffer),
		filter: filter,
		broker: b,
	}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}

func (b *Broker) Publish(_ context.Context, e shared.Event) {
	b.mu.RLock()
	for s := range b.subs {
		if s.filter != nil && !s.filter(e) {
			continue
		}
		select {
		case s.ch <- e:
		default:
			b.logger.Warn("dropping event for slow subscriber", "type", e.Type.String(), "event_id", e.ID.String())
		}
	}
	b.mu.RUnlock()

	for _, f := range b.forwarders {
		f.Forward(e)
	}
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close detaches every subscription, closing their channels.
func (b *Broker) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[*Subscription]struct{})
	b.mu.Unlock()

	for s := range subs {
		s.closeChannel()
	}
}

func (b *Broker) remove(s *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[s]; !ok {
		return false
	}
	delete(b.subs, s)
	return true
}

type Subscription struct {
	ch     chan shared.Event
	filter func(shared.Event) bool
	broker *Broker
	once   sync.Once
}

// C is closed once the subscription is closed.
func (s *Subscription) C() <-chan shared.Event {
	return s.ch
}

// Close is safe to call more than once.
func (s *Subscription) Close() {
	s.broker.remove(s)
	s.closeChannel()
}

func (s *Subscription) closeChannel() {
	s.once.Do(func() { close(s.ch) })
}
