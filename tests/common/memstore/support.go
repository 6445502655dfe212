//go:build unit || e2e

package memstore

import (
	"context"
	"sync"

	"find-my-space/internal/usecase/shared"
)

// Publisher records published events.
type Publisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *Publisher) Publish(_ context.Context, e shared.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *Publisher) Events() []shared.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.Event(nil), p.events...)
}

func (p *Publisher) Types() []shared.EventType {
	var out []shared.EventType
	for _, e := range p.Events() {
		out = append(out, e.Type)
	}
	return out
}

// SyncBackground runs jobs inline and keeps their errors.
type SyncBackground struct {
	mu   sync.Mutex
	Errs map[string]error
	Jobs []string
}

func (b *SyncBackground) Go(name string, fn func(ctx context.Context) error) {
	err := fn(context.Background())
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Jobs = append(b.Jobs, name)
	if err != nil {
		if b.Errs == nil {
			b.Errs = map[string]error{}
		}
		b.Errs[name] = err
	}
}
