//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for use-case tests. Transactions
// are serialized and roll back on error, which stands in for row locks.
package memstore

import (
	"context"
	"maps"
	"sync"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/infra"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	spots     map[uuid.UUID]*spot.Spot
	bookings  map[uuid.UUID]booking.Record
	payments  map[uuid.UUID]payment.Record
	providers map[string]provider.Record
}

func (s state) clone() state {
	return state{
		spots:     maps.Clone(s.spots),
		bookings:  maps.Clone(s.bookings),
		payments:  maps.Clone(s.payments),
		providers: maps.Clone(s.providers),
	}
}

type Store struct {
	mu    sync.Mutex
	state state

	// FailPaymentWrites makes every payment insert and update fail.
	FailPaymentWrites bool
	// Commits counts successful transactions.
	Commits int
}

func New() *Store {
	return &Store{state: state{
		spots:     map[uuid.UUID]*spot.Spot{},
		bookings:  map[uuid.UUID]booking.Record{},
		payments:  map[uuid.UUID]payment.Record{},
		providers: map[string]provider.Record{},
	}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(ctx, &tx{store: s}); err != nil {
		s.state = snapshot
		return err
	}
	s.Commits++
	return nil
}

// Seeding and inspection helpers bypass transactions.

func (s *Store) PutSpot(sp *spot.Spot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.spots[sp.ID()] = cloneSpot(sp)
}

func (s *Store) PutBooking(r booking.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[r.ID] = r
}

func (s *Store) PutProvider(p *provider.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.providers[p.UserID()] = p.Record()
}

func (s *Store) Spot(id uuid.UUID) (*spot.Spot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.state.spots[id]
	if !ok {
		return nil, false
	}
	return cloneSpot(sp), true
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.bookings[id]
	if !ok {
		return nil, false
	}
	return booking.Reconstruct(r), true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.state.bookings))
	for _, r := range s.state.bookings {
		out = append(out, booking.Reconstruct(r))
	}
	return out
}

func (s *Store) Payments(bookingID uuid.UUID) []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*payment.Payment
	for _, r := range s.state.payments {
		if r.BookingID == bookingID {
			out = append(out, payment.Reconstruct(r))
		}
	}
	return out
}

func (s *Store) Provider(userID string) (*provider.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.providers[userID]
	if !ok {
		return nil, false
	}
	return provider.Reconstruct(r), true
}

func cloneSpot(sp *spot.Spot) *spot.Spot {
	return spot.ReconstructSpot(sp.ID(), sp.ProviderID(), sp.ProviderName(), sp.Details(),
		sp.Available(), sp.IsProviderSpot(), sp.CreatedAt(), sp.UpdatedAt())
}

func notFound(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, msg)
}
