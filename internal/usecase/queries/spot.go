package queries

import (
	"context"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/user"

	"github.com/google/uuid"
)

type SpotQueries interface {
	GetSpot(ctx context.Context, id uuid.UUID) (*SpotView, error)
	ListSpots(ctx context.Context, filter SpotFilter) ([]*SpotView, error)
	ListProviderSpots(ctx context.Context, actor *user.Identity) ([]*SpotView, error)
}

type spotQueriesImpl struct {
	spots    SpotReadStore
	bookings BookingReadStore
	services *booking.Services
}

func NewSpotQueries(spots SpotReadStore, bookings BookingReadStore, services *booking.Services) SpotQueries {
	return &spotQueriesImpl{spots: spots, bookings: bookings, services: services}
}

func (q *spotQueriesImpl) GetSpot(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	s, err := q.spots.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrSpotNotFound)
	}
	if err := q.fillToday(ctx, []*SpotView{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSpots reports today's remaining capacity on every item. OnlyAvailable
// filters on that figure rather than the live counter.
func (q *spotQueriesImpl) ListSpots(ctx context.Context, filter SpotFilter) ([]*SpotView, error) {
	onlyAvailable := filter.OnlyAvailable
	filter.OnlyAvailable = false

	spots, err := q.spots.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := q.fillToday(ctx, spots); err != nil {
		return nil, err
	}
	if !onlyAvailable {
		return spots, nil
	}

	out := make([]*SpotView, 0, len(spots))
	for _, s := range spots {
		if s.AvailableToday > 0 && s.Available > 0 {
			out = append(out, s)
		}
	}
	return out, nil
}

func (q *spotQueriesImpl) ListProviderSpots(ctx context.Context, actor *user.Identity) ([]*SpotView, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsProvider() {
		return nil, ErrPermissionDenied
	}
	id := actor.ID()
	return q.ListSpots(ctx, SpotFilter{ProviderID: &id})
}

func (q *spotQueriesImpl) fillToday(ctx context.Context, spots []*SpotView) error {
	if len(spots) == 0 {
		return nil
	}
	today := booking.DateOf(q.services.Clock.Now().In(q.services.Location))
	occupied, err := q.bookings.OccupancyBySpot(ctx, today, availability.OccupyingStatuses)
	if err != nil {
		return err
	}
	for _, s := range spots {
		s.AvailableToday = availability.Remaining(s.TotalSlots, occupied[s.ID])
	}
	return nil
}
