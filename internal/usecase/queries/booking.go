package queries

import (
	"context"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/user"
	"find-my-space/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListParams struct {
	Status string
	After  string
	Limit  int
}

type BookingQueries interface {
	// GetBooking is open to the booking's owner and its provider.
	GetBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, actor *user.Identity, params ListParams) (*BookingPage, error)
	ListProviderBookings(ctx context.Context, actor *user.Identity, params ListParams) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) (*BookingView, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}

	switch {
	case v.UserID == actor.ID():
		return v, nil
	case actor.IsProvider() && v.ProviderID != nil && *v.ProviderID == actor.ID():
		return redactForProvider(v), nil
	default:
		return nil, ErrPermissionDenied
	}
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, actor *user.Identity, params ListParams) (*BookingPage, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	id := actor.ID()
	filter, err := buildFilter(params)
	if err != nil {
		return nil, err
	}
	filter.UserID = &id
	return q.page(ctx, filter, nil)
}

func (q *bookingQueriesImpl) ListProviderBookings(ctx context.Context, actor *user.Identity, params ListParams) (*BookingPage, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsProvider() {
		return nil, ErrPermissionDenied
	}
	id := actor.ID()
	filter, err := buildFilter(params)
	if err != nil {
		return nil, err
	}
	filter.ProviderID = &id
	return q.page(ctx, filter, redactForProvider)
}

// page fetches one extra row to tell whether a next page exists.
func (q *bookingQueriesImpl) page(ctx context.Context, filter BookingFilter, mapItem func(*BookingView) *BookingView) (*BookingPage, error) {
	limit := filter.Limit
	filter.Limit = limit + 1

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &BookingPage{Items: rows}
	if len(rows) > limit {
		result.Items = rows[:limit]
		last := result.Items[limit-1]
		result.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	if mapItem != nil {
		for i, v := range result.Items {
			result.Items[i] = mapItem(v)
		}
	}
	return result, nil
}

func buildFilter(params ListParams) (BookingFilter, error) {
	filter := BookingFilter{Limit: ValidateLimit(params.Limit)}
	if params.Status != "" {
		if !booking.Status(params.Status).IsValid() {
			return BookingFilter{}, errs.Mark(errs.New("unknown status "+params.Status), ErrInvalidStatus)
		}
		status := params.Status
		filter.Status = &status
	}
	after, err := DecodeAfterCursor(params.After)
	if err != nil {
		return BookingFilter{}, errs.Mark(err, ErrInvalidCursor)
	}
	filter.After = after
	return filter, nil
}

// redactForProvider hides the check-in code; the provider has to get it from the user.
func redactForProvider(v *BookingView) *BookingView {
	cp := *v
	cp.CheckInCode = nil
	return &cp
}
