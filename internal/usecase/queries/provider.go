package queries

import (
	"context"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/user"
)

type EarningsView struct {
	ProviderID          string         `json:"provider_id"`
	TotalEarningsPaise  int64          `json:"total_earnings_paise"`
	ReleasedBookings    int            `json:"released_bookings"`
	EscrowPaise         int64          `json:"escrow_paise"`
	StatusCounts        map[string]int `json:"status_counts"`
	PaymentStatusCounts map[string]int `json:"payment_status_counts"`
}

type ProviderQueries interface {
	Earnings(ctx context.Context, actor *user.Identity) (*EarningsView, error)
	Profile(ctx context.Context, actor *user.Identity) (*ProviderProfileView, error)
}

type providerQueriesImpl struct {
	bookings  BookingReadStore
	providers ProviderReadStore
}

func NewProviderQueries(bookings BookingReadStore, providers ProviderReadStore) ProviderQueries {
	return &providerQueriesImpl{bookings: bookings, providers: providers}
}

// Earnings only counts money already released to the provider.
func (q *providerQueriesImpl) Earnings(ctx context.Context, actor *user.Identity) (*EarningsView, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsProvider() {
		return nil, ErrPermissionDenied
	}

	tallies, err := q.bookings.TallyByProvider(ctx, actor.ID())
	if err != nil {
		return nil, err
	}
	return summarize(actor.ID(), tallies), nil
}

func summarize(providerID string, tallies []StatusTally) *EarningsView {
	view := &EarningsView{
		ProviderID:          providerID,
		StatusCounts:        map[string]int{},
		PaymentStatusCounts: map[string]int{},
	}
	for _, t := range tallies {
		view.StatusCounts[t.Status] += t.Count
		view.PaymentStatusCounts[t.PaymentStatus] += t.Count
		switch booking.PaymentStatus(t.PaymentStatus) {
		case booking.PaymentPaidReleased:
			view.TotalEarningsPaise += t.TotalCostPaise
			view.ReleasedBookings += t.Count
		case booking.PaymentPaidEscrow:
			view.EscrowPaise += t.TotalCostPaise
		}
	}
	return view
}

func (q *providerQueriesImpl) Profile(ctx context.Context, actor *user.Identity) (*ProviderProfileView, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	p, err := q.providers.FindByUserID(ctx, actor.ID())
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	return p, nil
}
