//go:build unit || e2e

package memstore

import (
	"context"
	"slices"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/infra"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

// tx runs with the store lock held.
type tx struct {
	store *Store
}

func (t *tx) Spots() shared.SpotRepository         { return spotRepo{t.store} }
func (t *tx) Bookings() shared.BookingRepository   { return bookingRepo{t.store} }
func (t *tx) Payments() shared.PaymentRepository   { return paymentRepo{t.store} }
func (t *tx) Providers() shared.ProviderRepository { return providerRepo{t.store} }

type spotRepo struct{ s *Store }

func (r spotRepo) Create(_ context.Context, sp *spot.Spot) error {
	if _, ok := r.s.state.spots[sp.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "spot exists")
	}
	r.s.state.spots[sp.ID()] = cloneSpot(sp)
	return nil
}

func (r spotRepo) Update(_ context.Context, sp *spot.Spot) error {
	if _, ok := r.s.state.spots[sp.ID()]; !ok {
		return notFound("spot not found")
	}
	r.s.state.spots[sp.ID()] = cloneSpot(sp)
	return nil
}

func (r spotRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.spots[id]; !ok {
		return notFound("spot not found")
	}
	delete(r.s.state.spots, id)
	return nil
}

func (r spotRepo) FindByID(_ context.Context, id uuid.UUID) (*spot.Spot, error) {
	sp, ok := r.s.state.spots[id]
	if !ok {
		return nil, notFound("spot not found")
	}
	return cloneSpot(sp), nil
}

func (r spotRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.FindByID(ctx, id)
}

func (r spotRepo) ReserveSlot(_ context.Context, id uuid.UUID) error {
	sp, ok := r.s.state.spots[id]
	if !ok || sp.Available() <= 0 {
		return infra.NewRepoErr(infra.KindConflict, "no free slot")
	}
	r.s.state.spots[id] = spot.ReconstructSpot(sp.ID(), sp.ProviderID(), sp.ProviderName(), sp.Details(),
		sp.Available()-1, sp.IsProviderSpot(), sp.CreatedAt(), sp.UpdatedAt())
	return nil
}

func (r spotRepo) ReleaseSlot(_ context.Context, id uuid.UUID) error {
	sp, ok := r.s.state.spots[id]
	if !ok {
		return notFound("spot not found")
	}
	r.s.state.spots[id] = spot.ReconstructSpot(sp.ID(), sp.ProviderID(), sp.ProviderName(), sp.Details(),
		min(sp.Available()+1, sp.TotalSlots()), sp.IsProviderSpot(), sp.CreatedAt(), sp.UpdatedAt())
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.state.bookings[b.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking exists")
	}
	r.s.state.bookings[b.ID()] = b.Record()
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.state.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	r.s.state.bookings[b.ID()] = b.Record()
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.bookings[id]; !ok {
		return notFound("booking not found")
	}
	delete(r.s.state.bookings, id)
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	rec, ok := r.s.state.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return booking.Reconstruct(rec), nil
}

func (r bookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) FindByOrderID(_ context.Context, orderID string) (*booking.Booking, error) {
	for _, rec := range r.s.state.bookings {
		if rec.OrderID != nil && *rec.OrderID == orderID {
			return booking.Reconstruct(rec), nil
		}
	}
	return nil, notFound("booking not found")
}

func (r bookingRepo) CountOccupying(_ context.Context, spotID uuid.UUID, date booking.Date, statuses []booking.Status) (int, error) {
	n := 0
	for _, rec := range r.s.state.bookings {
		if rec.SpotID == spotID && rec.Date == date && slices.Contains(statuses, rec.Status) {
			n++
		}
	}
	return n, nil
}

func (r bookingRepo) ExistsOccupyingFrom(_ context.Context, spotID uuid.UUID, from booking.Date, statuses []booking.Status) (bool, error) {
	for _, rec := range r.s.state.bookings {
		if rec.SpotID == spotID && !rec.Date.Before(from) && slices.Contains(statuses, rec.Status) {
			return true, nil
		}
	}
	return false, nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if r.s.FailPaymentWrites {
		return infra.NewRepoErr(infra.KindDBFailure, "payments unavailable")
	}
	r.s.state.payments[p.ID()] = p.Record()
	return nil
}

func (r paymentRepo) Update(_ context.Context, p *payment.Payment) error {
	if r.s.FailPaymentWrites {
		return infra.NewRepoErr(infra.KindDBFailure, "payments unavailable")
	}
	if _, ok := r.s.state.payments[p.ID()]; !ok {
		return notFound("payment not found")
	}
	r.s.state.payments[p.ID()] = p.Record()
	return nil
}

func (r paymentRepo) FindChargeByOrderID(_ context.Context, orderID string) (*payment.Payment, error) {
	for _, rec := range r.s.state.payments {
		if rec.Kind == payment.KindCharge && rec.OrderID != nil && *rec.OrderID == orderID {
			return payment.Reconstruct(rec), nil
		}
	}
	return nil, notFound("charge not found")
}

func (r paymentRepo) FindPayoutByBookingID(_ context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	for _, rec := range r.s.state.payments {
		if rec.Kind == payment.KindPayout && rec.BookingID == bookingID {
			return payment.Reconstruct(rec), nil
		}
	}
	return nil, notFound("payout not found")
}

type providerRepo struct{ s *Store }

func (r providerRepo) Upsert(_ context.Context, p *provider.Profile) error {
	r.s.state.providers[p.UserID()] = p.Record()
	return nil
}

func (r providerRepo) FindByUserID(_ context.Context, userID string) (*provider.Profile, error) {
	rec, ok := r.s.state.providers[userID]
	if !ok {
		return nil, notFound("provider not found")
	}
	return provider.Reconstruct(rec), nil
}
