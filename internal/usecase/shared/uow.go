package shared

import (
	"context"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/spot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Spots() SpotRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Providers() ProviderRepository
}

type SpotRepository interface {
	Create(ctx context.Context, s *spot.Spot) error
	Update(ctx context.Context, s *spot.Spot) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	// FindByIDForUpdate locks the spot row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	// ReserveSlot decrements available only while it is positive; otherwise KindConflict.
	ReserveSlot(ctx context.Context, id uuid.UUID) error
	// ReleaseSlot increments available, capped at total slots.
	ReleaseSlot(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
	CountOccupying(ctx context.Context, spotID uuid.UUID, date booking.Date, statuses []booking.Status) (int, error)
	// ExistsOccupyingFrom reports occupying bookings of the spot on or after from.
	ExistsOccupyingFrom(ctx context.Context, spotID uuid.UUID, from booking.Date, statuses []booking.Status) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	Update(ctx context.Context, p *payment.Payment) error
	FindChargeByOrderID(ctx context.Context, orderID string) (*payment.Payment, error)
	FindPayoutByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
}

type ProviderRepository interface {
	Upsert(ctx context.Context, p *provider.Profile) error
	FindByUserID(ctx context.Context, userID string) (*provider.Profile, error)
}
