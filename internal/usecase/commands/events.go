package commands

import (
	"time"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

func bookingEvent(t shared.EventType, b *booking.Booking, now time.Time) shared.Event {
	id := b.ID()
	e := shared.Event{
		ID:        uuid.New(),
		Type:      t,
		SpotID:    b.SpotID(),
		BookingID: &id,
		UserID:    b.UserID(),
		Data: map[string]any{
			"status":         b.Status().String(),
			"payment_status": b.PaymentStatus().String(),
			"date":           b.Date().String(),
		},
		OccurredAt: now,
	}
	if b.ProviderID() != nil {
		e.ProviderID = *b.ProviderID()
	}
	return e
}

func spotEvent(t shared.EventType, s *spot.Spot, now time.Time) shared.Event {
	e := shared.Event{
		ID:     uuid.New(),
		Type:   t,
		SpotID: s.ID(),
		Data: map[string]any{
			"available":   s.Available(),
			"total_slots": s.TotalSlots(),
		},
		OccurredAt: now,
	}
	if s.ProviderID() != nil {
		e.ProviderID = *s.ProviderID()
	}
	return e
}
