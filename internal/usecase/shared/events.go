package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
	EventBookingVacated   EventType = "booking.vacated"
	EventBookingDeleted   EventType = "booking.deleted"
	EventBookingCheckedIn EventType = "booking.checked_in"
	EventPaymentConfirmed EventType = "payment.confirmed"
	EventPayoutReleased   EventType = "payout.released"
	EventSpotCreated      EventType = "spot.created"
	EventSpotUpdated      EventType = "spot.updated"
	EventSpotDeleted      EventType = "spot.deleted"
)

func (t EventType) String() string {
	return string(t)
}

// IsSpotEvent reports events every subscriber receives.
func (t EventType) IsSpotEvent() bool {
	switch t {
	case EventSpotCreated, EventSpotUpdated, EventSpotDeleted:
		return true
	default:
		return false
	}
}

type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	SpotID     uuid.UUID      `json:"spot_id"`
	BookingID  *uuid.UUID     `json:"booking_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	ProviderID string         `json:"provider_id,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Concerns reports whether the event is about the given user, as booker or provider.
func (e Event) Concerns(userID string) bool {
	if e.Type.IsSpotEvent() {
		return true
	}
	return userID != "" && (e.UserID == userID || e.ProviderID == userID)
}

// EventPublisher never blocks the caller and never fails it.
type EventPublisher interface {
	Publish(ctx context.Context, e Event)
}
