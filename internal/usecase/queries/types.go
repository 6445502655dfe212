package queries

import (
	"context"
	"time"

	"find-my-space/internal/domain/booking"

	"github.com/google/uuid"
)

// SpotView represents read-optimized parking spot data
type SpotView struct {
	ID                    uuid.UUID `json:"id"`
	ProviderID            *string   `json:"provider_id,omitempty"`
	ProviderName          string    `json:"provider_name"`
	Location              string    `json:"location"`
	Address               string    `json:"address"`
	Details               string    `json:"details"`
	Latitude              *float64  `json:"lat,omitempty"`
	Longitude             *float64  `json:"lng,omitempty"`
	TotalSlots            int       `json:"total_slots"`
	Available             int       `json:"available"`
	AvailableToday        int       `json:"available_today"`
	PricePerHourPaise     int64     `json:"price_per_hour_paise"`
	IsEvent               bool      `json:"is_event"`
	IsProviderSpot        bool      `json:"is_provider_spot"`
	AdvancePaymentAllowed bool      `json:"advance_payment_allowed"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	SpotID          uuid.UUID  `json:"spot_id"`
	SpotName        string     `json:"spot_name"`
	SpotAddress     string     `json:"spot_address"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	UserEmail       string     `json:"user_email"`
	ProviderID      *string    `json:"provider_id,omitempty"`
	ContactName     string     `json:"contact_name"`
	VehicleNumber   string     `json:"vehicle_number"`
	Phone           string     `json:"phone"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	StartTime24     string     `json:"start_time_24"`
	EndTime24       string     `json:"end_time_24"`
	Hours           float64    `json:"hours"`
	TotalCostPaise  int64      `json:"total_cost_paise"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentMethod   string     `json:"payment_method"`
	CheckInCode     *string    `json:"otp,omitempty"`
	OrderID         *string    `json:"order_id,omitempty"`
	PayoutTriggered bool       `json:"payout_triggered"`
	CheckedInAt     *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingPage struct {
	Items      []*BookingView `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

type ProviderProfileView struct {
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	GovernmentIDLast4  string    `json:"government_id_last4"`
	IDProofURL         string    `json:"id_proof_url"`
	AgreementSigned    bool      `json:"agreement_signed"`
	Location           string    `json:"location"`
	Verified           bool      `json:"verified"`
	HasPayoutDetails   bool      `json:"has_payout_details"`
	PayoutAccountLast4 string    `json:"payout_account_last4,omitempty"`
	PayoutIFSC         string    `json:"payout_ifsc,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StatusTally is one (status, payment status) group of a provider's bookings.
type StatusTally struct {
	Status         string
	PaymentStatus  string
	Count          int
	TotalCostPaise int64
}

type SpotFilter struct {
	Event         *bool
	ProviderSpots *bool
	ProviderID    *string
	OnlyAvailable bool
}

type BookingFilter struct {
	UserID     *string
	ProviderID *string
	Status     *string
	After      *Keyset
	Limit      int
}

type SpotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	List(ctx context.Context, filter SpotFilter) ([]*SpotView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	// OccupancyByDate counts occupying bookings of one spot per date in [from, to].
	OccupancyByDate(ctx context.Context, spotID uuid.UUID, from, to booking.Date, statuses []booking.Status) (map[booking.Date]int, error)
	// OccupancyBySpot counts occupying bookings per spot on one date.
	OccupancyBySpot(ctx context.Context, date booking.Date, statuses []booking.Status) (map[uuid.UUID]int, error)
	TallyByProvider(ctx context.Context, providerID string) ([]StatusTally, error)
}

type ProviderReadStore interface {
	FindByUserID(ctx context.Context, userID string) (*ProviderProfileView, error)
}
