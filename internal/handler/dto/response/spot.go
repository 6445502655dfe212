package response

import (
	"time"

	"find-my-space/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
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
	PricePerHour          float64   `json:"price_per_hour"`
	PricePerHourPaise     int64     `json:"price_per_hour_paise"`
	IsEvent               bool      `json:"is_event"`
	IsProviderSpot        bool      `json:"is_provider_spot"`
	AdvancePaymentAllowed bool      `json:"advance_payment_allowed"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type SpotCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromSpotView(v *queries.SpotView) *SpotResponse {
	var r SpotResponse
	_ = copier.Copy(&r, v)
	r.PricePerHour = paiseToRupees(v.PricePerHourPaise)
	return &r
}

func FromSpotViews(vs []*queries.SpotView) []*SpotResponse {
	out := make([]*SpotResponse, len(vs))
	for i, v := range vs {
		out[i] = FromSpotView(v)
	}
	return out
}

func paiseToRupees(p int64) float64 {
	return float64(p) / 100
}
