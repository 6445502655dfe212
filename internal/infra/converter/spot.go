package converter

import (
	"time"

	"find-my-space/internal/domain/money"
	"find-my-space/internal/domain/spot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var SpotColumns = []string{
	"id", "provider_id", "provider_name", "location", "address", "details", "latitude", "longitude",
	"total_slots", "available", "price_per_hour_paise", "is_event", "is_provider_spot",
	"advance_payment_allowed", "created_at", "updated_at",
}

func SpotToRow(s *spot.Spot) map[string]any {
	d := s.Details()
	var lat, lng *float64
	if d.Geo != nil {
		lat, lng = &d.Geo.Latitude, &d.Geo.Longitude
	}
	return map[string]any{
		"id":                      s.ID(),
		"provider_id":             s.ProviderID(),
		"provider_name":           s.ProviderName(),
		"location":                d.Location,
		"address":                 d.Address,
		"details":                 d.Description,
		"latitude":                lat,
		"longitude":               lng,
		"total_slots":             d.TotalSlots,
		"available":               s.Available(),
		"price_per_hour_paise":    d.PricePerHour.Paise(),
		"is_event":                d.IsEvent,
		"is_provider_spot":        s.IsProviderSpot(),
		"advance_payment_allowed": d.AdvancePaymentAllowed,
		"created_at":              s.CreatedAt(),
		"updated_at":              s.UpdatedAt(),
	}
}

// ScanSpot reads a row selected with SpotColumns.
func ScanSpot(row pgx.Row) (*spot.Spot, error) {
	var (
		id                   uuid.UUID
		providerID           *string
		providerName         string
		d                    spot.Details
		lat, lng             *float64
		available            int
		pricePaise           int64
		isProviderSpot       bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &providerID, &providerName, &d.Location, &d.Address, &d.Description, &lat, &lng,
		&d.TotalSlots, &available, &pricePaise, &d.IsEvent, &isProviderSpot,
		&d.AdvancePaymentAllowed, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := money.FromPaise(pricePaise)
	if err != nil {
		return nil, err
	}
	d.PricePerHour = price
	if lat != nil && lng != nil {
		d.Geo = &spot.GeoPoint{Latitude: *lat, Longitude: *lng}
	}
	return spot.ReconstructSpot(id, providerID, providerName, d, available, isProviderSpot, createdAt, updatedAt), nil
}
