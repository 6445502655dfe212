package request

import (
	"find-my-space/internal/domain/money"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/pkg/patch"
)

type CreateSpotRequest struct {
	Location              string   `json:"location" binding:"required,max=200"`
	Address               string   `json:"address" binding:"max=500"`
	Details               string   `json:"details" binding:"max=2000"`
	Latitude              *float64 `json:"lat,omitempty"`
	Longitude             *float64 `json:"lng,omitempty"`
	TotalSlots            int      `json:"total_slots" binding:"required,min=1"`
	PricePerHour          float64  `json:"price_per_hour" binding:"min=0"`
	IsEvent               bool     `json:"is_event"`
	AdvancePaymentAllowed bool     `json:"advance_payment_allowed"`
}

type UpdateSpotRequest struct {
	Location              *string  `json:"location" binding:"omitempty,max=200"`
	Address               *string  `json:"address" binding:"omitempty,max=500"`
	Details               *string  `json:"details" binding:"omitempty,max=2000"`
	Latitude              *float64 `json:"lat,omitempty"`
	Longitude             *float64 `json:"lng,omitempty"`
	TotalSlots            *int     `json:"total_slots" binding:"omitempty,min=1"`
	PricePerHour          *float64 `json:"price_per_hour" binding:"omitempty,min=0"`
	IsEvent               *bool    `json:"is_event"`
	AdvancePaymentAllowed *bool    `json:"advance_payment_allowed"`
}

type ListSpotsQuery struct {
	Event         *bool `form:"event"`
	ProviderSpots *bool `form:"provider_spots"`
	OnlyAvailable bool  `form:"only_available"`
}

func (r CreateSpotRequest) ToDetails() (spot.Details, error) {
	price, err := money.FromRupees(r.PricePerHour)
	if err != nil {
		return spot.Details{}, spot.ErrInvalidPrice
	}
	geo, err := toGeo(r.Latitude, r.Longitude)
	if err != nil {
		return spot.Details{}, err
	}
	return spot.Details{
		Location:              r.Location,
		Address:               r.Address,
		Description:           r.Details,
		Geo:                   geo,
		TotalSlots:            r.TotalSlots,
		PricePerHour:          price,
		IsEvent:               r.IsEvent,
		AdvancePaymentAllowed: r.AdvancePaymentAllowed,
	}, nil
}

// Apply overlays the patch on the current details.
func (r UpdateSpotRequest) Apply(existing spot.Details) (spot.Details, error) {
	d := existing
	d.Location = patch.Coalesce(r.Location, existing.Location)
	d.Address = patch.Coalesce(r.Address, existing.Address)
	d.Description = patch.Coalesce(r.Details, existing.Description)
	d.TotalSlots = patch.Coalesce(r.TotalSlots, existing.TotalSlots)
	d.IsEvent = patch.Coalesce(r.IsEvent, existing.IsEvent)
	d.AdvancePaymentAllowed = patch.Coalesce(r.AdvancePaymentAllowed, existing.AdvancePaymentAllowed)

	if r.PricePerHour != nil {
		price, err := money.FromRupees(*r.PricePerHour)
		if err != nil {
			return spot.Details{}, spot.ErrInvalidPrice
		}
		d.PricePerHour = price
	}

	if r.Latitude != nil || r.Longitude != nil {
		var lat, lng *float64
		if existing.Geo != nil {
			lat, lng = &existing.Geo.Latitude, &existing.Geo.Longitude
		}
		geo, err := toGeo(patch.CoalescePtr(r.Latitude, lat), patch.CoalescePtr(r.Longitude, lng))
		if err != nil {
			return spot.Details{}, err
		}
		d.Geo = geo
	}
	return d, nil
}

func toGeo(lat, lng *float64) (*spot.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	return spot.NewGeoPoint(*lat, *lng)
}
