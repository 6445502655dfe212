package spot

import (
	"errors"
	"strings"
	"time"

	"find-my-space/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrLocationRequired   = errors.New("location is required")
	ErrInvalidTotalSlots  = errors.New("total slots must be at least 1")
	ErrInvalidPrice       = errors.New("price per hour cannot be negative")
	ErrInvalidCoordinates = errors.New("latitude must be within ±90 and longitude within ±180")
	ErrNotSpotOwner       = errors.New("spot belongs to another provider")
)

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func NewGeoPoint(lat, lng float64) (*GeoPoint, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidCoordinates
	}
	return &GeoPoint{Latitude: lat, Longitude: lng}, nil
}

type Details struct {
	Location              string
	Address               string
	Description           string
	Geo                   *GeoPoint
	TotalSlots            int
	PricePerHour          money.Money
	IsEvent               bool
	AdvancePaymentAllowed bool
}

func (d Details) validate() (Details, error) {
	d.Location = strings.TrimSpace(d.Location)
	d.Address = strings.TrimSpace(d.Address)
	d.Description = strings.TrimSpace(d.Description)
	if d.Location == "" {
		return Details{}, ErrLocationRequired
	}
	if d.TotalSlots < 1 {
		return Details{}, ErrInvalidTotalSlots
	}
	if d.Geo != nil {
		if _, err := NewGeoPoint(d.Geo.Latitude, d.Geo.Longitude); err != nil {
			return Details{}, err
		}
	}
	return d, nil
}

// Spot is a parking location. available never exceeds totalSlots.
type Spot struct {
	id             uuid.UUID
	providerID     *string
	providerName   string
	details        Details
	available      int
	isProviderSpot bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProviderSpot(providerID, providerName string, d Details, now time.Time) (*Spot, error) {
	d, err := d.validate()
	if err != nil {
		return nil, err
	}
	return &Spot{
		id:             uuid.New(),
		providerID:     &providerID,
		providerName:   strings.TrimSpace(providerName),
		details:        d,
		available:      d.TotalSlots,
		isProviderSpot: true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSpot(
	id uuid.UUID,
	providerID *string,
	providerName string,
	d Details,
	available int,
	isProviderSpot bool,
	createdAt, updatedAt time.Time,
) *Spot {
	return &Spot{
		id:             id,
		providerID:     providerID,
		providerName:   providerName,
		details:        d,
		available:      available,
		isProviderSpot: isProviderSpot,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Revise replaces the details; a change of capacity shifts available by the same delta.
func (s *Spot) Revise(d Details, now time.Time) error {
	d, err := d.validate()
	if err != nil {
		return err
	}
	delta := d.TotalSlots - s.details.TotalSlots
	s.available = clamp(s.available+delta, 0, d.TotalSlots)
	s.details = d
	s.updatedAt = now
	return nil
}

func (s *Spot) EnsureOwnedBy(providerID string) error {
	if s.providerID == nil || *s.providerID != providerID {
		return ErrNotSpotOwner
	}
	return nil
}

// HasAvailability is the coarse check against the live counter.
func (s *Spot) HasAvailability() bool {
	return s.available > 0
}

func (s *Spot) ID() uuid.UUID             { return s.id }
func (s *Spot) ProviderID() *string       { return s.providerID }
func (s *Spot) ProviderName() string      { return s.providerName }
func (s *Spot) Details() Details          { return s.details }
func (s *Spot) Location() string          { return s.details.Location }
func (s *Spot) Address() string           { return s.details.Address }
func (s *Spot) TotalSlots() int           { return s.details.TotalSlots }
func (s *Spot) Available() int            { return s.available }
func (s *Spot) PricePerHour() money.Money { return s.details.PricePerHour }
func (s *Spot) IsEvent() bool             { return s.details.IsEvent }
func (s *Spot) IsProviderSpot() bool      { return s.isProviderSpot }
func (s *Spot) AdvancePaymentAllowed() bool {
	return s.details.AdvancePaymentAllowed
}
func (s *Spot) CreatedAt() time.Time { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time { return s.updatedAt }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
