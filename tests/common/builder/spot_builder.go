//go:build unit || e2e

package builder

import (
	"time"

	"find-my-space/internal/domain/money"
	"find-my-space/internal/domain/spot"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	ProviderID        string
	ProviderName      string
	Location          string
	Address           string
	Description       string
	TotalSlots        int
	PricePerHourPaise int64
	IsEvent           bool
	AdvancePayment    bool
	Now               time.Time
}

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		ProviderID:        "provider-1",
		ProviderName:      "Ravi",
		Location:          "MG Road Lot",
		Address:           "12 MG Road, Bengaluru",
		Description:       "Covered, 24x7 security",
		TotalSlots:        10,
		PricePerHourPaise: 5000,
		Now:               time.Date(2025, 8, 19, 9, 0, 0, 0, IST),
	}
}

func (s *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(s)
	return s
}

func (s *SpotBuilder) Details() spot.Details {
	price, _ := money.FromPaise(s.PricePerHourPaise)
	return spot.Details{
		Location:              s.Location,
		Address:               s.Address,
		Description:           s.Description,
		TotalSlots:            s.TotalSlots,
		PricePerHour:          price,
		IsEvent:               s.IsEvent,
		AdvancePaymentAllowed: s.AdvancePayment,
	}
}

func (s *SpotBuilder) BuildDomain() (*spot.Spot, error) {
	return spot.NewProviderSpot(s.ProviderID, s.ProviderName, s.Details(), s.Now)
}

// BuildWithAvailable reconstructs a persisted spot with a given live counter.
func (s *SpotBuilder) BuildWithAvailable(available int) *spot.Spot {
	providerID := s.ProviderID
	return spot.ReconstructSpot(uuid.New(), &providerID, s.ProviderName, s.Details(), available, true, s.Now, s.Now)
}

func (s *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	return reqdto.CreateSpotRequest{
		Location:              s.Location,
		Address:               s.Address,
		Details:               s.Description,
		TotalSlots:            s.TotalSlots,
		PricePerHour:          float64(s.PricePerHourPaise) / 100,
		IsEvent:               s.IsEvent,
		AdvancePaymentAllowed: s.AdvancePayment,
	}
}

func (s *SpotBuilder) BuildView() *queries.SpotView {
	providerID := s.ProviderID
	return &queries.SpotView{
		ID:                    uuid.New(),
		ProviderID:            &providerID,
		ProviderName:          s.ProviderName,
		Location:              s.Location,
		Address:               s.Address,
		Details:               s.Description,
		TotalSlots:            s.TotalSlots,
		Available:             s.TotalSlots,
		AvailableToday:        s.TotalSlots,
		PricePerHourPaise:     s.PricePerHourPaise,
		IsEvent:               s.IsEvent,
		IsProviderSpot:        true,
		AdvancePaymentAllowed: s.AdvancePayment,
		CreatedAt:             s.Now,
	}
}

func (s *SpotBuilder) WithTotalSlots(n int) *SpotBuilder {
	s.TotalSlots = n
	return s
}

func (s *SpotBuilder) WithPricePerHourPaise(p int64) *SpotBuilder {
	s.PricePerHourPaise = p
	return s
}

func (s *SpotBuilder) WithAdvancePayment() *SpotBuilder {
	s.AdvancePayment = true
	return s
}
