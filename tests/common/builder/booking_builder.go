//go:build unit || e2e

package builder

import (
	"time"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/money"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/pkg/clock"
	"find-my-space/internal/usecase/queries"

	"github.com/google/uuid"
)

// IST is a fixed zone so tests do not depend on the host zone database.
var IST = time.FixedZone("IST", 5*60*60+30*60)

type BookingBuilder struct {
	SpotID            uuid.UUID
	ProviderID        *string
	SpotName          string
	SpotAddress       string
	PricePerHourPaise int64
	AdvancePayment    bool
	UserID            string
	UserName          string
	UserEmail         string
	Date              string
	StartTime         string
	EndTime           string
	Method            string
	ContactName       string
	Vehicle           string
	Phone             string
	Now               time.Time
}

func NewBookingBuilder() *BookingBuilder {
	providerID := "provider-1"
	return &BookingBuilder{
		SpotID:            uuid.New(),
		ProviderID:        &providerID,
		SpotName:          "MG Road Lot",
		SpotAddress:       "12 MG Road, Bengaluru",
		PricePerHourPaise: 5000,
		UserID:            "user-1",
		UserName:          "Asha",
		UserEmail:         "asha@example.com",
		Date:              "2025-08-20",
		StartTime:         "10:00 AM",
		EndTime:           "01:00 PM",
		Method:            "cash",
		ContactName:       "Asha",
		Vehicle:           "KA01AB1234",
		Phone:             "9876543210",
		Now:               time.Date(2025, 8, 19, 9, 0, 0, 0, IST),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:          clock.NewMockClock(b.Now),
		CostCalculator: booking.NewHourlyCostCalculator(),
		Location:       IST,
	}
}

func (b *BookingBuilder) SpotTerms() booking.SpotTerms {
	price, _ := money.FromPaise(b.PricePerHourPaise)
	return booking.SpotTerms{
		ID:                    b.SpotID,
		ProviderID:            b.ProviderID,
		Name:                  b.SpotName,
		Address:               b.SpotAddress,
		PricePerHour:          price,
		AdvancePaymentAllowed: b.AdvancePayment,
		IsProviderSpot:        b.ProviderID != nil,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	tr, err := booking.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	method, err := booking.NewPaymentMethod(b.Method)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContact(b.ContactName, b.Vehicle, b.Phone)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(
		b.Services(),
		b.SpotTerms(),
		booking.Requester{ID: b.UserID, Name: b.UserName, Email: b.UserEmail},
		date, tr, method, contact,
	)
}

// BuildRecord returns a persisted booking in the given state.
func (b *BookingBuilder) BuildRecord(status booking.Status, payment booking.PaymentStatus) booking.Record {
	date, _ := booking.ParseDate(b.Date)
	tr, _ := booking.ParseTimeRange(b.StartTime, b.EndTime)
	code := "482913"
	return booking.Record{
		ID:             uuid.New(),
		SpotID:         b.SpotID,
		UserID:         b.UserID,
		ProviderID:     b.ProviderID,
		SpotName:       b.SpotName,
		SpotAddress:    b.SpotAddress,
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		ContactName:    b.ContactName,
		VehicleNumber:  b.Vehicle,
		Phone:          b.Phone,
		Date:           date,
		StartMinute:    tr.Start().Minute(),
		EndMinute:      tr.End().Minute(),
		TotalCostPaise: b.PricePerHourPaise * int64(tr.Minutes()) / 60,
		Status:         status,
		PaymentStatus:  payment,
		PaymentMethod:  booking.PaymentMethod(b.Method),
		CheckInCode:    &code,
		SlotHeld:       true,
		IsProviderSpot: b.ProviderID != nil,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpotID:        b.SpotID.String(),
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		PaymentMethod: b.Method,
		Name:          b.ContactName,
		Vehicle:       b.Vehicle,
		Phone:         b.Phone,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	tr, _ := booking.ParseTimeRange(b.StartTime, b.EndTime)
	code := "482913"
	return &queries.BookingView{
		ID:             uuid.New(),
		SpotID:         b.SpotID,
		SpotName:       b.SpotName,
		SpotAddress:    b.SpotAddress,
		UserID:         b.UserID,
		UserName:       b.UserName,
		ProviderID:     b.ProviderID,
		ContactName:    b.ContactName,
		VehicleNumber:  b.Vehicle,
		Phone:          b.Phone,
		Date:           b.Date,
		StartTime:      tr.Start().String12(),
		EndTime:        tr.End().String12(),
		StartTime24:    tr.Start().String24(),
		EndTime24:      tr.End().String24(),
		Hours:          tr.Hours(),
		TotalCostPaise: b.PricePerHourPaise * int64(tr.Minutes()) / 60,
		Status:         "confirmed",
		PaymentStatus:  "pending",
		PaymentMethod:  b.Method,
		CheckInCode:    &code,
		CreatedAt:      b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithMethod(method string) *BookingBuilder {
	b.Method = method
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithPricePerHourPaise(p int64) *BookingBuilder {
	b.PricePerHourPaise = p
	return b
}

func (b *BookingBuilder) WithAdvancePayment() *BookingBuilder {
	b.AdvancePayment = true
	return b
}

func (b *BookingBuilder) WithoutProvider() *BookingBuilder {
	b.ProviderID = nil
	return b
}
