package queries

import (
	"context"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxCalendarDays = 31

type DayAvailabilityView struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
}

type CalendarView struct {
	SpotID uuid.UUID             `json:"spot_id"`
	Days   []DayAvailabilityView `json:"days"`
}

type TodayView struct {
	Date           string `json:"date"`
	Spots          int    `json:"spots"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
}

type AvailabilityQueries interface {
	// Calendar forecasts remaining capacity per day. An empty from means today.
	Calendar(ctx context.Context, spotID uuid.UUID, from string, days int) (*CalendarView, error)
	Today(ctx context.Context) (*TodayView, error)
}

type availabilityQueriesImpl struct {
	spots       SpotReadStore
	bookings    BookingReadStore
	services    *booking.Services
	defaultDays int
}

func NewAvailabilityQueries(spots SpotReadStore, bookings BookingReadStore, services *booking.Services, defaultDays int) AvailabilityQueries {
	if defaultDays <= 0 || defaultDays > MaxCalendarDays {
		defaultDays = 7
	}
	return &availabilityQueriesImpl{
		spots:       spots,
		bookings:    bookings,
		services:    services,
		defaultDays: defaultDays,
	}
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, spotID uuid.UUID, from string, days int) (*CalendarView, error) {
	start := q.today()
	if from != "" {
		d, err := booking.ParseDate(from)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDate)
		}
		start = d
	}
	if days <= 0 {
		days = q.defaultDays
	}
	if days > MaxCalendarDays {
		days = MaxCalendarDays
	}

	s, err := q.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, notFoundAs(err, ErrSpotNotFound)
	}
	counts, err := q.bookings.OccupancyByDate(ctx, spotID, start, start.AddDays(days-1), availability.OccupyingStatuses)
	if err != nil {
		return nil, err
	}

	forecast := availability.Forecast(s.TotalSlots, start, days, counts)
	view := &CalendarView{SpotID: spotID, Days: make([]DayAvailabilityView, len(forecast))}
	for i, d := range forecast {
		view.Days[i] = DayAvailabilityView{
			Date:      d.Date.String(),
			Total:     d.Total,
			Occupied:  d.Occupied,
			Available: d.Available,
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Today(ctx context.Context) (*TodayView, error) {
	today := q.today()
	spots, err := q.spots.List(ctx, SpotFilter{})
	if err != nil {
		return nil, err
	}
	occupied, err := q.bookings.OccupancyBySpot(ctx, today, availability.OccupyingStatuses)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]int, len(spots))
	for _, s := range spots {
		totals[s.ID] = s.TotalSlots
	}
	sum := availability.Aggregate(totals, occupied)
	return &TodayView{
		Date:           today.String(),
		Spots:          sum.Spots,
		TotalSlots:     sum.TotalSlots,
		AvailableSlots: sum.AvailableSlots,
	}, nil
}

func (q *availabilityQueriesImpl) today() booking.Date {
	return booking.DateOf(q.services.Clock.Now().In(q.services.Location))
}
