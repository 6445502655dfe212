package readstore

import (
	"context"
	"log/slog"
	"time"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"
	"find-my-space/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(q db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: q, logger: logger}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b := db.SQL.Select(converter.BookingColumns...).From("bookings").Where(sq.Eq{"id": id})

	var view *queries.BookingView
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		bk, err := converter.ScanBooking(row)
		if err != nil {
			return err
		}
		view = toBookingView(bk)
		return nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find booking", err)
	}
	return view, nil
}

// List pages through bookings newest first using the (created_at, id) keyset.
func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	b := db.SQL.Select(converter.BookingColumns...).From("bookings").
		OrderBy("created_at DESC", "id DESC")
	if filter.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.ProviderID != nil {
		b = b.Where(sq.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.After != nil {
		b = b.Where(sq.Expr("(created_at, id) < (?, ?)", filter.After.CreatedAt, filter.After.ID))
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	views, err := db.Select(ctx, r.db, b, func(row pgx.Row) (*queries.BookingView, error) {
		bk, err := converter.ScanBooking(row)
		if err != nil {
			return nil, err
		}
		return toBookingView(bk), nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to list bookings", err)
	}
	return views, nil
}

func (r *BookingReadStore) OccupancyByDate(ctx context.Context, spotID uuid.UUID, from, to booking.Date, statuses []booking.Status) (map[booking.Date]int, error) {
	b := db.SQL.Select("booking_date", "count(*)").From("bookings").
		Where(sq.Eq{"spot_id": spotID, "status": converter.StatusStrings(statuses)}).
		Where(sq.GtOrEq{"booking_date": from.Time()}).
		Where(sq.LtOrEq{"booking_date": to.Time()}).
		GroupBy("booking_date")

	type dayCount struct {
		date  booking.Date
		count int
	}
	rows, err := db.Select(ctx, r.db, b, func(row pgx.Row) (dayCount, error) {
		var (
			d time.Time
			n int
		)
		if err := row.Scan(&d, &n); err != nil {
			return dayCount{}, err
		}
		return dayCount{date: booking.DateOf(d), count: n}, nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to count occupancy by date", err)
	}

	out := make(map[booking.Date]int, len(rows))
	for _, dc := range rows {
		out[dc.date] = dc.count
	}
	return out, nil
}

func (r *BookingReadStore) OccupancyBySpot(ctx context.Context, date booking.Date, statuses []booking.Status) (map[uuid.UUID]int, error) {
	b := db.SQL.Select("spot_id", "count(*)").From("bookings").
		Where(sq.Eq{"booking_date": date.Time(), "status": converter.StatusStrings(statuses)}).
		GroupBy("spot_id")

	type spotCount struct {
		id    uuid.UUID
		count int
	}
	rows, err := db.Select(ctx, r.db, b, func(row pgx.Row) (spotCount, error) {
		var sc spotCount
		err := row.Scan(&sc.id, &sc.count)
		return sc, err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to count occupancy by spot", err)
	}

	out := make(map[uuid.UUID]int, len(rows))
	for _, sc := range rows {
		out[sc.id] = sc.count
	}
	return out, nil
}

func (r *BookingReadStore) TallyByProvider(ctx context.Context, providerID string) ([]queries.StatusTally, error) {
	b := db.SQL.Select("status", "payment_status", "count(*)", "COALESCE(SUM(total_cost_paise), 0)").
		From("bookings").
		Where(sq.Eq{"provider_id": providerID}).
		GroupBy("status", "payment_status").
		OrderBy("status", "payment_status")

	tallies, err := db.Select(ctx, r.db, b, func(row pgx.Row) (queries.StatusTally, error) {
		var t queries.StatusTally
		err := row.Scan(&t.Status, &t.PaymentStatus, &t.Count, &t.TotalCostPaise)
		return t, err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to tally provider bookings", err)
	}
	return tallies, nil
}

func toBookingView(b *booking.Booking) *queries.BookingView {
	r := b.Record()
	tr := b.TimeRange()
	return &queries.BookingView{
		ID:              r.ID,
		SpotID:          r.SpotID,
		SpotName:        r.SpotName,
		SpotAddress:     r.SpotAddress,
		UserID:          r.UserID,
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
		ProviderID:      r.ProviderID,
		ContactName:     r.ContactName,
		VehicleNumber:   r.VehicleNumber,
		Phone:           r.Phone,
		Date:            r.Date.String(),
		StartTime:       tr.Start().String12(),
		EndTime:         tr.End().String12(),
		StartTime24:     tr.Start().String24(),
		EndTime24:       tr.End().String24(),
		Hours:           tr.Hours(),
		TotalCostPaise:  r.TotalCostPaise,
		Status:          r.Status.String(),
		PaymentStatus:   r.PaymentStatus.String(),
		PaymentMethod:   r.PaymentMethod.String(),
		CheckInCode:     r.CheckInCode,
		OrderID:         r.OrderID,
		PayoutTriggered: r.PayoutTriggered,
		CheckedInAt:     r.CheckedInAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
