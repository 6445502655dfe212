package repository

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/infra"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingsTable = "bookings"

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(q db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: q, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := db.Exec(ctx, r.db, db.SQL.Insert(bookingsTable).SetMap(converter.BookingToRow(b)))
	if err != nil {
		return db.Wrap(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	delete(row, "id")
	delete(row, "created_at")

	n, err := db.Exec(ctx, r.db, db.SQL.Update(bookingsTable).SetMap(row).Where(sq.Eq{"id": b.ID()}))
	if err != nil {
		return db.Wrap(r.logger, "failed to update booking", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := db.Exec(ctx, r.db, db.SQL.Delete(bookingsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return db.Wrap(r.logger, "failed to delete booking", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, "")
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, "FOR UPDATE")
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	return r.findOne(ctx, sq.Eq{"order_id": orderID}, "FOR UPDATE")
}

func (r *BookingRepository) findOne(ctx context.Context, where sq.Eq, suffix string) (*booking.Booking, error) {
	b := db.SQL.Select(converter.BookingColumns...).From(bookingsTable).Where(where)
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	var out *booking.Booking
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		var err error
		out, err = converter.ScanBooking(row)
		return err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find booking", err)
	}
	return out, nil
}

func (r *BookingRepository) CountOccupying(ctx context.Context, spotID uuid.UUID, date booking.Date, statuses []booking.Status) (int, error) {
	b := db.SQL.Select("count(*)").From(bookingsTable).Where(sq.Eq{
		"spot_id":      spotID,
		"booking_date": date.Time(),
		"status":       converter.StatusStrings(statuses),
	})

	var n int
	if err := db.Get(ctx, r.db, b, func(row pgx.Row) error { return row.Scan(&n) }); err != nil {
		return 0, db.Wrap(r.logger, "failed to count bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) ExistsOccupyingFrom(ctx context.Context, spotID uuid.UUID, from booking.Date, statuses []booking.Status) (bool, error) {
	b := db.SQL.Select("1").From(bookingsTable).
		Where(sq.Eq{"spot_id": spotID, "status": converter.StatusStrings(statuses)}).
		Where(sq.GtOrEq{"booking_date": from.Time()}).
		Limit(1)

	var one int
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error { return row.Scan(&one) })
	if db.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, db.Wrap(r.logger, "failed to check bookings", err)
	}
	return true, nil
}
