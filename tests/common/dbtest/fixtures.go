//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertSpot(t *testing.T, q DBLike, s *spot.Spot) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), q, db.SQL.Insert("parking_spots").SetMap(converter.SpotToRow(s)))
	require.NoError(t, err)
	return s.ID()
}

func InsertBooking(t *testing.T, q DBLike, r booking.Record) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), q, db.SQL.Insert("bookings").SetMap(converter.BookingToRow(booking.Reconstruct(r))))
	require.NoError(t, err)
	return r.ID
}

func SpotAvailable(t *testing.T, q DBLike, id uuid.UUID) int {
	t.Helper()

	var available int
	err := q.QueryRow(context.Background(), "SELECT available FROM parking_spots WHERE id = $1", id).Scan(&available)
	require.NoError(t, err)
	return available
}

// CountBookings counts a spot's bookings, optionally restricted to statuses.
func CountBookings(t *testing.T, q DBLike, spotID uuid.UUID, statuses ...string) int {
	t.Helper()

	b := db.SQL.Select("count(*)").From("bookings").Where(sq.Eq{"spot_id": spotID})
	if len(statuses) > 0 {
		b = b.Where(sq.Eq{"status": statuses})
	}
	query, args, err := b.ToSql()
	require.NoError(t, err)

	var n int
	require.NoError(t, q.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func CountPayments(t *testing.T, q DBLike, bookingID uuid.UUID, kind string) int {
	t.Helper()

	var n int
	err := q.QueryRow(context.Background(),
		"SELECT count(*) FROM payments WHERE booking_id = $1 AND kind = $2", bookingID, kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
