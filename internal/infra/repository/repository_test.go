//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/infra"
	"find-my-space/internal/infra/repository"
	"find-my-space/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDBTX records the last statement and replays canned results.
type stubDBTX struct {
	tag     pgconn.CommandTag
	execErr error
	row     pgx.Row

	lastSQL  string
	lastArgs []any
}

func (m *stubDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.lastSQL, m.lastArgs = sql, args
	return m.tag, m.execErr
}

func (m *stubDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.lastSQL, m.lastArgs = sql, args
	return nil, errors.New("stubDBTX.Query is not supported")
}

func (m *stubDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.lastSQL, m.lastArgs = sql, args
	return m.row
}

type stubRow struct {
	err  error
	vals []any
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.vals {
		switch d := dest[i].(type) {
		case *int:
			*d = v.(int)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Spot slot counter
// =============================================================================

func TestSpotRepository_ReserveSlot(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one slot taken", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "error: no free slot is a conflict", tag: pgconn.NewCommandTag("UPDATE 0"), expectKind: infra.KindConflict},
		{name: "error: database failure", execErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubDBTX{tag: tc.tag, execErr: tc.execErr}
			repo := repository.NewSpotRepository(stub, discard())

			err := repo.ReserveSlot(ctx, uuid.New())

			assert.Contains(t, stub.lastSQL, "available = available - 1")
			assert.Contains(t, stub.lastSQL, "available > 0")
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestSpotRepository_ReleaseSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: capped at total slots", func(t *testing.T) {
		stub := &stubDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewSpotRepository(stub, discard())

		require.NoError(t, repo.ReleaseSlot(ctx, uuid.New()))
		assert.Contains(t, stub.lastSQL, "LEAST(available + 1, total_slots)")
	})

	t.Run("error: deleted spot is not found", func(t *testing.T) {
		stub := &stubDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewSpotRepository(stub, discard())

		err := repo.ReleaseSlot(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSpotRepository_Create(t *testing.T) {
	ctx := context.Background()
	s, err := builder.NewSpotBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		stub := &stubDBTX{tag: pgconn.NewCommandTag("INSERT 0 1")}
		repo := repository.NewSpotRepository(stub, discard())

		require.NoError(t, repo.Create(ctx, s))
		assert.True(t, strings.HasPrefix(stub.lastSQL, "INSERT INTO parking_spots"))
		assert.Contains(t, stub.lastArgs, s.ID())
	})

	t.Run("error: duplicate key", func(t *testing.T) {
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		repo := repository.NewSpotRepository(&stubDBTX{execErr: dup}, discard())

		err := repo.Create(ctx, s)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestSpotRepository_FindByIDForUpdate(t *testing.T) {
	stub := &stubDBTX{row: stubRow{err: pgx.ErrNoRows}}
	repo := repository.NewSpotRepository(stub, discard())

	_, err := repo.FindByIDForUpdate(context.Background(), uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, strings.HasSuffix(stub.lastSQL, "FOR UPDATE"))
}

// =============================================================================
// Booking occupancy
// =============================================================================

func TestBookingRepository_CountOccupying(t *testing.T) {
	stub := &stubDBTX{row: stubRow{vals: []any{3}}}
	repo := repository.NewBookingRepository(stub, discard())
	date, err := booking.ParseDate("2025-08-20")
	require.NoError(t, err)

	n, err := repo.CountOccupying(context.Background(), uuid.New(), date, availability.OccupyingStatuses)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, stub.lastSQL, "status IN (")
	for _, s := range availability.OccupyingStatuses {
		assert.Contains(t, stub.lastArgs, s.String())
	}
}

func TestBookingRepository_ExistsOccupyingFrom(t *testing.T) {
	date, err := booking.ParseDate("2025-08-20")
	require.NoError(t, err)

	t.Run("no rows means no upcoming bookings", func(t *testing.T) {
		stub := &stubDBTX{row: stubRow{err: pgx.ErrNoRows}}
		repo := repository.NewBookingRepository(stub, discard())

		exists, err := repo.ExistsOccupyingFrom(context.Background(), uuid.New(), date, availability.OccupyingStatuses)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Contains(t, stub.lastSQL, "booking_date >=")
	})

	t.Run("a row means in use", func(t *testing.T) {
		stub := &stubDBTX{row: stubRow{vals: []any{1}}}
		repo := repository.NewBookingRepository(stub, discard())

		exists, err := repo.ExistsOccupyingFrom(context.Background(), uuid.New(), date, availability.OccupyingStatuses)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	stub := &stubDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}
	repo := repository.NewBookingRepository(stub, discard())

	err = repo.Update(context.Background(), b)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
