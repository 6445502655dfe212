//go:build unit

package queries_test

import (
	"context"
	"testing"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/queries"
	"find-my-space/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpotQueries_ListSpots(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*stores, *queries.SpotView, *queries.SpotView) {
		s := newStores(t)
		open := builder.NewSpotBuilder().WithTotalSlots(4).BuildView()
		full := builder.NewSpotBuilder().WithTotalSlots(2).BuildView()
		s.spots.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f queries.SpotFilter) ([]*queries.SpotView, error) {
			assert.False(t, f.OnlyAvailable, "the store must not filter on the live counter")
			return []*queries.SpotView{open, full}, nil
		})
		s.bookings.EXPECT().
			OccupancyBySpot(ctx, mustDate(t, "2025-08-19"), availability.OccupyingStatuses).
			Return(map[uuid.UUID]int{open.ID: 1, full.ID: 2}, nil)
		return s, open, full
	}

	t.Run("success: today's capacity filled in", func(t *testing.T) {
		s, open, full := setup(t)

		got, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).ListSpots(ctx, queries.SpotFilter{})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 3, open.AvailableToday)
		assert.Equal(t, 0, full.AvailableToday)
	})

	t.Run("success: only available drops full spots", func(t *testing.T) {
		s, open, _ := setup(t)

		got, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).ListSpots(ctx, queries.SpotFilter{OnlyAvailable: true})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, open.ID, got[0].ID)
	})

	t.Run("success: empty list skips the occupancy lookup", func(t *testing.T) {
		s := newStores(t)
		s.spots.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

		got, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).ListSpots(ctx, queries.SpotFilter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSpotQueries_GetSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("error: not found", func(t *testing.T) {
		s := newStores(t)
		id := uuid.New()
		s.spots.EXPECT().FindByID(ctx, id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "spot not found"))

		_, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).GetSpot(ctx, id)
		assert.True(t, errs.Is(err, queries.ErrSpotNotFound))
	})

	t.Run("success", func(t *testing.T) {
		s := newStores(t)
		view := builder.NewSpotBuilder().BuildView()
		s.spots.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		s.bookings.EXPECT().OccupancyBySpot(ctx, gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil)

		got, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).GetSpot(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.TotalSlots, got.AvailableToday)
	})
}

func TestSpotQueries_ListProviderSpots(t *testing.T) {
	ctx := context.Background()

	t.Run("success: filtered by provider", func(t *testing.T) {
		s := newStores(t)
		s.spots.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f queries.SpotFilter) ([]*queries.SpotView, error) {
			require.NotNil(t, f.ProviderID)
			assert.Equal(t, "provider-1", *f.ProviderID)
			return nil, nil
		})

		_, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).ListProviderSpots(ctx, asProvider())
		require.NoError(t, err)
	})

	t.Run("error: plain user", func(t *testing.T) {
		s := newStores(t)
		_, err := queries.NewSpotQueries(s.spots, s.bookings, s.services).ListProviderSpots(ctx, asUser())
		assert.True(t, errs.Is(err, queries.ErrPermissionDenied))
	})
}

func TestAvailabilityQueries_Calendar(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults to today and the configured horizon", func(t *testing.T) {
		s := newStores(t)
		view := builder.NewSpotBuilder().WithTotalSlots(3).BuildView()
		s.spots.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		s.bookings.EXPECT().
			OccupancyByDate(ctx, view.ID, mustDate(t, "2025-08-19"), mustDate(t, "2025-08-21"), availability.OccupyingStatuses).
			Return(map[booking.Date]int{mustDate(t, "2025-08-20"): 3}, nil)

		cal, err := queries.NewAvailabilityQueries(s.spots, s.bookings, s.services, 3).Calendar(ctx, view.ID, "", 0)

		require.NoError(t, err)
		require.Len(t, cal.Days, 3)
		assert.Equal(t, queries.DayAvailabilityView{Date: "2025-08-19", Total: 3, Occupied: 0, Available: 3}, cal.Days[0])
		assert.Equal(t, queries.DayAvailabilityView{Date: "2025-08-20", Total: 3, Occupied: 3, Available: 0}, cal.Days[1])
	})

	t.Run("success: horizon capped", func(t *testing.T) {
		s := newStores(t)
		view := builder.NewSpotBuilder().BuildView()
		s.spots.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		s.bookings.EXPECT().OccupancyByDate(ctx, view.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		cal, err := queries.NewAvailabilityQueries(s.spots, s.bookings, s.services, 7).Calendar(ctx, view.ID, "2025-09-01", 400)

		require.NoError(t, err)
		assert.Len(t, cal.Days, queries.MaxCalendarDays)
		assert.Equal(t, "2025-09-01", cal.Days[0].Date)
	})

	t.Run("error: bad start date", func(t *testing.T) {
		s := newStores(t)
		_, err := queries.NewAvailabilityQueries(s.spots, s.bookings, s.services, 7).Calendar(ctx, uuid.New(), "19/08/2025", 3)
		assert.True(t, errs.Is(err, queries.ErrInvalidDate))
	})

	t.Run("error: unknown spot", func(t *testing.T) {
		s := newStores(t)
		id := uuid.New()
		s.spots.EXPECT().FindByID(ctx, id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "spot not found"))

		_, err := queries.NewAvailabilityQueries(s.spots, s.bookings, s.services, 7).Calendar(ctx, id, "", 3)
		assert.True(t, errs.Is(err, queries.ErrSpotNotFound))
	})
}

func TestAvailabilityQueries_Today(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	a := builder.NewSpotBuilder().WithTotalSlots(5).BuildView()
	b := builder.NewSpotBuilder().WithTotalSlots(2).BuildView()
	s.spots.EXPECT().List(ctx, queries.SpotFilter{}).Return([]*queries.SpotView{a, b}, nil)
	s.bookings.EXPECT().OccupancyBySpot(ctx, mustDate(t, "2025-08-19"), availability.OccupyingStatuses).
		Return(map[uuid.UUID]int{a.ID: 2, b.ID: 3}, nil)

	got, err := queries.NewAvailabilityQueries(s.spots, s.bookings, s.services, 7).Today(ctx)

	require.NoError(t, err)
	assert.Equal(t, &queries.TodayView{Date: "2025-08-19", Spots: 2, TotalSlots: 7, AvailableSlots: 3}, got)
}
