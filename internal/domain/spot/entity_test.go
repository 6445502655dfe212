//go:build unit

package spot_test

import (
	"testing"
	"time"

	"find-my-space/internal/domain/spot"
	"find-my-space/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SpotBuilder)
	errIs  error
}

func TestNewProviderSpot(t *testing.T) {
	t.Run("available starts at capacity", func(t *testing.T) {
		s, err := builder.NewSpotBuilder().WithTotalSlots(4).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 4, s.Available())
		assert.True(t, s.IsProviderSpot())
		require.NotNil(t, s.ProviderID())
		assert.Equal(t, "provider-1", *s.ProviderID())
		assert.NoError(t, s.EnsureOwnedBy("provider-1"))
		assert.ErrorIs(t, s.EnsureOwnedBy("provider-2"), spot.ErrNotSpotOwner)
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank location",
				mutate: func(b *builder.SpotBuilder) { b.Location = "   " },
				errIs:  spot.ErrLocationRequired,
			},
			{
				name:   "zero slots",
				mutate: func(b *builder.SpotBuilder) { b.WithTotalSlots(0) },
				errIs:  spot.ErrInvalidTotalSlots,
			},
			{
				name:   "free parking",
				mutate: func(b *builder.SpotBuilder) { b.WithPricePerHourPaise(0) },
			},
		})
	})
}

func TestSpotRevise(t *testing.T) {
	now := time.Date(2025, 8, 19, 12, 0, 0, 0, builder.IST)

	tests := []struct {
		name      string
		available int
		newTotal  int
		want      int
	}{
		{name: "grow capacity", available: 3, newTotal: 15, want: 8},
		{name: "shrink capacity", available: 3, newTotal: 8, want: 1},
		{name: "shrink below bookings", available: 1, newTotal: 5, want: 0},
		{name: "same capacity", available: 6, newTotal: 10, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewSpotBuilder()
			s := b.BuildWithAvailable(tt.available)

			d := b.WithTotalSlots(tt.newTotal).Details()
			require.NoError(t, s.Revise(d, now))

			assert.Equal(t, tt.want, s.Available())
			assert.Equal(t, tt.newTotal, s.TotalSlots())
			assert.Equal(t, now, s.UpdatedAt())
		})
	}
}

func TestGeoPoint(t *testing.T) {
	_, err := spot.NewGeoPoint(12.97, 77.59)
	require.NoError(t, err)

	_, err = spot.NewGeoPoint(91, 0)
	require.ErrorIs(t, err, spot.ErrInvalidCoordinates)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewSpotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
