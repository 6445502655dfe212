//go:build unit

package queries_test

import (
	"testing"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/user"
	"find-my-space/internal/pkg/clock"
	"find-my-space/tests/common/builder"
	queriesmock "find-my-space/tests/mock/queries"

	"go.uber.org/mock/gomock"
)

type stores struct {
	spots     *queriesmock.MockSpotReadStore
	bookings  *queriesmock.MockBookingReadStore
	providers *queriesmock.MockProviderReadStore
	services  *booking.Services
}

// newStores pins the clock to 2025-08-19 09:00 IST.
func newStores(t *testing.T) *stores {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &stores{
		spots:     queriesmock.NewMockSpotReadStore(ctrl),
		bookings:  queriesmock.NewMockBookingReadStore(ctrl),
		providers: queriesmock.NewMockProviderReadStore(ctrl),
		services: &booking.Services{
			Clock:          clock.NewMockClock(builder.NewBookingBuilder().Now),
			CostCalculator: booking.NewHourlyCostCalculator(),
			Location:       builder.IST,
		},
	}
}

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func asUser() *user.Identity     { return builder.NewIdentityBuilder().MustBuild() }
func asProvider() *user.Identity { return builder.NewIdentityBuilder().AsProvider().MustBuild() }
