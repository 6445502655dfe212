//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/domain/user"
	"find-my-space/internal/pkg/clock"
	"find-my-space/internal/pkg/metrics"
	"find-my-space/internal/usecase/commands"
	"find-my-space/tests/common/builder"
	"find-my-space/tests/common/memstore"
	commandsmock "find-my-space/tests/mock/commands"

	"go.uber.org/mock/gomock"
)

const fixedCode = "482913"

type fixedCodes struct{}

func (fixedCodes) Generate() (booking.CheckInCode, error) {
	return booking.NewCheckInCode(fixedCode)
}

type fixture struct {
	store      *memstore.Store
	publisher  *memstore.Publisher
	background *memstore.SyncBackground
	clock      *clock.MockClock
	services   *booking.Services
	gateway    *commandsmock.MockPaymentGateway
	mailer     *commandsmock.MockMailer

	user     *user.Identity
	provider *user.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	bb := builder.NewBookingBuilder()
	clk := clock.NewMockClock(bb.Now)
	return &fixture{
		store:      memstore.New(),
		publisher:  &memstore.Publisher{},
		background: &memstore.SyncBackground{},
		clock:      clk,
		services: &booking.Services{
			Clock:          clk,
			CostCalculator: booking.NewHourlyCostCalculator(),
			Location:       builder.IST,
		},
		gateway:  commandsmock.NewMockPaymentGateway(ctrl),
		mailer:   commandsmock.NewMockMailer(ctrl),
		user:     builder.NewIdentityBuilder().MustBuild(),
		provider: builder.NewIdentityBuilder().AsProvider().MustBuild(),
	}
}

func (f *fixture) bookingPolicy() commands.BookingPolicy {
	return commands.BookingPolicy{CancellationWindow: 2 * time.Hour, Currency: "INR"}
}

func (f *fixture) bookings() commands.BookingCommands {
	return commands.NewBookingCommands(f.store, f.services, fixedCodes{}, f.gateway, f.publisher,
		f.bookingPolicy(), metrics.NewNop(), discard())
}

func (f *fixture) payments() commands.PaymentCommands {
	return commands.NewPaymentCommands(f.store, f.services, fixedCodes{}, f.gateway, f.publisher,
		f.bookingPolicy(), discard())
}

func (f *fixture) payouts(policy commands.PayoutPolicy) commands.PayoutCommands {
	return commands.NewPayoutCommands(f.store, f.clock, f.gateway, f.mailer, f.background, f.publisher,
		policy, metrics.NewNop(), discard())
}

func (f *fixture) spots() commands.SpotCommands {
	return commands.NewSpotCommands(f.store, f.services, f.publisher)
}

// seedSpot stores a provider spot with the given counter and returns it.
func (f *fixture) seedSpot(total, available int, mutate ...func(*builder.SpotBuilder)) *spot.Spot {
	sb := builder.NewSpotBuilder().WithTotalSlots(total)
	for _, m := range mutate {
		sb.With(m)
	}
	s := sb.BuildWithAvailable(available)
	f.store.PutSpot(s)
	return s
}

// seedBooking stores a booking for s in the given state.
func (f *fixture) seedBooking(s *spot.Spot, status booking.Status, pay booking.PaymentStatus, mutate ...func(*builder.BookingBuilder)) booking.Record {
	bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SpotID = s.ID() })
	for _, m := range mutate {
		bb.With(m)
	}
	r := bb.BuildRecord(status, pay)
	f.store.PutBooking(r)
	return r
}

func (f *fixture) seedProviderProfile(withPayout bool) {
	r := provider.Record{
		UserID:   f.provider.ID(),
		Name:     "Ravi",
		Email:    "ravi.payouts@example.com",
		Verified: true,
	}
	if withPayout {
		r.Payout = &provider.PayoutDetails{AccountName: "Ravi Kumar", AccountNumber: "123456789012", IFSC: "HDFC0001234"}
	}
	f.store.PutProvider(provider.Reconstruct(r))
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
