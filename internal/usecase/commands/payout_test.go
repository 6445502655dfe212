//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/shared"
	"find-my-space/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var payoutsOn = commands.PayoutPolicy{Enabled: true, Commission: 0.15, Currency: "INR"}

func payoutOf(t *testing.T, f *fixture, bookingID uuid.UUID) *payment.Payment {
	t.Helper()
	for _, p := range f.store.Payments(bookingID) {
		if p.Kind() == payment.KindPayout {
			return p
		}
	}
	t.Fatalf("no payout for booking %s", bookingID)
	return nil
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success: escrowed booking opens a payout", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPaidEscrow)

		res, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, r.ID, fixedCode)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCheckedIn, res.Status)
		assert.False(t, res.AlreadyCheckedIn)

		p := payoutOf(t, f, r.ID)
		assert.Equal(t, payment.StatusPayoutPending, p.Status())
		assert.Equal(t, int64(15000), p.Amount().Paise())
		assert.Equal(t, []shared.EventType{shared.EventBookingCheckedIn}, f.publisher.Types())

		stored, _ := f.store.Booking(r.ID)
		assert.True(t, stored.PayoutTriggered())
		require.NotNil(t, stored.CheckedInAt())
		assert.True(t, stored.CheckedInAt().Equal(f.clock.Now()))
	})

	t.Run("success: cash booking checks in without a payout", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPending)

		_, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, r.ID, fixedCode)

		require.NoError(t, err)
		assert.Empty(t, f.store.Payments(r.ID))
	})

	t.Run("success: second check-in is reported, not repeated", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPaidEscrow)
		uc := f.payouts(payoutsOn)

		_, err := uc.CheckIn(ctx, f.provider, r.ID, fixedCode)
		require.NoError(t, err)
		res, err := uc.CheckIn(ctx, f.provider, r.ID, fixedCode)

		require.NoError(t, err)
		assert.True(t, res.AlreadyCheckedIn)
		assert.Len(t, f.store.Payments(r.ID), 1)
		assert.Len(t, f.publisher.Events(), 1)
	})

	tests := []struct {
		name    string
		code    string
		status  booking.Status
		wantErr error
	}{
		{name: "wrong code", code: "111111", status: booking.StatusConfirmed, wantErr: booking.ErrCheckInCodeMismatch},
		{name: "malformed code", code: "12ab", status: booking.StatusConfirmed, wantErr: booking.ErrInvalidCheckInCode},
		{name: "cancelled booking", code: fixedCode, status: booking.StatusCancelled, wantErr: booking.ErrNotCheckInable},
	}
	for _, tc := range tests {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.seedSpot(10, 9)
			r := f.seedBooking(s, tc.status, booking.PaymentPaidEscrow)

			_, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, r.ID, tc.code)

			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			stored, _ := f.store.Booking(r.ID)
			assert.Equal(t, tc.status, stored.Status())
		})
	}

	t.Run("error: booking of another provider", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		other := "provider-2"
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPaidEscrow, func(b *builder.BookingBuilder) {
			b.ProviderID = &other
		})

		_, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, r.ID, fixedCode)
		assert.True(t, errors.Is(err, booking.ErrNotBookingProvider))
	})

	t.Run("error: plain users cannot check in", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payouts(payoutsOn).CheckIn(ctx, f.user, uuid.New(), fixedCode)
		assert.True(t, errs.Is(err, commands.ErrPermissionDenied))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, uuid.New(), fixedCode)
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})
}

func TestReleasePayout(t *testing.T) {
	ctx := context.Background()

	checkedIn := func(f *fixture) booking.Record {
		s := f.seedSpot(10, 9)
		return f.seedBooking(s, booking.StatusCheckedIn, booking.PaymentPaidEscrow)
	}

	t.Run("success: transfer sent to the provider account", func(t *testing.T) {
		f := newFixture(t)
		r := checkedIn(f)
		f.seedProviderProfile(true)

		f.gateway.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PayoutRequest) (*commands.PayoutResult, error) {
				assert.Equal(t, int64(12750), req.AmountPaise)
				assert.Equal(t, "HDFC0001234", req.IFSC)
				assert.Equal(t, r.ID.String(), req.Reference)
				return &commands.PayoutResult{ID: "pout_1", Status: "processing"}, nil
			}).Times(1)
		var sentTo []string
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m commands.Mail) error {
				sentTo = append(sentTo, m.To)
				return nil
			}).Times(2)

		res, err := f.payouts(payoutsOn).ReleasePayout(ctx, f.provider, r.ID)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaidReleased, res.PaymentStatus)
		assert.Equal(t, payment.StatusReleased, res.PayoutStatus)
		assert.Equal(t, int64(15000), res.AmountPaise)
		assert.Equal(t, int64(12750), res.NetAmountPaise)
		assert.InDelta(t, 0.15, res.Commission, 1e-9)

		p := payoutOf(t, f, r.ID)
		assert.Equal(t, payment.StatusReleased, p.Status())
		assert.ElementsMatch(t, []string{"ravi.payouts@example.com", "asha@example.com"}, sentTo)
		assert.Empty(t, f.background.Errs)
		assert.Equal(t, []shared.EventType{shared.EventPayoutReleased}, f.publisher.Types())

		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.StatusReleased, stored.Status())
	})

	t.Run("success: missing payout account leaves the transfer for later", func(t *testing.T) {
		f := newFixture(t)
		r := checkedIn(f)
		f.seedProviderProfile(false)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := f.payouts(payoutsOn).ReleasePayout(ctx, f.provider, r.ID)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusNoPayoutDetails, res.PayoutStatus)
		assert.Equal(t, booking.PaymentPaidReleased, res.PaymentStatus)
	})

	t.Run("success: disabled payouts need a manual release", func(t *testing.T) {
		f := newFixture(t)
		r := checkedIn(f)
		f.seedProviderProfile(true)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := f.payouts(commands.PayoutPolicy{Commission: 0.15, Currency: "INR"}).ReleasePayout(ctx, f.provider, r.ID)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusManualReleaseRequired, res.PayoutStatus)
	})

	t.Run("success: gateway failure keeps the release", func(t *testing.T) {
		f := newFixture(t)
		r := checkedIn(f)
		f.seedProviderProfile(true)
		f.gateway.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient balance")).Times(1)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)

		res, err := f.payouts(payoutsOn).ReleasePayout(ctx, f.provider, r.ID)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPayoutFailed, res.PayoutStatus)
		p := payoutOf(t, f, r.ID)
		require.NotNil(t, p.Record().FailureReason)
		assert.Equal(t, "insufficient balance", *p.Record().FailureReason)
		assert.Len(t, f.background.Errs, 2)

		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPaidReleased, stored.PaymentStatus())
	})

	t.Run("error: booking not checked in", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPaidEscrow)

		_, err := f.payouts(payoutsOn).ReleasePayout(ctx, f.provider, r.ID)

		assert.True(t, errors.Is(err, booking.ErrNotReleasable))
		assert.Empty(t, f.store.Payments(r.ID))
	})

	t.Run("error: released twice", func(t *testing.T) {
		f := newFixture(t)
		r := checkedIn(f)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		uc := f.payouts(payoutsOn)

		_, err := uc.ReleasePayout(ctx, f.provider, r.ID)
		require.NoError(t, err)
		_, err = uc.ReleasePayout(ctx, f.provider, r.ID)

		assert.True(t, errors.Is(err, booking.ErrNotReleasable))
		assert.Len(t, f.store.Payments(r.ID), 1)
	})
}
