//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/spot"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/shared"
	"find-my-space/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// onlineRecord stores an online booking awaiting payment for order_1.
func onlineRecord(f *fixture, s *spot.Spot) booking.Record {
	r := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.SpotID = s.ID()
		b.Method = "online"
	}).BuildRecord(booking.StatusConfirmed, booking.PaymentPending)
	orderID := "order_1"
	r.OrderID = &orderID
	r.CheckInCode = nil
	f.store.PutBooking(r)
	return r
}

var (
	paidReq      = reqdto.CompletePaymentRequest{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
	capturedPay1 = []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","status":"captured"}}}}`)
)

func TestCompleteOnlinePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: paid into escrow with a check-in code", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyPaymentSignature("order_1", "pay_1", "sig").Return(true).Times(1)

		res, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaidEscrow, res.PaymentStatus)
		assert.Equal(t, fixedCode, res.CheckInCode)
		assert.Empty(t, res.Warning)

		charges := f.store.Payments(r.ID)
		require.Len(t, charges, 1)
		assert.Equal(t, payment.KindCharge, charges[0].Kind())
		assert.Equal(t, payment.StatusSuccess, charges[0].Status())
		assert.Equal(t, int64(15000), charges[0].Amount().Paise())
		assert.Equal(t, []shared.EventType{shared.EventPaymentConfirmed}, f.publisher.Types())
	})

	t.Run("success: advance-payment spot goes straight to released", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9, func(b *builder.SpotBuilder) { b.AdvancePayment = true })
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

		res, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaidReleased, res.PaymentStatus)
	})

	t.Run("warning: booking stays paid when the charge record fails", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.store.FailPaymentWrites = true
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

		res, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentRecordWarning, res.Warning)
		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPaidEscrow, stored.PaymentStatus())
		assert.Empty(t, f.store.Payments(r.ID))
	})

	t.Run("success: replayed callback changes nothing", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
		uc := f.payments()

		_, err := uc.CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)
		require.NoError(t, err)
		res, err := uc.CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaidEscrow, res.PaymentStatus)
		assert.Len(t, f.store.Payments(r.ID), 1)
		assert.Len(t, f.publisher.Events(), 1)
	})

	t.Run("success: callback after the webhook still hands out the code", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)
		f.gateway.EXPECT().VerifyPaymentSignature("order_1", "pay_1", "sig").Return(true).Times(1)
		uc := f.payments()

		require.NoError(t, uc.HandleWebhook(ctx, capturedPay1, "sig"))
		res, err := uc.CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaidEscrow, res.PaymentStatus)
		assert.Equal(t, fixedCode, res.CheckInCode)
		stored, _ := f.store.Booking(r.ID)
		require.NotNil(t, stored.CheckInCode())
		assert.Equal(t, fixedCode, stored.CheckInCode().String())
		assert.Len(t, f.store.Payments(r.ID), 1)
		assert.Len(t, f.publisher.Events(), 1)

		checked, err := f.payouts(payoutsOn).CheckIn(ctx, f.provider, r.ID, res.CheckInCode)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCheckedIn, checked.Status)
	})

	t.Run("success: code filled in for a booking settled without one", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		r.PaymentStatus = booking.PaymentPaidEscrow
		f.store.PutBooking(r)
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

		res, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		require.NoError(t, err)
		assert.Equal(t, fixedCode, res.CheckInCode)
		stored, _ := f.store.Booking(r.ID)
		require.NotNil(t, stored.CheckInCode())
		assert.Equal(t, fixedCode, stored.CheckInCode().String())
	})

	t.Run("error: forged signature", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(1)

		_, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, paidReq)

		assert.True(t, errs.Is(err, commands.ErrInvalidSignature))
		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPending, stored.PaymentStatus())
	})

	t.Run("error: order of another booking", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyPaymentSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

		other := paidReq
		other.OrderID = "order_2"
		_, err := f.payments().CompleteOnlinePayment(ctx, f.user, r.ID, other)

		assert.True(t, errs.Is(err, commands.ErrOrderMismatch))
	})
}

func TestCreatePaymentOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending cash booking gets an order", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPending)
		f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(&commands.Order{ID: "order_9", AmountPaise: 15000, Currency: "INR"}, nil).Times(1)
		f.gateway.EXPECT().KeyID().Return("rzp_test_key").Times(1)

		info, err := f.payments().CreatePaymentOrder(ctx, f.user, r.ID)

		require.NoError(t, err)
		assert.Equal(t, "order_9", info.OrderID)
		stored, _ := f.store.Booking(r.ID)
		require.NotNil(t, stored.OrderID())
		assert.Equal(t, "order_9", *stored.OrderID())
	})

	t.Run("error: already paid", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPaidEscrow)

		_, err := f.payments().CreatePaymentOrder(ctx, f.user, r.ID)
		assert.True(t, errors.Is(err, booking.ErrPaymentNotPending))
	})

	t.Run("error: gateway down", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := f.seedBooking(s, booking.StatusConfirmed, booking.PaymentPending)
		f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

		_, err := f.payments().CreatePaymentOrder(ctx, f.user, r.ID)

		assert.True(t, errs.Is(err, commands.ErrOrderCreation))
		stored, _ := f.store.Booking(r.ID)
		assert.Nil(t, stored.OrderID())
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	captured := capturedPay1

	t.Run("success: pending booking settled into escrow with a code", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyWebhookSignature(captured, "sig").Return(true).Times(1)

		require.NoError(t, f.payments().HandleWebhook(ctx, captured, "sig"))

		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPaidEscrow, stored.PaymentStatus())
		require.NotNil(t, stored.CheckInCode())
		assert.Equal(t, fixedCode, stored.CheckInCode().String())
		require.Len(t, f.store.Payments(r.ID), 1)
		assert.Equal(t, []shared.EventType{shared.EventPaymentConfirmed}, f.publisher.Types())
	})

	t.Run("success: advance-payment spot settles straight to released", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9, func(b *builder.SpotBuilder) { b.AdvancePayment = true })
		r := onlineRecord(f, s)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)

		require.NoError(t, f.payments().HandleWebhook(ctx, captured, "sig"))

		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPaidReleased, stored.PaymentStatus())
	})

	t.Run("success: released booking is never downgraded", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSpot(10, 9)
		r := onlineRecord(f, s)
		r.PaymentStatus = booking.PaymentPaidReleased
		f.store.PutBooking(r)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)

		require.NoError(t, f.payments().HandleWebhook(ctx, captured, "sig"))

		stored, _ := f.store.Booking(r.ID)
		assert.Equal(t, booking.PaymentPaidReleased, stored.PaymentStatus())
		assert.Empty(t, f.publisher.Events())
	})

	t.Run("success: unknown order acknowledged", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)
		assert.NoError(t, f.payments().HandleWebhook(ctx, captured, "sig"))
	})

	t.Run("success: other events ignored", func(t *testing.T) {
		f := newFixture(t)
		body := []byte(`{"event":"refund.created","payload":{}}`)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)
		assert.NoError(t, f.payments().HandleWebhook(ctx, body, "sig"))
		assert.Equal(t, 0, f.store.Commits)
	})

	t.Run("error: bad signature", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(false).Times(1)
		assert.True(t, errs.Is(f.payments().HandleWebhook(ctx, captured, "forged"), commands.ErrInvalidSignature))
	})

	t.Run("error: malformed body", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(true).Times(1)
		assert.True(t, errs.Is(f.payments().HandleWebhook(ctx, []byte("{"), "sig"), commands.ErrMalformedWebhook))
	})
}
