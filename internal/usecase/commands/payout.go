package commands

import (
	"context"
	"fmt"
	"log/slog"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/user"
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/clock"
	"find-my-space/internal/pkg/metrics"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInResult struct {
	BookingID        uuid.UUID
	Status           booking.Status
	AlreadyCheckedIn bool
}

type ReleaseResult struct {
	BookingID      uuid.UUID
	PaymentStatus  booking.PaymentStatus
	PayoutStatus   payment.Status
	AmountPaise    int64
	NetAmountPaise int64
	Commission     float64
}

type PayoutCommands interface {
	CheckIn(ctx context.Context, actor *user.Identity, bookingID uuid.UUID, code string) (*CheckInResult, error)
	ReleasePayout(ctx context.Context, actor *user.Identity, bookingID uuid.UUID) (*ReleaseResult, error)
}

type payoutCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	gateway    PaymentGateway
	mailer     Mailer
	background Background
	publisher  shared.EventPublisher
	policy     PayoutPolicy
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewPayoutCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	gateway PaymentGateway,
	mailer Mailer,
	background Background,
	publisher shared.EventPublisher,
	policy PayoutPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) PayoutCommands {
	return &payoutCommandsImpl{
		uow:        uow,
		clock:      clk,
		gateway:    gateway,
		mailer:     mailer,
		background: background,
		publisher:  publisher,
		policy:     policy,
		metrics:    m,
		logger:     logger,
	}
}

// CheckIn marks the user parked after the provider enters their code.
func (uc *payoutCommandsImpl) CheckIn(ctx context.Context, actor *user.Identity, bookingID uuid.UUID, rawCode string) (*CheckInResult, error) {
	if err := requireProvider(actor); err != nil {
		return nil, err
	}
	code, err := booking.NewCheckInCode(rawCode)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var (
		checked *booking.Booking
		already bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		already, err = b.CheckIn(actor.ID(), code, now)
		if err != nil {
			return err
		}
		checked = b
		if already {
			return nil
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		// only escrowed money is paid out by the platform
		if b.PaymentStatus() != booking.PaymentPaidEscrow {
			return nil
		}
		if _, err := tx.Payments().FindPayoutByBookingID(ctx, b.ID()); err == nil {
			return nil
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return tx.Payments().Create(ctx, payment.NewPayout(b.ID(), b.UserID(), actor.ID(), b.TotalCost(), uc.policy.Currency, now))
	})
	if err != nil {
		return nil, err
	}

	if !already {
		uc.publisher.Publish(ctx, bookingEvent(shared.EventBookingCheckedIn, checked, now))
	}
	return &CheckInResult{
		BookingID:        checked.ID(),
		Status:           checked.Status(),
		AlreadyCheckedIn: already,
	}, nil
}

// ReleasePayout forwards escrowed funds to the provider. The booking transition
// commits first; the gateway transfer and mails follow it.
func (uc *payoutCommandsImpl) ReleasePayout(ctx context.Context, actor *user.Identity, bookingID uuid.UUID) (*ReleaseResult, error) {
	if err := requireProvider(actor); err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var (
		released *booking.Booking
		payout   *payment.Payment
		profile  *provider.Profile
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if err := b.ReleasePayout(actor.ID(), now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}

		profile, err = tx.Providers().FindByUserID(ctx, actor.ID())
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			profile = nil
		}

		p, err := tx.Payments().FindPayoutByBookingID(ctx, b.ID())
		isNew := false
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			p = payment.NewPayout(b.ID(), b.UserID(), actor.ID(), b.TotalCost(), uc.policy.Currency, now)
			isNew = true
		}
		if err := p.ApplyCommission(uc.policy.Commission, now); err != nil {
			return err
		}
		switch {
		case !uc.policy.Enabled:
			p.MarkUnreleased(payment.StatusManualReleaseRequired, "automatic payouts are disabled", now)
		case profile == nil || !profile.HasPayoutDetails():
			p.MarkUnreleased(payment.StatusNoPayoutDetails, "provider has no payout account", now)
		}

		if isNew {
			err = tx.Payments().Create(ctx, p)
		} else {
			err = tx.Payments().Update(ctx, p)
		}
		if err != nil {
			return err
		}
		released, payout = b, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if payout.Status() == payment.StatusPayoutPending {
		uc.transfer(ctx, payout, profile)
	}
	uc.metrics.PayoutReleased(payout.Status().String())
	uc.notifyRelease(actor, released, payout, profile)
	uc.publisher.Publish(ctx, bookingEvent(shared.EventPayoutReleased, released, now))

	return &ReleaseResult{
		BookingID:      released.ID(),
		PaymentStatus:  released.PaymentStatus(),
		PayoutStatus:   payout.Status(),
		AmountPaise:    payout.Amount().Paise(),
		NetAmountPaise: payout.NetAmount().Paise(),
		Commission:     payout.Commission(),
	}, nil
}

// transfer requests the gateway payout and stores its outcome. The release
// itself stands whatever happens here.
func (uc *payoutCommandsImpl) transfer(ctx context.Context, p *payment.Payment, profile *provider.Profile) {
	details := profile.Payout()
	res, err := uc.gateway.CreatePayout(ctx, PayoutRequest{
		AmountPaise:   p.NetAmount().Paise(),
		Currency:      p.Currency(),
		AccountName:   details.AccountName,
		AccountNumber: details.AccountNumber,
		IFSC:          details.IFSC,
		Reference:     p.BookingID().String(),
		Narration:     "Find My Space payout",
	})
	now := uc.clock.Now()
	if err != nil {
		uc.logger.Error("gateway payout failed", "booking_id", p.BookingID().String(), "error", err.Error())
		p.MarkUnreleased(payment.StatusPayoutFailed, err.Error(), now)
	} else {
		p.MarkReleased(res.ID, now)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Update(ctx, p)
	})
	if err != nil {
		uc.logger.Error("payout status could not be stored",
			"booking_id", p.BookingID().String(), "payout_status", p.Status().String(), "error", err.Error())
	}
}

func (uc *payoutCommandsImpl) notifyRelease(actor *user.Identity, b *booking.Booking, p *payment.Payment, profile *provider.Profile) {
	providerEmail := actor.Email().Value()
	if profile != nil && profile.Email() != "" {
		providerEmail = profile.Email()
	}
	amount := fmt.Sprintf("₹%.2f", p.NetAmount().Rupees())

	if providerEmail != "" {
		uc.background.Go("mail.payout.provider", func(ctx context.Context) error {
			return uc.mailer.Send(ctx, Mail{
				To:      providerEmail,
				Subject: "Payout released for " + b.SpotName(),
				HTMLBody: fmt.Sprintf("<p>The payment for booking %s on %s has been released.</p><p>Amount after commission: %s (status: %s)</p>",
					b.ID(), b.Date(), amount, p.Status()),
			})
		})
	}
	if b.UserEmail() != "" {
		uc.background.Go("mail.payout.user", func(ctx context.Context) error {
			return uc.mailer.Send(ctx, Mail{
				To:      b.UserEmail(),
				Subject: "Your parking at " + b.SpotName() + " is complete",
				HTMLBody: fmt.Sprintf("<p>Thanks for parking with Find My Space.</p><p>Your payment for %s on %s has been forwarded to the provider.</p>",
					b.SpotName(), b.Date()),
			})
		})
	}
}

func requireProvider(actor *user.Identity) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsProvider() {
		return ErrPermissionDenied
	}
	return nil
}
