package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/user"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

type CompletePaymentResult struct {
	BookingID     uuid.UUID
	PaymentStatus booking.PaymentStatus
	CheckInCode   string
	// Warning is set when the booking is paid but its charge record is missing.
	Warning string
}

type PaymentCommands interface {
	CreatePaymentOrder(ctx context.Context, actor *user.Identity, bookingID uuid.UUID) (*OrderInfo, error)
	CompleteOnlinePayment(ctx context.Context, actor *user.Identity, bookingID uuid.UUID, req reqdto.CompletePaymentRequest) (*CompletePaymentResult, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type paymentCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *booking.Services
	codes     booking.CodeGenerator
	gateway   PaymentGateway
	publisher shared.EventPublisher
	policy    BookingPolicy
	logger    *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	codes booking.CodeGenerator,
	gateway PaymentGateway,
	publisher shared.EventPublisher,
	policy BookingPolicy,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:       uow,
		services:  services,
		codes:     codes,
		gateway:   gateway,
		publisher: publisher,
		policy:    policy,
		logger:    logger,
	}
}

// CreatePaymentOrder lets a pending booking be paid online after the fact.
func (uc *paymentCommandsImpl) CreatePaymentOrder(ctx context.Context, actor *user.Identity, bookingID uuid.UUID) (*OrderInfo, error) {
	var pending *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwned(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.PaymentStatus() != booking.PaymentPending {
			return booking.ErrPaymentNotPending
		}
		pending = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := uc.gateway.CreateOrder(ctx, OrderRequest{
		AmountPaise: pending.TotalCost().Paise(),
		Currency:    uc.policy.Currency,
		Receipt:     pending.ID().String(),
		Notes: map[string]string{
			"booking_id": pending.ID().String(),
			"user_id":    pending.UserID(),
		},
	})
	if err != nil {
		uc.logger.Error("gateway order creation failed", "booking_id", bookingID.String(), "error", err.Error())
		return nil, errs.Mark(err, ErrOrderCreation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if err := b.AttachOrder(o.ID, uc.services.Clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return &OrderInfo{
		OrderID:     o.ID,
		AmountPaise: o.AmountPaise,
		Currency:    o.Currency,
		KeyID:       uc.gateway.KeyID(),
	}, nil
}

// CompleteOnlinePayment settles a checkout. Once the booking is updated it is
// never rolled back; a failed charge record only produces a warning.
func (uc *paymentCommandsImpl) CompleteOnlinePayment(ctx context.Context, actor *user.Identity, bookingID uuid.UUID, req reqdto.CompletePaymentRequest) (*CompletePaymentResult, error) {
	if !uc.gateway.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, ErrInvalidSignature
	}
	code, err := uc.codes.Generate()
	if err != nil {
		return nil, err
	}
	now := uc.services.Clock.Now()

	var (
		paid   *booking.Booking
		replay bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedForUpdate(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.OrderID() == nil || *b.OrderID() != req.OrderID {
			return ErrOrderMismatch
		}
		paid = b
		if b.PaymentStatus() != booking.PaymentPending && (b.GatewayPaymentID() == nil || *b.GatewayPaymentID() == req.PaymentID) {
			// settled already, possibly by the webhook
			replay = true
			if b.EnsureCheckInCode(code, now) {
				return tx.Bookings().Update(ctx, b)
			}
			return nil
		}

		advance, err := advancePaymentAllowed(ctx, tx, b.SpotID())
		if err != nil {
			return err
		}

		if err := b.AcceptPayment(req.OrderID, req.PaymentID, code, now); err != nil {
			return err
		}
		if err := b.MarkPaid(advance, now); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	result := &CompletePaymentResult{
		BookingID:     paid.ID(),
		PaymentStatus: paid.PaymentStatus(),
	}
	if paid.CheckInCode() != nil {
		result.CheckInCode = paid.CheckInCode().String()
	}
	if replay {
		return result, nil
	}

	if err := uc.recordCharge(ctx, paid, req.PaymentID); err != nil {
		uc.logger.Error("payment record failed after confirmed payment",
			"booking_id", paid.ID().String(), "order_id", req.OrderID, "error", err.Error())
		result.Warning = PaymentRecordWarning
	}

	uc.publisher.Publish(ctx, bookingEvent(shared.EventPaymentConfirmed, paid, now))
	return result, nil
}

func (uc *paymentCommandsImpl) recordCharge(ctx context.Context, b *booking.Booking, gatewayPaymentID string) error {
	now := uc.services.Clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Payments().FindChargeByOrderID(ctx, *b.OrderID())
		switch {
		case err == nil:
			existing.MarkSucceeded(gatewayPaymentID, now)
			return tx.Payments().Update(ctx, existing)
		case infra.IsKind(err, infra.KindNotFound):
			charge := payment.NewCharge(b.ID(), b.UserID(), b.ProviderID(), *b.OrderID(), gatewayPaymentID, b.TotalCost(), uc.policy.Currency, now)
			return tx.Payments().Create(ctx, charge)
		default:
			return err
		}
	})
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

const (
	webhookPaymentCaptured = "payment.captured"
	webhookOrderPaid       = "order.paid"
)

// HandleWebhook acknowledges every verified event and acts on captures only.
func (uc *paymentCommandsImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !uc.gateway.VerifyWebhookSignature(body, signature) {
		return ErrInvalidSignature
	}
	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errs.Mark(err, ErrMalformedWebhook)
	}
	if env.Event != webhookPaymentCaptured && env.Event != webhookOrderPaid {
		uc.logger.Debug("ignoring webhook event", "event", env.Event)
		return nil
	}

	orderID := env.Payload.Payment.Entity.OrderID
	if orderID == "" {
		orderID = env.Payload.Order.Entity.ID
	}
	paymentID := env.Payload.Payment.Entity.ID
	if orderID == "" {
		return ErrMalformedWebhook
	}

	code, err := uc.codes.Generate()
	if err != nil {
		return err
	}
	now := uc.services.Clock.Now()
	var settled *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Bookings().FindByOrderID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				uc.logger.Warn("webhook for unknown order", "order_id", orderID, "event", env.Event)
				return nil
			}
			return err
		}
		b, err := tx.Bookings().FindByIDForUpdate(ctx, found.ID())
		if err != nil {
			return err
		}
		advance, err := advancePaymentAllowed(ctx, tx, b.SpotID())
		if err != nil {
			return err
		}
		if b.SettleFromWebhook(orderID, paymentID, code, advance, now) {
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return err
			}
			settled = b
		}

		charge, err := tx.Payments().FindChargeByOrderID(ctx, orderID)
		switch {
		case err == nil:
			if charge.Status() == payment.StatusSuccess {
				return nil
			}
			charge.MarkSucceeded(paymentID, now)
			return tx.Payments().Update(ctx, charge)
		case infra.IsKind(err, infra.KindNotFound):
			return tx.Payments().Create(ctx, payment.NewCharge(b.ID(), b.UserID(), b.ProviderID(), orderID, paymentID, b.TotalCost(), uc.policy.Currency, now))
		default:
			return err
		}
	})
	if err != nil {
		return err
	}
	if settled != nil {
		uc.publisher.Publish(ctx, bookingEvent(shared.EventPaymentConfirmed, settled, now))
	}
	return nil
}

// advancePaymentAllowed treats a deleted spot as escrow-only.
func advancePaymentAllowed(ctx context.Context, tx shared.Tx, spotID uuid.UUID) (bool, error) {
	s, err := tx.Spots().FindByID(ctx, spotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.AdvancePaymentAllowed(), nil
}

func loadOwned(ctx context.Context, tx shared.Tx, actor *user.Identity, id uuid.UUID) (*booking.Booking, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	b, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if !b.IsOwnedBy(actor.ID()) {
		return nil, ErrPermissionDenied
	}
	return b, nil
}
