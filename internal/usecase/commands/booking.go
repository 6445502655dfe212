package commands

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/money"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/domain/user"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/pkg/metrics"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingResult struct {
	BookingID     uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Hours         float64
	TotalCost     money.Money
	// Order is set for online bookings; the client opens the checkout with it.
	Order *OrderInfo
}

type OrderInfo struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	KeyID       string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor *user.Identity, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error
	VacateBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error
	DeleteBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *booking.Services
	codes     booking.CodeGenerator
	gateway   PaymentGateway
	publisher shared.EventPublisher
	policy    BookingPolicy
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	codes booking.CodeGenerator,
	gateway PaymentGateway,
	publisher shared.EventPublisher,
	policy BookingPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		services:  services,
		codes:     codes,
		gateway:   gateway,
		publisher: publisher,
		policy:    policy,
		metrics:   m,
		logger:    logger,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, actor *user.Identity, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.EmailVerified() {
		return nil, ErrEmailNotVerified
	}
	spotID, err := uuid.Parse(req.SpotID)
	if err != nil {
		return nil, ErrSpotNotFound
	}
	in, err := req.ToInput()
	if err != nil {
		return nil, err
	}
	requester := booking.Requester{
		ID:    actor.ID(),
		Name:  actor.DisplayName(),
		Email: actor.Email().Value(),
	}

	var (
		draft *booking.Booking
		order *OrderInfo
	)
	if in.Method == booking.MethodOnline {
		draft, err = uc.prepareDraft(ctx, spotID, requester, in)
		if err != nil {
			uc.recordOutcome(in.Method, err)
			return nil, err
		}
		order, err = uc.createOrder(ctx, draft)
		if err != nil {
			uc.metrics.BookingOutcome(in.Method.String(), "order_failed")
			return nil, err
		}
		if err = draft.AttachOrder(order.OrderID, uc.services.Clock.Now()); err != nil {
			return nil, err
		}
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, spotID)
		if err != nil {
			return notFoundAs(err, ErrSpotNotFound)
		}
		if err := ensureCapacity(ctx, tx, s, in.Date); err != nil {
			return err
		}

		b := draft
		if b == nil {
			b, err = newBooking(uc.services, s, requester, in)
			if err != nil {
				return err
			}
			code, err := uc.codes.Generate()
			if err != nil {
				return err
			}
			b.IssueCheckInCode(code)
		}

		if err := tx.Spots().ReserveSlot(ctx, s.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrNoCapacity)
			}
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	uc.recordOutcome(in.Method, err)
	if err != nil {
		if order != nil {
			uc.logger.Warn("gateway order left without booking",
				"order_id", order.OrderID, "spot_id", spotID.String(), "error", err.Error())
		}
		return nil, err
	}

	uc.publisher.Publish(ctx, bookingEvent(shared.EventBookingCreated, created, uc.services.Clock.Now()))

	return &CreateBookingResult{
		BookingID:     created.ID(),
		Status:        created.Status(),
		PaymentStatus: created.PaymentStatus(),
		Hours:         created.Hours(),
		TotalCost:     created.TotalCost(),
		Order:         order,
	}, nil
}

// prepareDraft runs the availability preconditions without locking so the
// gateway order is only created for a booking that can plausibly succeed.
func (uc *bookingCommandsImpl) prepareDraft(ctx context.Context, spotID uuid.UUID, requester booking.Requester, in reqdto.BookingInput) (*booking.Booking, error) {
	var draft *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByID(ctx, spotID)
		if err != nil {
			return notFoundAs(err, ErrSpotNotFound)
		}
		if err := ensureCapacity(ctx, tx, s, in.Date); err != nil {
			return err
		}
		draft, err = newBooking(uc.services, s, requester, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *bookingCommandsImpl) createOrder(ctx context.Context, b *booking.Booking) (*OrderInfo, error) {
	o, err := uc.gateway.CreateOrder(ctx, OrderRequest{
		AmountPaise: b.TotalCost().Paise(),
		Currency:    uc.policy.Currency,
		Receipt:     b.ID().String(),
		Notes: map[string]string{
			"booking_id": b.ID().String(),
			"spot_id":    b.SpotID().String(),
			"user_id":    b.UserID(),
		},
	})
	if err != nil {
		uc.logger.Error("gateway order creation failed", "booking_id", b.ID().String(), "error", err.Error())
		return nil, errs.Mark(err, ErrOrderCreation)
	}
	return &OrderInfo{
		OrderID:     o.ID,
		AmountPaise: o.AmountPaise,
		Currency:    o.Currency,
		KeyID:       uc.gateway.KeyID(),
	}, nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error {
	now := uc.services.Clock.Now()
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := b.Cancel(now, uc.services.Location, uc.policy.CancellationWindow); err != nil {
			return err
		}
		if b.HandBackSlot() {
			if err := tx.Spots().ReleaseSlot(ctx, b.SpotID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}
		cancelled = b
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return err
	}
	uc.publisher.Publish(ctx, bookingEvent(shared.EventBookingCancelled, cancelled, now))
	return nil
}

// VacateBooking frees the slot once; repeating it is a no-op.
func (uc *bookingCommandsImpl) VacateBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error {
	now := uc.services.Clock.Now()
	var vacated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		changed, err := b.Vacate(now)
		if err != nil || !changed {
			return err
		}
		if b.HandBackSlot() {
			if err := tx.Spots().ReleaseSlot(ctx, b.SpotID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}
		vacated = b
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return err
	}
	if vacated != nil {
		uc.publisher.Publish(ctx, bookingEvent(shared.EventBookingVacated, vacated, now))
	}
	return nil
}

func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, actor *user.Identity, id uuid.UUID) error {
	var deleted *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := b.EnsureDeletable(); err != nil {
			return err
		}
		// a released booking still counts against the spot
		if b.HandBackSlot() {
			if err := tx.Spots().ReleaseSlot(ctx, b.SpotID()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}
		deleted = b
		return tx.Bookings().Delete(ctx, b.ID())
	})
	if err != nil {
		return err
	}
	uc.publisher.Publish(ctx, bookingEvent(shared.EventBookingDeleted, deleted, uc.services.Clock.Now()))
	return nil
}

func (uc *bookingCommandsImpl) recordOutcome(method booking.PaymentMethod, err error) {
	outcome := "created"
	switch {
	case err == nil:
	case errs.Is(err, ErrNoCapacity):
		outcome = "no_capacity"
	default:
		outcome = "failed"
	}
	uc.metrics.BookingOutcome(method.String(), outcome)
}

// ensureCapacity checks the live counter first, then the per-date count.
func ensureCapacity(ctx context.Context, tx shared.Tx, s *spot.Spot, date booking.Date) error {
	if !s.HasAvailability() {
		return ErrNoCapacity
	}
	occupying, err := tx.Bookings().CountOccupying(ctx, s.ID(), date, availability.OccupyingStatuses)
	if err != nil {
		return err
	}
	if availability.Remaining(s.TotalSlots(), occupying) <= 0 {
		return ErrNoCapacity
	}
	return nil
}

// newBooking checks the time range only once the capacity checks have passed.
func newBooking(services *booking.Services, s *spot.Spot, requester booking.Requester, in reqdto.BookingInput) (*booking.Booking, error) {
	tr, err := in.TimeRange()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(services, termsOf(s), requester, in.Date, tr, in.Method, in.Contact)
}

func loadOwnedForUpdate(ctx context.Context, tx shared.Tx, actor *user.Identity, id uuid.UUID) (*booking.Booking, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if !b.IsOwnedBy(actor.ID()) {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func termsOf(s *spot.Spot) booking.SpotTerms {
	return booking.SpotTerms{
		ID:                    s.ID(),
		ProviderID:            s.ProviderID(),
		Name:                  s.Location(),
		Address:               s.Address(),
		PricePerHour:          s.PricePerHour(),
		AdvancePaymentAllowed: s.AdvancePaymentAllowed(),
		IsProviderSpot:        s.IsProviderSpot(),
	}
}
