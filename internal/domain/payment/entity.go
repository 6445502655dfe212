package payment

import (
	"errors"
	"time"

	"find-my-space/internal/domain/money"

	"github.com/google/uuid"
)

var ErrInvalidCommission = errors.New("commission must be in [0,1)")

type Kind string

const (
	KindCharge Kind = "charge"
	KindPayout Kind = "payout"
)

type Status string

const (
	StatusCreated               Status = "created"
	StatusSuccess               Status = "success"
	StatusPayoutPending         Status = "payout_pending"
	StatusManualReleaseRequired Status = "manual_release_required"
	StatusNoPayoutDetails       Status = "no_payout_details"
	StatusPayoutFailed          Status = "payout_failed"
	StatusReleased              Status = "released"
)

func (s Status) String() string { return string(s) }

const MethodRazorpay = "razorpay"

// Payment tracks one money movement for a booking: the user's charge or the provider's payout.
type Payment struct {
	id               uuid.UUID
	bookingID        uuid.UUID
	userID           string
	providerID       *string
	kind             Kind
	orderID          *string
	gatewayPaymentID *string
	amount           money.Money
	currency         string
	method           string
	status           Status
	commission       float64
	netAmount        money.Money
	payoutReference  *string
	failureReason    *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCharge(bookingID uuid.UUID, userID string, providerID *string, orderID, gatewayPaymentID string, amount money.Money, currency string, now time.Time) *Payment {
	return &Payment{
		id:               uuid.New(),
		bookingID:        bookingID,
		userID:           userID,
		providerID:       providerID,
		kind:             KindCharge,
		orderID:          &orderID,
		gatewayPaymentID: &gatewayPaymentID,
		amount:           amount,
		currency:         currency,
		method:           MethodRazorpay,
		status:           StatusSuccess,
		netAmount:        amount,
		createdAt:        now,
		updatedAt:        now,
	}
}

func NewPayout(bookingID uuid.UUID, userID string, providerID string, amount money.Money, currency string, now time.Time) *Payment {
	return &Payment{
		id:         uuid.New(),
		bookingID:  bookingID,
		userID:     userID,
		providerID: &providerID,
		kind:       KindPayout,
		amount:     amount,
		currency:   currency,
		method:     MethodRazorpay,
		status:     StatusPayoutPending,
		netAmount:  amount,
		createdAt:  now,
		updatedAt:  now,
	}
}

type Record struct {
	ID               uuid.UUID
	BookingID        uuid.UUID
	UserID           string
	ProviderID       *string
	Kind             Kind
	OrderID          *string
	GatewayPaymentID *string
	AmountPaise      int64
	Currency         string
	Method           string
	Status           Status
	Commission       float64
	NetAmountPaise   int64
	PayoutReference  *string
	FailureReason    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(r Record) *Payment {
	amount, _ := money.FromPaise(r.AmountPaise)
	net, _ := money.FromPaise(r.NetAmountPaise)
	return &Payment{
		id:               r.ID,
		bookingID:        r.BookingID,
		userID:           r.UserID,
		providerID:       r.ProviderID,
		kind:             r.Kind,
		orderID:          r.OrderID,
		gatewayPaymentID: r.GatewayPaymentID,
		amount:           amount,
		currency:         r.Currency,
		method:           r.Method,
		status:           r.Status,
		commission:       r.Commission,
		netAmount:        net,
		payoutReference:  r.PayoutReference,
		failureReason:    r.FailureReason,
		createdAt:        r.CreatedAt,
		updatedAt:        r.UpdatedAt,
	}
}

func (p *Payment) Record() Record {
	return Record{
		ID:               p.id,
		BookingID:        p.bookingID,
		UserID:           p.userID,
		ProviderID:       p.providerID,
		Kind:             p.kind,
		OrderID:          p.orderID,
		GatewayPaymentID: p.gatewayPaymentID,
		AmountPaise:      p.amount.Paise(),
		Currency:         p.currency,
		Method:           p.method,
		Status:           p.status,
		Commission:       p.commission,
		NetAmountPaise:   p.netAmount.Paise(),
		PayoutReference:  p.payoutReference,
		FailureReason:    p.failureReason,
		CreatedAt:        p.createdAt,
		UpdatedAt:        p.updatedAt,
	}
}

// ApplyCommission withholds the platform share from a payout.
func (p *Payment) ApplyCommission(commission float64, now time.Time) error {
	if commission < 0 || commission >= 1 {
		return ErrInvalidCommission
	}
	p.commission = commission
	p.netAmount = p.amount.Sub(p.amount.Fraction(commission))
	p.updatedAt = now
	return nil
}

func (p *Payment) MarkSucceeded(gatewayPaymentID string, now time.Time) {
	p.status = StatusSuccess
	if gatewayPaymentID != "" {
		p.gatewayPaymentID = &gatewayPaymentID
	}
	p.updatedAt = now
}

func (p *Payment) MarkReleased(reference string, now time.Time) {
	p.status = StatusReleased
	if reference != "" {
		p.payoutReference = &reference
	}
	p.failureReason = nil
	p.updatedAt = now
}

func (p *Payment) MarkUnreleased(status Status, reason string, now time.Time) {
	p.status = status
	if reason != "" {
		p.failureReason = &reason
	}
	p.updatedAt = now
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) BookingID() uuid.UUID      { return p.bookingID }
func (p *Payment) UserID() string            { return p.userID }
func (p *Payment) ProviderID() *string       { return p.providerID }
func (p *Payment) Kind() Kind                { return p.kind }
func (p *Payment) OrderID() *string          { return p.orderID }
func (p *Payment) GatewayPaymentID() *string { return p.gatewayPaymentID }
func (p *Payment) Amount() money.Money       { return p.amount }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) Commission() float64       { return p.commission }
func (p *Payment) NetAmount() money.Money    { return p.netAmount }
