package booking

import (
	"errors"
	"time"

	"find-my-space/internal/domain/money"
	"find-my-space/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidClockTime     = errors.New("invalid time, expected hh:mm AM/PM")
	ErrInvalidTimeRange     = errors.New("end time must be later than start time on the same day")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDateInPast           = errors.New("booking date is in the past")
	ErrInvalidPaymentMethod = errors.New("payment method must be online or cash")
	ErrInvalidContact       = errors.New("name and vehicle number are required")
	ErrInvalidCheckInCode   = errors.New("invalid check-in code")
	ErrCheckInCodeMismatch  = errors.New("check-in code does not match")
	ErrCancellationClosed   = errors.New("bookings can only be cancelled more than 2 hours before start")
	ErrNotCancellable       = errors.New("booking can no longer be cancelled")
	ErrNotVacatable         = errors.New("only confirmed or released bookings can be vacated")
	ErrNotDeletable         = errors.New("only cancelled, vacated or released bookings can be deleted")
	ErrPaymentNotPending    = errors.New("booking has no pending payment")
	ErrNotCheckInable       = errors.New("booking cannot be checked in")
	ErrNotReleasable        = errors.New("payout can only be released for checked-in bookings paid into escrow")
	ErrNotBookingProvider   = errors.New("booking belongs to another provider")
)

type Services struct {
	Clock          clock.Clock
	CostCalculator CostCalculator
	Location       *time.Location
}

// SpotTerms is what a booking copies from the spot at creation time.
type SpotTerms struct {
	ID                    uuid.UUID
	ProviderID            *string
	Name                  string
	Address               string
	PricePerHour          money.Money
	AdvancePaymentAllowed bool
	IsProviderSpot        bool
}

type Requester struct {
	ID    string
	Name  string
	Email string
}

type Booking struct {
	id               uuid.UUID
	spotID           uuid.UUID
	userID           string
	providerID       *string
	spotName         string
	spotAddress      string
	userName         string
	userEmail        string
	contact          Contact
	date             Date
	timeRange        TimeRange
	totalCost        money.Money
	status           Status
	paymentStatus    PaymentStatus
	paymentMethod    PaymentMethod
	checkInCode      *CheckInCode
	orderID          *string
	gatewayPaymentID *string
	payoutTriggered  bool
	slotHeld         bool
	isProviderSpot   bool
	checkedInAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking applies the creation rules of both payment branches. Capacity is
// checked by the caller; a new booking always holds one unit of the spot counter.
func NewBooking(
	services *Services,
	spot SpotTerms,
	requester Requester,
	date Date,
	timeRange TimeRange,
	method PaymentMethod,
	contact Contact,
) (*Booking, error) {
	if requester.ID == "" {
		return nil, errors.New("requester id is required")
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	now := services.Clock.Now()
	if date.Before(DateOf(now.In(services.Location))) {
		return nil, ErrDateInPast
	}
	if timeRange.Minutes() <= 0 {
		return nil, ErrInvalidTimeRange
	}

	b := &Booking{
		id:             uuid.New(),
		spotID:         spot.ID,
		userID:         requester.ID,
		providerID:     spot.ProviderID,
		spotName:       spot.Name,
		spotAddress:    spot.Address,
		userName:       requester.Name,
		userEmail:      requester.Email,
		contact:        contact,
		date:           date,
		timeRange:      timeRange,
		totalCost:      services.CostCalculator.Cost(spot.PricePerHour, timeRange),
		paymentMethod:  method,
		paymentStatus:  PaymentPending,
		status:         StatusConfirmed,
		slotHeld:       true,
		isProviderSpot: spot.IsProviderSpot,
		createdAt:      now,
		updatedAt:      now,
	}

	switch method {
	case MethodCash:
		// Settlement state leaks into occupancy here: advance-payment spots mark
		// cash bookings released. Kept as observed in production data.
		if spot.AdvancePaymentAllowed {
			b.status = StatusReleased
		}
	case MethodOnline:
	default:
		return nil, ErrInvalidPaymentMethod
	}

	return b, nil
}

// Record is the persisted shape of a booking.
type Record struct {
	ID               uuid.UUID
	SpotID           uuid.UUID
	UserID           string
	ProviderID       *string
	SpotName         string
	SpotAddress      string
	UserName         string
	UserEmail        string
	ContactName      string
	VehicleNumber    string
	Phone            string
	Date             Date
	StartMinute      int
	EndMinute        int
	TotalCostPaise   int64
	Status           Status
	PaymentStatus    PaymentStatus
	PaymentMethod    PaymentMethod
	CheckInCode      *string
	OrderID          *string
	GatewayPaymentID *string
	PayoutTriggered  bool
	SlotHeld         bool
	IsProviderSpot   bool
	CheckedInAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(r Record) *Booking {
	start, _ := ClockTimeFromMinute(r.StartMinute)
	end, _ := ClockTimeFromMinute(r.EndMinute)
	cost, _ := money.FromPaise(r.TotalCostPaise)

	var code *CheckInCode
	if r.CheckInCode != nil {
		c := CheckInCode(*r.CheckInCode)
		code = &c
	}

	return &Booking{
		id:               r.ID,
		spotID:           r.SpotID,
		userID:           r.UserID,
		providerID:       r.ProviderID,
		spotName:         r.SpotName,
		spotAddress:      r.SpotAddress,
		userName:         r.UserName,
		userEmail:        r.UserEmail,
		contact:          Contact{name: r.ContactName, vehicle: r.VehicleNumber, phone: r.Phone},
		date:             r.Date,
		timeRange:        TimeRange{start: start, end: end},
		totalCost:        cost,
		status:           r.Status,
		paymentStatus:    r.PaymentStatus,
		paymentMethod:    r.PaymentMethod,
		checkInCode:      code,
		orderID:          r.OrderID,
		gatewayPaymentID: r.GatewayPaymentID,
		payoutTriggered:  r.PayoutTriggered,
		slotHeld:         r.SlotHeld,
		isProviderSpot:   r.IsProviderSpot,
		checkedInAt:      r.CheckedInAt,
		createdAt:        r.CreatedAt,
		updatedAt:        r.UpdatedAt,
	}
}

func (b *Booking) Record() Record {
	var code *string
	if b.checkInCode != nil {
		s := b.checkInCode.String()
		code = &s
	}
	return Record{
		ID:               b.id,
		SpotID:           b.spotID,
		UserID:           b.userID,
		ProviderID:       b.providerID,
		SpotName:         b.spotName,
		SpotAddress:      b.spotAddress,
		UserName:         b.userName,
		UserEmail:        b.userEmail,
		ContactName:      b.contact.name,
		VehicleNumber:    b.contact.vehicle,
		Phone:            b.contact.phone,
		Date:             b.date,
		StartMinute:      b.timeRange.start.minute,
		EndMinute:        b.timeRange.end.minute,
		TotalCostPaise:   b.totalCost.Paise(),
		Status:           b.status,
		PaymentStatus:    b.paymentStatus,
		PaymentMethod:    b.paymentMethod,
		CheckInCode:      code,
		OrderID:          b.orderID,
		GatewayPaymentID: b.gatewayPaymentID,
		PayoutTriggered:  b.payoutTriggered,
		SlotHeld:         b.slotHeld,
		IsProviderSpot:   b.isProviderSpot,
		CheckedInAt:      b.checkedInAt,
		CreatedAt:        b.createdAt,
		UpdatedAt:        b.updatedAt,
	}
}

func (b *Booking) touch(now time.Time) {
	b.updatedAt = now
}

// StartAt is the booking start as an instant in loc.
func (b *Booking) StartAt(loc *time.Location) time.Time {
	return b.date.At(b.timeRange.start, loc)
}

func (b *Booking) IsOwnedBy(userID string) bool {
	return b.userID == userID
}

func (b *Booking) IsProvidedBy(providerID string) bool {
	return b.providerID != nil && *b.providerID == providerID
}

// IssueCheckInCode sets the arrival code once; cash bookings get it at creation.
func (b *Booking) IssueCheckInCode(code CheckInCode) {
	if b.checkInCode == nil {
		b.checkInCode = &code
	}
}

// AttachOrder records the gateway order a pending payment will settle.
func (b *Booking) AttachOrder(orderID string, now time.Time) error {
	if b.paymentStatus != PaymentPending || b.status.in(StatusCancelled, StatusRejected, StatusVacated) {
		return ErrPaymentNotPending
	}
	b.orderID = &orderID
	b.touch(now)
	return nil
}

// AcceptPayment stores the gateway payment and the check-in code issued for it.
// The payment status is moved separately by MarkPaid once the payment is recorded.
func (b *Booking) AcceptPayment(orderID, gatewayPaymentID string, code CheckInCode, now time.Time) error {
	if b.paymentStatus != PaymentPending || b.status.in(StatusCancelled, StatusRejected, StatusVacated) {
		return ErrPaymentNotPending
	}
	b.orderID = &orderID
	b.gatewayPaymentID = &gatewayPaymentID
	b.checkInCode = &code
	b.paymentMethod = MethodOnline
	b.touch(now)
	return nil
}

// MarkPaid settles a pending payment into escrow, or straight to the provider
// when the spot takes advance payment.
func (b *Booking) MarkPaid(advancePaymentAllowed bool, now time.Time) error {
	if b.paymentStatus != PaymentPending {
		return ErrPaymentNotPending
	}
	b.paymentStatus = PaymentPaidEscrow
	if advancePaymentAllowed {
		b.paymentStatus = PaymentPaidReleased
	}
	b.touch(now)
	return nil
}

// Cancel is allowed strictly more than window before the start.
func (b *Booking) Cancel(now time.Time, loc *time.Location, window time.Duration) error {
	if b.status.in(StatusCancelled, StatusRejected, StatusVacated) {
		return ErrNotCancellable
	}
	if b.StartAt(loc).Sub(now) <= window {
		return ErrCancellationClosed
	}
	b.status = StatusCancelled
	b.touch(now)
	return nil
}

// Vacate reports false when the booking was already vacated.
func (b *Booking) Vacate(now time.Time) (bool, error) {
	if b.status == StatusVacated {
		return false, nil
	}
	if !b.status.in(StatusConfirmed, StatusReleased) {
		return false, ErrNotVacatable
	}
	b.status = StatusVacated
	b.touch(now)
	return true, nil
}

// HandBackSlot clears the held slot and reports whether the spot counter
// must be incremented. It returns true at most once per booking.
func (b *Booking) HandBackSlot() bool {
	if !b.slotHeld {
		return false
	}
	b.slotHeld = false
	return true
}

func (b *Booking) EnsureDeletable() error {
	if !b.status.in(StatusCancelled, StatusVacated, StatusReleased) {
		return ErrNotDeletable
	}
	return nil
}

// CheckIn marks the user parked. Repeated calls report alreadyCheckedIn.
func (b *Booking) CheckIn(providerID string, code CheckInCode, now time.Time) (alreadyCheckedIn bool, err error) {
	if !b.IsProvidedBy(providerID) {
		return false, ErrNotBookingProvider
	}
	if b.status.in(StatusCancelled, StatusVacated, StatusRejected) {
		return false, ErrNotCheckInable
	}
	if b.checkInCode == nil || *b.checkInCode != code {
		return false, ErrCheckInCodeMismatch
	}
	if b.payoutTriggered || b.status == StatusCheckedIn {
		return true, nil
	}

	b.status = StatusCheckedIn
	b.payoutTriggered = true
	b.checkedInAt = &now
	b.touch(now)
	return false, nil
}

// ReleasePayout forwards escrowed funds. Irreversible.
func (b *Booking) ReleasePayout(providerID string, now time.Time) error {
	if !b.IsProvidedBy(providerID) {
		return ErrNotBookingProvider
	}
	if b.paymentStatus != PaymentPaidEscrow || b.status != StatusCheckedIn {
		return ErrNotReleasable
	}
	b.paymentStatus = PaymentPaidReleased
	b.status = StatusReleased
	b.touch(now)
	return nil
}

// SettleFromWebhook settles a still-pending payment the way the checkout
// callback does. A code issued earlier is kept. It never downgrades.
func (b *Booking) SettleFromWebhook(orderID, gatewayPaymentID string, code CheckInCode, advancePaymentAllowed bool, now time.Time) bool {
	if b.paymentStatus != PaymentPending || b.status.in(StatusCancelled, StatusRejected, StatusVacated) {
		return false
	}
	if b.checkInCode != nil {
		code = *b.checkInCode
	}
	if gatewayPaymentID == "" && b.gatewayPaymentID != nil {
		gatewayPaymentID = *b.gatewayPaymentID
	}
	if err := b.AcceptPayment(orderID, gatewayPaymentID, code, now); err != nil {
		return false
	}
	if gatewayPaymentID == "" {
		b.gatewayPaymentID = nil
	}
	return b.MarkPaid(advancePaymentAllowed, now) == nil
}

// EnsureCheckInCode issues code to a paid booking that has none yet.
func (b *Booking) EnsureCheckInCode(code CheckInCode, now time.Time) bool {
	if b.checkInCode != nil || b.paymentStatus == PaymentPending {
		return false
	}
	b.checkInCode = &code
	b.touch(now)
	return true
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) SpotID() uuid.UUID             { return b.spotID }
func (b *Booking) UserID() string                { return b.userID }
func (b *Booking) ProviderID() *string           { return b.providerID }
func (b *Booking) SpotName() string              { return b.spotName }
func (b *Booking) SpotAddress() string           { return b.spotAddress }
func (b *Booking) UserName() string              { return b.userName }
func (b *Booking) UserEmail() string             { return b.userEmail }
func (b *Booking) Contact() Contact              { return b.contact }
func (b *Booking) Date() Date                    { return b.date }
func (b *Booking) TimeRange() TimeRange          { return b.timeRange }
func (b *Booking) Hours() float64                { return b.timeRange.Hours() }
func (b *Booking) TotalCost() money.Money        { return b.totalCost }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus  { return b.paymentStatus }
func (b *Booking) PaymentMethod() PaymentMethod  { return b.paymentMethod }
func (b *Booking) CheckInCode() *CheckInCode     { return b.checkInCode }
func (b *Booking) OrderID() *string              { return b.orderID }
func (b *Booking) GatewayPaymentID() *string     { return b.gatewayPaymentID }
func (b *Booking) PayoutTriggered() bool         { return b.payoutTriggered }
func (b *Booking) SlotHeld() bool                { return b.slotHeld }
func (b *Booking) IsProviderSpot() bool          { return b.isProviderSpot }
func (b *Booking) CheckedInAt() *time.Time       { return b.checkedInAt }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
