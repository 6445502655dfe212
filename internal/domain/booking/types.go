package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusVacated   Status = "vacated"
	StatusReleased  Status = "released"
	StatusActive    Status = "active"
	StatusEscrow    Status = "escrow"
	StatusCheckedIn Status = "checked-in"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusRejected, StatusCancelled, StatusVacated,
		StatusReleased, StatusActive, StatusEscrow, StatusCheckedIn:
		return true
	default:
		return false
	}
}

func (s Status) in(set ...Status) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "pending"
	PaymentPaidEscrow   PaymentStatus = "paid-escrow"
	PaymentPaidReleased PaymentStatus = "paid-released"
	PaymentPaid         PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaidEscrow, PaymentPaidReleased, PaymentPaid:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodOnline PaymentMethod = "online"
	MethodCash   PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodOnline, MethodCash:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
