package response

import (
	"time"

	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	SpotID          uuid.UUID  `json:"spot_id"`
	SpotName        string     `json:"spot_name"`
	SpotAddress     string     `json:"spot_address"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	ProviderID      *string    `json:"provider_id,omitempty"`
	ContactName     string     `json:"name"`
	VehicleNumber   string     `json:"vehicle"`
	Phone           string     `json:"phone"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	StartTime24     string     `json:"start_time_24"`
	EndTime24       string     `json:"end_time_24"`
	Hours           float64    `json:"hours"`
	TotalCost       float64    `json:"total_cost"`
	TotalCostPaise  int64      `json:"total_cost_paise"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentMethod   string     `json:"payment_method"`
	CheckInCode     *string    `json:"otp,omitempty"`
	OrderID         *string    `json:"order_id,omitempty"`
	PayoutTriggered bool       `json:"payout_triggered"`
	CheckedInAt     *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingPageResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type OrderResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	AmountPaise int64   `json:"amount_paise"`
	Currency    string  `json:"currency"`
	KeyID       string  `json:"key_id"`
}

type CreateBookingResponse struct {
	ID             uuid.UUID      `json:"id"`
	Status         string         `json:"status"`
	PaymentStatus  string         `json:"payment_status"`
	Hours          float64        `json:"hours"`
	TotalCost      float64        `json:"total_cost"`
	TotalCostPaise int64          `json:"total_cost_paise"`
	Order          *OrderResponse `json:"order,omitempty"`
}

type CompletePaymentResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	PaymentStatus string    `json:"payment_status"`
	CheckInCode   string    `json:"otp"`
	Warning       string    `json:"warning,omitempty"`
}

type CheckInResponse struct {
	BookingID        uuid.UUID `json:"booking_id"`
	Status           string    `json:"status"`
	AlreadyCheckedIn bool      `json:"already_checked_in"`
}

type ReleaseResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	PaymentStatus string    `json:"payment_status"`
	PayoutStatus  string    `json:"payout_status"`
	Amount        float64   `json:"amount"`
	NetAmount     float64   `json:"net_amount"`
	Commission    float64   `json:"commission"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var r BookingResponse
	_ = copier.Copy(&r, v)
	r.TotalCost = paiseToRupees(v.TotalCostPaise)
	return &r
}

func FromBookingPage(p *queries.BookingPage) *BookingPageResponse {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookingView(v)
	}
	return &BookingPageResponse{Items: items, NextCursor: p.NextCursor}
}

func FromOrderInfo(o *commands.OrderInfo) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		OrderID:     o.OrderID,
		Amount:      paiseToRupees(o.AmountPaise),
		AmountPaise: o.AmountPaise,
		Currency:    o.Currency,
		KeyID:       o.KeyID,
	}
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:             r.BookingID,
		Status:         r.Status.String(),
		PaymentStatus:  r.PaymentStatus.String(),
		Hours:          r.Hours,
		TotalCost:      r.TotalCost.Rupees(),
		TotalCostPaise: r.TotalCost.Paise(),
		Order:          FromOrderInfo(r.Order),
	}
}

func FromCompletePaymentResult(r *commands.CompletePaymentResult) *CompletePaymentResponse {
	return &CompletePaymentResponse{
		BookingID:     r.BookingID,
		PaymentStatus: r.PaymentStatus.String(),
		CheckInCode:   r.CheckInCode,
		Warning:       r.Warning,
	}
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	var out CheckInResponse
	_ = copier.Copy(&out, r)
	out.Status = r.Status.String()
	return &out
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		BookingID:     r.BookingID,
		PaymentStatus: r.PaymentStatus.String(),
		PayoutStatus:  r.PayoutStatus.String(),
		Amount:        paiseToRupees(r.AmountPaise),
		NetAmount:     paiseToRupees(r.NetAmountPaise),
		Commission:    r.Commission,
	}
}
