package request

import (
	"find-my-space/internal/domain/booking"
)

type CreateBookingRequest struct {
	SpotID        string `json:"spot_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=online cash"`
	Name          string `json:"name" binding:"required,max=120"`
	Vehicle       string `json:"vehicle" binding:"required,max=120"`
	Phone         string `json:"phone" binding:"omitempty,max=20"`
}

// BookingInput is the validated form of a booking request. The time range
// is only checked through TimeRange, after the capacity checks.
type BookingInput struct {
	Date    booking.Date
	Start   booking.ClockTime
	End     booking.ClockTime
	Method  booking.PaymentMethod
	Contact booking.Contact
}

// ToInput runs every field check that needs no stored data.
func (r CreateBookingRequest) ToInput() (BookingInput, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return BookingInput{}, err
	}
	start, err := booking.ParseClockTime(r.StartTime)
	if err != nil {
		return BookingInput{}, err
	}
	end, err := booking.ParseClockTime(r.EndTime)
	if err != nil {
		return BookingInput{}, err
	}
	method, err := booking.NewPaymentMethod(r.PaymentMethod)
	if err != nil {
		return BookingInput{}, err
	}
	contact, err := booking.NewContact(r.Name, r.Vehicle, r.Phone)
	if err != nil {
		return BookingInput{}, err
	}
	return BookingInput{Date: date, Start: start, End: end, Method: method, Contact: contact}, nil
}

func (in BookingInput) TimeRange() (booking.TimeRange, error) {
	return booking.NewTimeRange(in.Start, in.End)
}

// CompletePaymentRequest carries the hosted checkout's success callback fields.
type CompletePaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,max=20"`
	After  string `form:"after"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type CheckInRequest struct {
	Code string `json:"otp" binding:"required,len=6,numeric"`
}
