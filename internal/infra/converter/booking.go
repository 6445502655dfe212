package converter

import (
	"time"

	"find-my-space/internal/domain/booking"

	"github.com/jackc/pgx/v5"
)

var BookingColumns = []string{
	"id", "spot_id", "user_id", "provider_id", "spot_name", "spot_address", "user_name", "user_email",
	"contact_name", "vehicle_number", "phone", "booking_date", "start_minute", "end_minute",
	"total_cost_paise", "status", "payment_status", "payment_method", "otp", "order_id",
	"gateway_payment_id", "payout_triggered", "slot_held", "is_provider_spot", "checked_in_at",
	"created_at", "updated_at",
}

// BookingToRow also writes the display times and hours derived from the minutes.
func BookingToRow(b *booking.Booking) map[string]any {
	r := b.Record()
	tr := b.TimeRange()
	return map[string]any{
		"id":                 r.ID,
		"spot_id":            r.SpotID,
		"user_id":            r.UserID,
		"provider_id":        r.ProviderID,
		"spot_name":          r.SpotName,
		"spot_address":       r.SpotAddress,
		"user_name":          r.UserName,
		"user_email":         r.UserEmail,
		"contact_name":       r.ContactName,
		"vehicle_number":     r.VehicleNumber,
		"phone":              r.Phone,
		"booking_date":       r.Date.Time(),
		"start_time":         tr.Start().String12(),
		"end_time":           tr.End().String12(),
		"start_minute":       r.StartMinute,
		"end_minute":         r.EndMinute,
		"hours":              tr.Hours(),
		"total_cost_paise":   r.TotalCostPaise,
		"status":             r.Status.String(),
		"payment_status":     r.PaymentStatus.String(),
		"payment_method":     r.PaymentMethod.String(),
		"otp":                r.CheckInCode,
		"order_id":           r.OrderID,
		"gateway_payment_id": r.GatewayPaymentID,
		"payout_triggered":   r.PayoutTriggered,
		"slot_held":          r.SlotHeld,
		"is_provider_spot":   r.IsProviderSpot,
		"checked_in_at":      r.CheckedInAt,
		"created_at":         r.CreatedAt,
		"updated_at":         r.UpdatedAt,
	}
}

// ScanBooking reads a row selected with BookingColumns.
func ScanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		r                             booking.Record
		date                          time.Time
		status, paymentStatus, method string
	)
	err := row.Scan(
		&r.ID, &r.SpotID, &r.UserID, &r.ProviderID, &r.SpotName, &r.SpotAddress, &r.UserName, &r.UserEmail,
		&r.ContactName, &r.VehicleNumber, &r.Phone, &date, &r.StartMinute, &r.EndMinute,
		&r.TotalCostPaise, &status, &paymentStatus, &method, &r.CheckInCode, &r.OrderID,
		&r.GatewayPaymentID, &r.PayoutTriggered, &r.SlotHeld, &r.IsProviderSpot, &r.CheckedInAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Date = booking.DateOf(date)
	r.Status = booking.Status(status)
	r.PaymentStatus = booking.PaymentStatus(paymentStatus)
	r.PaymentMethod = booking.PaymentMethod(method)
	return booking.Reconstruct(r), nil
}

func StatusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
