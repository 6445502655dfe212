package converter

import (
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/provider"

	"github.com/jackc/pgx/v5"
)

var PaymentColumns = []string{
	"id", "booking_id", "user_id", "provider_id", "kind", "order_id", "gateway_payment_id",
	"amount_paise", "currency", "method", "status", "commission", "net_amount_paise",
	"payout_reference", "failure_reason", "created_at", "updated_at",
}

func PaymentToRow(p *payment.Payment) map[string]any {
	r := p.Record()
	return map[string]any{
		"id":                 r.ID,
		"booking_id":         r.BookingID,
		"user_id":            r.UserID,
		"provider_id":        r.ProviderID,
		"kind":               string(r.Kind),
		"order_id":           r.OrderID,
		"gateway_payment_id": r.GatewayPaymentID,
		"amount_paise":       r.AmountPaise,
		"currency":           r.Currency,
		"method":             r.Method,
		"status":             r.Status.String(),
		"commission":         r.Commission,
		"net_amount_paise":   r.NetAmountPaise,
		"payout_reference":   r.PayoutReference,
		"failure_reason":     r.FailureReason,
		"created_at":         r.CreatedAt,
		"updated_at":         r.UpdatedAt,
	}
}

func ScanPayment(row pgx.Row) (*payment.Payment, error) {
	var (
		r            payment.Record
		kind, status string
	)
	err := row.Scan(
		&r.ID, &r.BookingID, &r.UserID, &r.ProviderID, &kind, &r.OrderID, &r.GatewayPaymentID,
		&r.AmountPaise, &r.Currency, &r.Method, &status, &r.Commission, &r.NetAmountPaise,
		&r.PayoutReference, &r.FailureReason, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Kind = payment.Kind(kind)
	r.Status = payment.Status(status)
	return payment.Reconstruct(r), nil
}

var ProviderColumns = []string{
	"user_id", "name", "email", "phone", "government_id_hash", "government_id_last4", "id_proof_url",
	"agreement_signed", "signature", "location", "verified", "payout_account_name",
	"payout_account_number", "payout_ifsc", "created_at", "updated_at",
}

func ProviderToRow(p *provider.Profile) map[string]any {
	r := p.Record()
	var name, number, ifsc *string
	if r.Payout != nil {
		name, number, ifsc = &r.Payout.AccountName, &r.Payout.AccountNumber, &r.Payout.IFSC
	}
	return map[string]any{
		"user_id":               r.UserID,
		"name":                  r.Name,
		"email":                 r.Email,
		"phone":                 r.Phone,
		"government_id_hash":    r.GovernmentIDHash,
		"government_id_last4":   r.GovernmentIDLast4,
		"id_proof_url":          r.IDProofURL,
		"agreement_signed":      r.AgreementSigned,
		"signature":             r.Signature,
		"location":              r.Location,
		"verified":              r.Verified,
		"payout_account_name":   name,
		"payout_account_number": number,
		"payout_ifsc":           ifsc,
		"created_at":            r.CreatedAt,
		"updated_at":            r.UpdatedAt,
	}
}

func ScanProvider(row pgx.Row) (*provider.Profile, error) {
	var (
		r                  provider.Record
		name, number, ifsc *string
	)
	err := row.Scan(
		&r.UserID, &r.Name, &r.Email, &r.Phone, &r.GovernmentIDHash, &r.GovernmentIDLast4, &r.IDProofURL,
		&r.AgreementSigned, &r.Signature, &r.Location, &r.Verified, &name,
		&number, &ifsc, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if name != nil && number != nil && ifsc != nil {
		r.Payout = &provider.PayoutDetails{AccountName: *name, AccountNumber: *number, IFSC: *ifsc}
	}
	return provider.Reconstruct(r), nil
}
