package response

import (
	"time"

	"find-my-space/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type EarningsResponse struct {
	ProviderID          string         `json:"provider_id"`
	TotalEarnings       float64        `json:"total_earnings"`
	TotalEarningsPaise  int64          `json:"total_earnings_paise"`
	ReleasedBookings    int            `json:"released_bookings"`
	Escrow              float64        `json:"escrow"`
	EscrowPaise         int64          `json:"escrow_paise"`
	StatusCounts        map[string]int `json:"status_counts"`
	PaymentStatusCounts map[string]int `json:"payment_status_counts"`
}

type ProviderProfileResponse struct {
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	GovernmentIDLast4  string    `json:"government_id_last4"`
	IDProofURL         string    `json:"id_proof_url"`
	AgreementSigned    bool      `json:"agreement_signed"`
	Location           string    `json:"location"`
	Verified           bool      `json:"verified"`
	HasPayoutDetails   bool      `json:"has_payout_details"`
	PayoutAccountLast4 string    `json:"payout_account_last4,omitempty"`
	PayoutIFSC         string    `json:"payout_ifsc,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type IdentityResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Role          string `json:"role"`
}

func FromEarningsView(v *queries.EarningsView) *EarningsResponse {
	var r EarningsResponse
	_ = copier.Copy(&r, v)
	r.TotalEarnings = paiseToRupees(v.TotalEarningsPaise)
	r.Escrow = paiseToRupees(v.EscrowPaise)
	return &r
}

func FromProviderProfileView(v *queries.ProviderProfileView) *ProviderProfileResponse {
	var r ProviderProfileResponse
	_ = copier.Copy(&r, v)
	return &r
}
