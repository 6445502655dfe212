package request

import (
	"mime/multipart"

	"find-my-space/internal/domain/provider"
)

// ProviderProfileForm is the multipart verification form; the id proof arrives as a file part.
type ProviderProfileForm struct {
	Name              string                `form:"name" binding:"max=120"`
	Phone             string                `form:"phone" binding:"required,max=20"`
	GovernmentID      string                `form:"government_id" binding:"required,max=40"`
	Location          string                `form:"location" binding:"max=200"`
	Signature         string                `form:"signature" binding:"required,max=200"`
	AgreementSigned   bool                  `form:"agreement_signed"`
	PayoutAccountName string                `form:"payout_account_name" binding:"max=120"`
	PayoutAccountNo   string                `form:"payout_account_number" binding:"max=18"`
	PayoutIFSC        string                `form:"payout_ifsc" binding:"max=11"`
	IDProof           *multipart.FileHeader `form:"id_proof" binding:"required"`
}

func (f ProviderProfileForm) ToApplication(userID, fallbackName, email string) (provider.Application, error) {
	payout, err := provider.NewPayoutDetails(f.PayoutAccountName, f.PayoutAccountNo, f.PayoutIFSC)
	if err != nil {
		return provider.Application{}, err
	}
	name := f.Name
	if name == "" {
		name = fallbackName
	}
	return provider.Application{
		UserID:          userID,
		Name:            name,
		Email:           email,
		Phone:           f.Phone,
		GovernmentID:    f.GovernmentID,
		AgreementSigned: f.AgreementSigned,
		Signature:       f.Signature,
		Location:        f.Location,
		Payout:          payout,
	}, nil
}
