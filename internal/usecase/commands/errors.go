package commands

import (
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/errs"
)

var (
	ErrUnauthenticated    = errs.New("Unauthorized")
	ErrPermissionDenied   = errs.New("Permission denied: check access rules")
	ErrEmailNotVerified   = errs.New("please verify your email address before booking")
	ErrSpotNotFound       = errs.New("spot not found")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrNoCapacity         = errs.New("No slots available, please refresh")
	ErrSpotInUse          = errs.New("spot has upcoming bookings")
	ErrOrderCreation      = errs.New("payment order could not be created")
	ErrInvalidSignature   = errs.New("payment signature verification failed")
	ErrOrderMismatch      = errs.New("order does not belong to this booking")
	ErrMalformedWebhook   = errs.New("malformed webhook payload")
	ErrIDProofTooLarge    = errs.New("id proof exceeds the upload limit")
	ErrIDProofContentType = errs.New("id proof must be an image or a pdf")
	ErrIDProofUpload      = errs.New("id proof could not be stored")
)

// PaymentRecordWarning is returned with a confirmed booking whose charge record could not be written.
const PaymentRecordWarning = "Booking is confirmed. Payment record failed, please contact support."

// notFoundAs marks repository misses with the use-case sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
