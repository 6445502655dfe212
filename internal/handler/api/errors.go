package api

import (
	"net/http"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/money"
	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/handler/httperr"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized     = "Unauthorized"
	msgPermissionDenied = "Permission denied: check access rules"
	msgInternal         = "Internal server error"
)

type errorRule struct {
	target error
	status int
	// message overrides the target's own text when set
	message string
}

// Order matters: the first matching rule wins.
var errorRules = []errorRule{
	{target: commands.ErrUnauthenticated, status: http.StatusUnauthorized, message: msgUnauthorized},
	{target: queries.ErrUnauthenticated, status: http.StatusUnauthorized, message: msgUnauthorized},
	{target: commands.ErrPermissionDenied, status: http.StatusForbidden, message: msgPermissionDenied},
	{target: queries.ErrPermissionDenied, status: http.StatusForbidden, message: msgPermissionDenied},
	{target: spot.ErrNotSpotOwner, status: http.StatusForbidden, message: msgPermissionDenied},
	{target: booking.ErrNotBookingProvider, status: http.StatusForbidden, message: msgPermissionDenied},
	{target: commands.ErrEmailNotVerified, status: http.StatusForbidden},

	{target: commands.ErrSpotNotFound, status: http.StatusNotFound},
	{target: queries.ErrSpotNotFound, status: http.StatusNotFound},
	{target: commands.ErrBookingNotFound, status: http.StatusNotFound},
	{target: queries.ErrBookingNotFound, status: http.StatusNotFound},
	{target: queries.ErrProfileNotFound, status: http.StatusNotFound},

	{target: commands.ErrNoCapacity, status: http.StatusConflict},
	{target: commands.ErrSpotInUse, status: http.StatusConflict},
	{target: booking.ErrCancellationClosed, status: http.StatusConflict},
	{target: booking.ErrNotCancellable, status: http.StatusConflict},
	{target: booking.ErrNotVacatable, status: http.StatusConflict},
	{target: booking.ErrNotDeletable, status: http.StatusConflict},
	{target: booking.ErrPaymentNotPending, status: http.StatusConflict},
	{target: booking.ErrNotCheckInable, status: http.StatusConflict},
	{target: booking.ErrNotReleasable, status: http.StatusConflict},

	{target: commands.ErrOrderCreation, status: http.StatusBadGateway},

	{target: commands.ErrInvalidSignature, status: http.StatusBadRequest},
	{target: commands.ErrOrderMismatch, status: http.StatusBadRequest},
	{target: commands.ErrMalformedWebhook, status: http.StatusBadRequest},
	{target: commands.ErrIDProofTooLarge, status: http.StatusRequestEntityTooLarge},
	{target: commands.ErrIDProofContentType, status: http.StatusUnsupportedMediaType},
	{target: booking.ErrCheckInCodeMismatch, status: http.StatusBadRequest},
	{target: booking.ErrInvalidCheckInCode, status: http.StatusBadRequest},
	{target: booking.ErrInvalidClockTime, status: http.StatusBadRequest},
	{target: booking.ErrInvalidTimeRange, status: http.StatusBadRequest},
	{target: booking.ErrInvalidDate, status: http.StatusBadRequest},
	{target: booking.ErrDateInPast, status: http.StatusBadRequest},
	{target: booking.ErrInvalidPaymentMethod, status: http.StatusBadRequest},
	{target: booking.ErrInvalidContact, status: http.StatusBadRequest},
	{target: spot.ErrLocationRequired, status: http.StatusBadRequest},
	{target: spot.ErrInvalidTotalSlots, status: http.StatusBadRequest},
	{target: spot.ErrInvalidPrice, status: http.StatusBadRequest},
	{target: spot.ErrInvalidCoordinates, status: http.StatusBadRequest},
	{target: money.ErrNegativeAmount, status: http.StatusBadRequest},
	{target: provider.ErrPhoneRequired, status: http.StatusBadRequest},
	{target: provider.ErrGovernmentIDFormat, status: http.StatusBadRequest},
	{target: provider.ErrAgreementRequired, status: http.StatusBadRequest},
	{target: provider.ErrSignatureRequired, status: http.StatusBadRequest},
	{target: provider.ErrIDProofRequired, status: http.StatusBadRequest},
	{target: provider.ErrInvalidPayout, status: http.StatusBadRequest},
	{target: queries.ErrInvalidCursor, status: http.StatusBadRequest},
	{target: queries.ErrInvalidStatus, status: http.StatusBadRequest},
	{target: queries.ErrInvalidDate, status: http.StatusBadRequest},
}

// abortWithUseCaseError maps use-case and domain errors onto the public error taxonomy.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, rule := range errorRules {
		if errs.Is(err, rule.target) {
			msg := rule.message
			if msg == "" {
				msg = rule.target.Error()
			}
			httperr.AbortWithError(c, rule.status, err, msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, msgUnauthorized, nil)
}
