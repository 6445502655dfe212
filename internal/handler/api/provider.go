package api

import (
	"net/http"

	reqdto "find-my-space/internal/handler/dto/request"
	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	payouts   commands.PayoutCommands
	providers commands.ProviderCommands
	bookings  queries.BookingQueries
	q         queries.ProviderQueries
}

func NewProviderHandler(
	payouts commands.PayoutCommands,
	providers commands.ProviderCommands,
	bookings queries.BookingQueries,
	q queries.ProviderQueries,
) *ProviderHandler {
	return &ProviderHandler{payouts: payouts, providers: providers, bookings: bookings, q: q}
}

// @Summary List bookings on own spots
// @Description Check-in codes are never included
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /provider/bookings [get]
func (h *ProviderHandler) Bookings(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	params, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.bookings.ListProviderBookings(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Provider earnings
// @Description Released earnings, escrow balance and counts per status
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningsResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /provider/earnings [get]
func (h *ProviderHandler) Earnings(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.Earnings(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEarningsView(view))
}

// @Summary Check in a booking
// @Description Verify the user's six digit code
// @Tags provider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckInRequest true "Check-in code"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /provider/bookings/{id}/check-in [post]
func (h *ProviderHandler) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.payouts.CheckIn(c.Request.Context(), actor, id, req.Code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}

// @Summary Release escrowed payment
// @Description Transfer the booking amount minus commission to the provider
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /provider/bookings/{id}/release [post]
func (h *ProviderHandler) Release(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	result, err := h.payouts.ReleasePayout(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}

// @Summary Get provider profile
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProviderProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /provider/profile [get]
func (h *ProviderHandler) Profile(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.Profile(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProviderProfileView(view))
}

// @Summary Submit provider verification
// @Description Multipart form with the id proof file
// @Tags provider
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param phone formData string true "Phone"
// @Param government_id formData string true "Government ID"
// @Param location formData string false "Location"
// @Param signature formData string true "Signature"
// @Param agreement_signed formData bool true "Agreement accepted"
// @Param payout_account_name formData string false "Payout account holder"
// @Param payout_account_number formData string false "Payout account number"
// @Param payout_ifsc formData string false "Payout IFSC"
// @Param id_proof formData file true "ID proof (image or pdf)"
// @Success 200 {object} resdto.ProviderProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /provider/profile [post]
func (h *ProviderHandler) SubmitProfile(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var form reqdto.ProviderProfileForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.providers.SubmitProfile(c.Request.Context(), actor, form); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.Profile(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProviderProfileView(view))
}
