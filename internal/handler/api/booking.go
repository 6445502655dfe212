package api

import (
	"context"
	"net/http"

	"find-my-space/internal/domain/user"
	reqdto "find-my-space/internal/handler/dto/request"
	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	payments commands.PaymentCommands
	q        queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, payments commands.PaymentCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, payments: payments, q: q}
}

// @Summary Create booking
// @Description Book one slot of a spot for a time window on a date. Online bookings return a payment order.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary List my bookings
// @Description Newest first with keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	params, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.q.ListUserBookings(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Allowed until two hours before the start time
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Vacate booking
// @Description Leave early and free the slot
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/vacate [post]
func (h *BookingHandler) Vacate(c *gin.Context) {
	h.transition(c, h.cmds.VacateBooking)
}

// @Summary Delete booking
// @Description Only finished bookings can be removed
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	h.transition(c, h.cmds.DeleteBooking)
}

// @Summary Create payment order
// @Description Retry checkout for a pending online booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/payment-order [post]
func (h *BookingHandler) PaymentOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	order, err := h.payments.CreatePaymentOrder(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderInfo(order))
}

// @Summary Complete online payment
// @Description Verify the checkout signature and hold the amount in escrow
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CompletePaymentRequest true "Checkout callback"
// @Success 200 {object} resdto.CompletePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) CompletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.payments.CompleteOnlinePayment(c.Request.Context(), actor, id, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletePaymentResult(result))
}

type bookingTransition func(ctx context.Context, actor *user.Identity, id uuid.UUID) error

func (h *BookingHandler) transition(c *gin.Context, fn bookingTransition) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	if err := fn(c.Request.Context(), actor, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindListParams(c *gin.Context) (queries.ListParams, bool) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return queries.ListParams{}, false
	}
	return queries.ListParams{Status: q.Status, After: q.After, Limit: q.Limit}, true
}
