package api

import (
	"net/http"

	reqdto "find-my-space/internal/handler/dto/request"
	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds  commands.SpotCommands
	q     queries.SpotQueries
	avail queries.AvailabilityQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries, avail queries.AvailabilityQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q, avail: avail}
}

// @Summary List parking spots
// @Description List spots with today's remaining capacity
// @Tags spots
// @Produce json
// @Param event query bool false "Only event spots (true) or only regular spots (false)"
// @Param provider_spots query bool false "Filter by provider-owned spots"
// @Param only_available query bool false "Hide spots with no free slot today"
// @Success 200 {array} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	var q reqdto.ListSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	views, err := h.q.ListSpots(c.Request.Context(), queries.SpotFilter{
		Event:         q.Event,
		ProviderSpots: q.ProviderSpots,
		OnlyAvailable: q.OnlyAvailable,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

// @Summary Get parking spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetSpot(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Spot availability calendar
// @Description Remaining capacity per day, starting at from (default today)
// @Tags availability
// @Produce json
// @Param id path string true "Spot ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param days query int false "Number of days (default 7, max 31)"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/availability [get]
func (h *SpotHandler) Calendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	view, err := h.avail.Calendar(c.Request.Context(), id, q.From, q.Days)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Today's availability
// @Description Free slots across all spots for the current day
// @Tags availability
// @Produce json
// @Success 200 {object} queries.TodayView
// @Failure 500 {object} httperr.Response
// @Router /availability/today [get]
func (h *SpotHandler) Today(c *gin.Context) {
	view, err := h.avail.Today(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create parking spot
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Spot"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateSpot(c.Request.Context(), actor, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetSpot(c.Request.Context(), id)
	if err != nil {
		// the spot exists; fall back to its id
		c.JSON(http.StatusCreated, resdto.SpotCreatedResponse{ID: id})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

// @Summary Update parking spot
// @Description Partial update of an owned spot
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotRequest true "Fields to change"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateSpot(c.Request.Context(), actor, id, req); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetSpot(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Delete parking spot
// @Description Refused while the spot has upcoming bookings
// @Tags spots
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	if err := h.cmds.DeleteSpot(c.Request.Context(), actor, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List own spots
// @Tags provider
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SpotResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /provider/spots [get]
func (h *SpotHandler) ProviderSpots(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	views, err := h.q.ListProviderSpots(c.Request.Context(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
