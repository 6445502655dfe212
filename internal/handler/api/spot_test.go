//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"find-my-space/internal/domain/spot"
	"find-my-space/internal/handler/api"
	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"
	"find-my-space/tests/common/builder"
	"find-my-space/tests/common/httptest"
	"find-my-space/tests/common/testutil"
	commandsmock "find-my-space/tests/mock/commands"
	queriesmock "find-my-space/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpotCommands
	mockQueries  *queriesmock.MockSpotQueries
	mockAvail    *queriesmock.MockAvailabilityQueries
	handler      *api.SpotHandler
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpotQueries(s.mockCtrl)
	s.mockAvail = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSpotHandler(s.mockCommands, s.mockQueries, s.mockAvail)

	auth, _, _ := newTestAuth()

	s.router.GET("/spots", s.handler.List)
	s.router.GET("/spots/:id", s.handler.Get)
	s.router.GET("/spots/:id/availability", s.handler.Calendar)
	s.router.GET("/availability/today", s.handler.Today)

	provider := s.router.Group("", auth.RequireAuth(), auth.RequireProvider())
	provider.POST("/spots", s.handler.Create)
	provider.PUT("/spots/:id", s.handler.Update)
	provider.DELETE("/spots/:id", s.handler.Delete)
	provider.GET("/provider/spots", s.handler.ProviderSpots)
}

func (s *SpotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

func (s *SpotHandlerTestSuite) TestList() {
	view := builder.NewSpotBuilder().BuildView()
	view.AvailableToday = 4

	s.Run("success: forwards the filters", func() {
		event := true
		want := queries.SpotFilter{Event: &event, OnlyAvailable: true}
		s.mockQueries.EXPECT().ListSpots(gomock.Any(), want).Return([]*queries.SpotView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots?event=true&only_available=true", nil, "")

		var body []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(4, body[0].AvailableToday)
		s.Equal(50.0, body[0].PricePerHour)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListSpots(gomock.Any(), queries.SpotFilter{}).Return([]*queries.SpotView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on a malformed flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots?event=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *SpotHandlerTestSuite) TestGet() {
	view := builder.NewSpotBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetSpot(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+view.ID.String(), nil, "")

		var body resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.FromSpotView(view)
		if diff := cmp.Diff(want.ID, body.ID); diff != "" {
			s.T().Errorf("id mismatch (-want +got):\n%s", diff)
		}
		s.Equal(want.Location, body.Location)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetSpot(gomock.Any(), view.ID).Return(nil, queries.ErrSpotNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "spot not found")
	})
}

func (s *SpotHandlerTestSuite) TestAvailability() {
	id := uuid.New()

	s.Run("calendar: passes from and days", func() {
		view := &queries.CalendarView{SpotID: id, Days: []queries.DayAvailabilityView{
			{Date: "2025-08-20", Total: 1, Occupied: 1, Available: 0},
		}}
		s.mockAvail.EXPECT().Calendar(gomock.Any(), id, "2025-08-20", 1).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+id.String()+"/availability?from=2025-08-20&days=1", nil, "")

		var body queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		if diff := cmp.Diff(*view, body); diff != "" {
			s.T().Errorf("calendar mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("calendar: 400 beyond the day limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+id.String()+"/availability?days=32", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("calendar: 400 on a malformed date", func() {
		s.mockAvail.EXPECT().Calendar(gomock.Any(), id, "20-08-2025", 0).Return(nil, queries.ErrInvalidDate).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+id.String()+"/availability?from=20-08-2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid date")
	})

	s.Run("today", func() {
		s.mockAvail.EXPECT().Today(gomock.Any()).Return(&queries.TodayView{Date: "2025-08-19", Spots: 2, TotalSlots: 12, AvailableSlots: 7}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/today", nil, "")

		var body queries.TodayView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(7, body.AvailableSlots)
	})
}

func (s *SpotHandlerTestSuite) TestCreate() {
	req := builder.NewSpotBuilder().BuildCreateRequestDTO()
	view := builder.NewSpotBuilder().BuildView()

	s.Run("success: 201 with the stored spot", func() {
		s.mockCommands.EXPECT().CreateSpot(gomock.Any(), gomock.Any(), req).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetSpot(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots", req, providerToken)

		var body resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 403 for a plain user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots", req, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied: check access rules")
	})

	s.Run("error: 400 when total_slots is zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots",
			testutil.DtoMap(s.T(), req, testutil.Field("total_slots", 0)), providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when location is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots",
			testutil.DtoMap(s.T(), req, testutil.Field("location", nil)), providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on bad coordinates", func() {
		s.mockCommands.EXPECT().CreateSpot(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, spot.ErrInvalidCoordinates).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots",
			testutil.DtoMap(s.T(), req, testutil.Field("lat", 123.0), testutil.Field("lng", 77.6)), providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SpotHandlerTestSuite) TestUpdateAndDelete() {
	id := uuid.New()

	s.Run("update: 403 for a spot owned by someone else", func() {
		s.mockCommands.EXPECT().UpdateSpot(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(spot.ErrNotSpotOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/spots/"+id.String(), map[string]any{"total_slots": 3}, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied: check access rules")
	})

	s.Run("delete: 409 while bookings are upcoming", func() {
		s.mockCommands.EXPECT().DeleteSpot(gomock.Any(), gomock.Any(), id).Return(commands.ErrSpotInUse).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spots/"+id.String(), nil, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "upcoming bookings")
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().DeleteSpot(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spots/"+id.String(), nil, providerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
