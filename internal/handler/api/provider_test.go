//go:build unit

package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/payment"
	"find-my-space/internal/domain/user"
	"find-my-space/internal/handler/api"
	reqdto "find-my-space/internal/handler/dto/request"
	resdto "find-my-space/internal/handler/dto/response"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"
	"find-my-space/tests/common/httptest"
	commandsmock "find-my-space/tests/mock/commands"
	queriesmock "find-my-space/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProviderHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockPayouts   *commandsmock.MockPayoutCommands
	mockProviders *commandsmock.MockProviderCommands
	mockBookings  *queriesmock.MockBookingQueries
	mockQueries   *queriesmock.MockProviderQueries
	provider      *user.Identity
}

func (s *ProviderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayouts = commandsmock.NewMockPayoutCommands(s.mockCtrl)
	s.mockProviders = commandsmock.NewMockProviderCommands(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProviderQueries(s.mockCtrl)
	h := api.NewProviderHandler(s.mockPayouts, s.mockProviders, s.mockBookings, s.mockQueries)

	auth, _, p := newTestAuth()
	s.provider = p

	authed := s.router.Group("/provider", auth.RequireAuth())
	authed.GET("/profile", h.Profile)
	authed.POST("/profile", h.SubmitProfile)

	providerOnly := s.router.Group("/provider", auth.RequireAuth(), auth.RequireProvider())
	providerOnly.GET("/bookings", h.Bookings)
	providerOnly.GET("/earnings", h.Earnings)
	providerOnly.POST("/bookings/:id/check-in", h.CheckIn)
	providerOnly.POST("/bookings/:id/release", h.Release)
}

func (s *ProviderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProviderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProviderHandlerTestSuite))
}

func (s *ProviderHandlerTestSuite) TestCheckIn() {
	id := uuid.New()
	url := "/provider/bookings/" + id.String() + "/check-in"

	s.Run("success", func() {
		s.mockPayouts.EXPECT().CheckIn(gomock.Any(), s.provider, id, "482913").
			Return(&commands.CheckInResult{BookingID: id, Status: booking.StatusCheckedIn}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CheckInRequest{Code: "482913"}, providerToken)

		var body resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("checked-in", body.Status)
		s.False(body.AlreadyCheckedIn)
	})

	s.Run("error: 400 when the code is not six digits", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"otp": "12ab"}, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on a wrong code", func() {
		s.mockPayouts.EXPECT().CheckIn(gomock.Any(), gomock.Any(), id, "000000").Return(nil, booking.ErrCheckInCodeMismatch).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CheckInRequest{Code: "000000"}, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 for another provider's booking", func() {
		s.mockPayouts.EXPECT().CheckIn(gomock.Any(), gomock.Any(), id, "482913").Return(nil, booking.ErrNotBookingProvider).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CheckInRequest{Code: "482913"}, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied: check access rules")
	})

	s.Run("error: 403 for plain users", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CheckInRequest{Code: "482913"}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied")
	})
}

func (s *ProviderHandlerTestSuite) TestRelease() {
	id := uuid.New()
	url := "/provider/bookings/" + id.String() + "/release"

	s.Run("success: amounts in rupees", func() {
		s.mockPayouts.EXPECT().ReleasePayout(gomock.Any(), s.provider, id).Return(&commands.ReleaseResult{
			BookingID:      id,
			PaymentStatus:  booking.PaymentPaidReleased,
			PayoutStatus:   payment.StatusPayoutPending,
			AmountPaise:    15000,
			NetAmountPaise: 12750,
			Commission:     0.15,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, providerToken)

		var body resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid-released", body.PaymentStatus)
		s.Equal("payout_pending", body.PayoutStatus)
		s.Equal(150.0, body.Amount)
		s.Equal(127.5, body.NetAmount)
	})

	s.Run("error: 409 when not in escrow", func() {
		s.mockPayouts.EXPECT().ReleasePayout(gomock.Any(), gomock.Any(), id).Return(nil, booking.ErrNotReleasable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ProviderHandlerTestSuite) TestBookingsAndEarnings() {
	s.Run("bookings: provider listing", func() {
		s.mockBookings.EXPECT().ListProviderBookings(gomock.Any(), s.provider, queries.ListParams{Status: "escrow"}).
			Return(&queries.BookingPage{Items: []*queries.BookingView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/provider/bookings?status=escrow", nil, providerToken)

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("earnings", func() {
		s.mockQueries.EXPECT().Earnings(gomock.Any(), s.provider).Return(&queries.EarningsView{
			ProviderID:          s.provider.ID(),
			TotalEarningsPaise:  30000,
			ReleasedBookings:    2,
			EscrowPaise:         5000,
			StatusCounts:        map[string]int{"released": 2, "escrow": 1},
			PaymentStatusCounts: map[string]int{"paid-released": 2, "paid-escrow": 1},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/provider/earnings", nil, providerToken)

		var body resdto.EarningsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(300.0, body.TotalEarnings)
		s.Equal(50.0, body.Escrow)
		s.Equal(2, body.StatusCounts["released"])
	})
}

func (s *ProviderHandlerTestSuite) TestProfile() {
	s.Run("get: 404 before submission", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(nil, queries.ErrProfileNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/provider/profile", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "provider profile not found")
	})

	s.Run("submit: multipart form reaches the command", func() {
		s.mockProviders.EXPECT().SubmitProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *user.Identity, form reqdto.ProviderProfileForm) error {
				s.Equal("9876543210", form.Phone)
				s.True(form.AgreementSigned)
				s.Require().NotNil(form.IDProof)
				s.Equal("id.png", form.IDProof.Filename)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().Profile(gomock.Any(), gomock.Any()).
			Return(&queries.ProviderProfileView{UserID: "user-1", Phone: "9876543210", GovernmentIDLast4: "1234"}, nil).Times(1)

		rec := s.postProfile(map[string]string{
			"phone":            "9876543210",
			"government_id":    "ABCDE1234F",
			"signature":        "Asha",
			"agreement_signed": "true",
		}, true)

		var body resdto.ProviderProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1234", body.GovernmentIDLast4)
	})

	s.Run("submit: 400 without the id proof", func() {
		rec := s.postProfile(map[string]string{
			"phone":         "9876543210",
			"government_id": "ABCDE1234F",
			"signature":     "Asha",
		}, false)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("submit: 413 for an oversized proof", func() {
		s.mockProviders.EXPECT().SubmitProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrIDProofTooLarge).Times(1)
		rec := s.postProfile(map[string]string{
			"phone":            "9876543210",
			"government_id":    "ABCDE1234F",
			"signature":        "Asha",
			"agreement_signed": "true",
		}, true)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "")
	})
}

func (s *ProviderHandlerTestSuite) postProfile(fields map[string]string, withFile bool) *nethttptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.T(), w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("id_proof", "id.png")
		require.NoError(s.T(), err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), w.Close())

	req := nethttptest.NewRequest(http.MethodPost, "/provider/profile", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
