//go:build unit

package api_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"find-my-space/internal/handler/api"
	"find-my-space/internal/infra/events"
	"find-my-space/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventsServer(t *testing.T) (*events.Broker, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	broker := events.NewBroker(discardLogger())
	auth, _, _ := newTestAuth()
	h := api.NewEventsHandler(broker, func(string) bool { return true }, discardLogger())

	router := gin.New()
	router.GET("/events", auth.RequireAuth(), h.Stream)
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		broker.Close()
	})
	return broker, srv
}

func dialEvents(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, broker *events.Broker, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return broker.Subscribers() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestEventsHandler_Stream(t *testing.T) {
	t.Run("delivers the user's own booking events and spot events", func(t *testing.T) {
		broker, srv := newEventsServer(t)
		conn := dialEvents(t, srv, userToken)
		waitForSubscribers(t, broker, 1)

		bookingID := uuid.New()
		broker.Publish(t.Context(), shared.Event{ID: uuid.New(), Type: shared.EventBookingCreated, BookingID: &bookingID, UserID: "someone-else"})
		broker.Publish(t.Context(), shared.Event{ID: uuid.New(), Type: shared.EventBookingCreated, BookingID: &bookingID, UserID: "user-1"})
		broker.Publish(t.Context(), shared.Event{ID: uuid.New(), Type: shared.EventSpotUpdated, SpotID: uuid.New()})

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

		var first shared.Event
		require.NoError(t, conn.ReadJSON(&first))
		assert.Equal(t, shared.EventBookingCreated, first.Type)
		assert.Equal(t, "user-1", first.UserID)

		var second shared.Event
		require.NoError(t, conn.ReadJSON(&second))
		assert.Equal(t, shared.EventSpotUpdated, second.Type)
	})

	t.Run("rejects the upgrade without a token", func(t *testing.T) {
		_, srv := newEventsServer(t)
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("unsubscribes when the client goes away", func(t *testing.T) {
		broker, srv := newEventsServer(t)
		conn := dialEvents(t, srv, providerToken)
		waitForSubscribers(t, broker, 1)

		require.NoError(t, conn.Close())
		waitForSubscribers(t, broker, 0)
	})
}
