package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"find-my-space/internal/handler/api"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/metrics"
)

const healthTimeout = 2 * time.Second

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// HealthCheck is one dependency probed by /health.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type Deps struct {
	Logger      *slog.Logger
	RequestLog  *middleware.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
	Spots       *api.SpotHandler
	Bookings    *api.BookingHandler
	Payments    *api.PaymentHandler
	Providers   *api.ProviderHandler
	Events      *api.EventsHandler
	BlobRoot    string
	Checks      []HealthCheck
}

func NewRouter(engine *gin.Engine, cfg config.Config, deps Deps) {
	setupMiddleware(engine, cfg, deps)
	setupRoutes(engine, cfg, deps)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, deps Deps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(deps.Logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, deps.Logger))
	engine.Use(deps.RequestLog.LoggingMiddleware())
	engine.Use(middleware.Metrics(deps.Metrics))
	engine.Use(middleware.LogServerErrors(deps.Logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, deps Deps) {
	engine.GET("/health", healthCheck(deps.Checks))

	if cfg.Metrics.Enabled && deps.Gatherer != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if deps.BlobRoot != "" && strings.HasPrefix(cfg.Blob.BaseURL, "/") {
		engine.Static(cfg.Blob.BaseURL, deps.BlobRoot)
	}
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := deps.Auth
	limit := deps.RateLimiter

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/spots", Handler: deps.Spots.List},
			{Method: http.MethodGet, Path: "/spots/:id", Handler: deps.Spots.Get},
			{Method: http.MethodGet, Path: "/spots/:id/availability", Handler: deps.Spots.Calendar},
			{Method: http.MethodGet, Path: "/availability/today", Handler: deps.Spots.Today},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: deps.Payments.Webhook},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(auth.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: api.Me},
			{Method: http.MethodGet, Path: "/events", Handler: deps.Events.Stream},
			{Method: http.MethodGet, Path: "/provider/profile", Handler: deps.Providers.Profile},
			{Method: http.MethodPost, Path: "/provider/profile", Handler: deps.Providers.SubmitProfile},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(auth.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: deps.Bookings.Create,
					Mw: []gin.HandlerFunc{limit.Limit("booking_create", cfg.RateLimit.Booking)}},
				{Method: http.MethodGet, Path: "", Handler: deps.Bookings.List},
				{Method: http.MethodGet, Path: "/:id", Handler: deps.Bookings.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: deps.Bookings.Delete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: deps.Bookings.Cancel},
				{Method: http.MethodPost, Path: "/:id/vacate", Handler: deps.Bookings.Vacate},
				{Method: http.MethodPost, Path: "/:id/payment-order", Handler: deps.Bookings.PaymentOrder,
					Mw: []gin.HandlerFunc{limit.Limit("payment_order", cfg.RateLimit.Payment)}},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: deps.Bookings.CompletePayment},
			})
		}

		providerOnly := apiGroup.Group("")
		providerOnly.Use(auth.RequireAuth(), auth.RequireProvider())
		addRoutes(providerOnly, []route{
			{Method: http.MethodPost, Path: "/spots", Handler: deps.Spots.Create},
			{Method: http.MethodPut, Path: "/spots/:id", Handler: deps.Spots.Update},
			{Method: http.MethodDelete, Path: "/spots/:id", Handler: deps.Spots.Delete},
			{Method: http.MethodGet, Path: "/provider/spots", Handler: deps.Spots.ProviderSpots},
			{Method: http.MethodGet, Path: "/provider/bookings", Handler: deps.Providers.Bookings},
			{Method: http.MethodGet, Path: "/provider/earnings", Handler: deps.Providers.Earnings},
			{Method: http.MethodPost, Path: "/provider/bookings/:id/check-in", Handler: deps.Providers.CheckIn},
			{Method: http.MethodPost, Path: "/provider/bookings/:id/release", Handler: deps.Providers.Release},
		})
	}
}

// @Summary Health check
// @Description Check if the service and its dependencies are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func healthCheck(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				deps[check.Name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[check.Name] = "up"
		}

		state, message := "ok", "Service is healthy"
		if status != http.StatusOK {
			state, message = "degraded", "Service is degraded"
		}
		c.JSON(status, gin.H{
			"status":       state,
			"message":      message,
			"dependencies": deps,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
