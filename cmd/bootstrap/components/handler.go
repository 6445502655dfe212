package components

import (
	"context"
	"log/slog"

	"find-my-space/internal/handler"
	"find-my-space/internal/handler/api"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/infra/blob"
	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSpotHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewProviderHandler,
		func(source api.EventSource, cfg config.Config, logger *slog.Logger) *api.EventsHandler {
			return api.NewEventsHandler(source, middleware.OriginAllowed(cfg.CORS), logger)
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *slog.Logger
	RequestLog  *middleware.Logger
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
	Spots       *api.SpotHandler
	Bookings    *api.BookingHandler
	Payments    *api.PaymentHandler
	Providers   *api.ProviderHandler
	Events      *api.EventsHandler
	Blobs       *blob.FileStore
	Pool        *pgxpool.Pool
	Redis       *redis.Client
}

func registerRoutes(p routerParams) {
	checks := []handler.HealthCheck{
		{Name: "postgres", Ping: p.Pool.Ping},
	}
	if p.Redis != nil {
		checks = append(checks, handler.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return p.Redis.Ping(ctx).Err() },
		})
	}

	handler.NewRouter(p.Engine, p.Config, handler.Deps{
		Logger:      p.Logger,
		RequestLog:  p.RequestLog,
		Metrics:     p.Metrics,
		Gatherer:    p.Registry,
		Auth:        p.Auth,
		RateLimiter: p.RateLimiter,
		Spots:       p.Spots,
		Bookings:    p.Bookings,
		Payments:    p.Payments,
		Providers:   p.Providers,
		Events:      p.Events,
		BlobRoot:    p.Blobs.Root(),
		Checks:      checks,
	})
}
