package bootstrap

import (
	"context"
	"log/slog"

	"find-my-space/internal/handler/api"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/infra/blob"
	"find-my-space/internal/infra/events"
	"find-my-space/internal/infra/gateway"
	"find-my-space/internal/infra/mail"
	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/pkg/metrics"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationsModule = fx.Module("integrations",
	fx.Provide(
		NewRedis,
		NewRateLimiter,
		NewEventBroker,
		func(b *events.Broker) shared.EventPublisher { return b },
		func(b *events.Broker) api.EventSource { return b },
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		NewMailer,
		NewFileStore,
		func(s *blob.FileStore) commands.BlobStore { return s },
		NewMetricsRegistry,
		NewMetrics,
		NewBackground,
	),
)

// NewRedis returns nil when REDIS_URL is unset; the rate limiter then keeps counters in memory.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		logger.Info("REDIS_URL not set, rate limits are per instance")
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	rdb := redis.NewClient(opts)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewRateLimiter(rdb *redis.Client, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(rdb, logger)
}

func NewEventBroker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*events.Broker, error) {
	var forwarders []events.Forwarder
	var amqpForwarder *events.AMQPForwarder
	if cfg.AMQP.URL != "" {
		f, err := events.DialAMQP(cfg.AMQP, logger)
		if err != nil {
			return nil, err
		}
		amqpForwarder = f
		forwarders = append(forwarders, f)
	}

	broker := events.NewBroker(logger, forwarders...)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			broker.Close()
			if amqpForwarder != nil {
				return amqpForwarder.Close()
			}
			return nil
		},
	})
	return broker, nil
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *gateway.Razorpay {
	if cfg.Payment.KeyID == "" {
		logger.Warn("RAZORPAY_KEY_ID not set, online payments will fail")
	}
	return gateway.NewRazorpay(cfg.Payment, logger)
}

func NewMailer(cfg config.Config, logger *slog.Logger) commands.Mailer {
	return mail.New(cfg.SMTP, logger)
}

func NewFileStore(cfg config.Config) (*blob.FileStore, error) {
	return blob.NewFileStore(cfg.Blob)
}

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(cfg config.Config, reg *prometheus.Registry) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.NewNop()
	}
	return metrics.New(cfg.Metrics.ServiceName, reg)
}

func NewBackground(cfg config.Config, logger *slog.Logger) commands.Background {
	return commands.NewDetached(logger, cfg.Server.ShutdownTimeout)
}
