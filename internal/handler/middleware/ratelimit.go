package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"find-my-space/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter builds per-route limiters on one store: redis when a client is given, process memory otherwise.
type RateLimiter struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewRateLimiter(rdb *redis.Client, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{rdb: rdb, logger: logger}
}

// ParseRate reads limits such as "10-1m" or "100-30s".
func ParseRate(s string) (limiter.Rate, error) {
	limitPart, periodPart, ok := strings.Cut(s, "-")
	if !ok {
		return limiter.Rate{}, fmt.Errorf("invalid rate format: %q", s)
	}
	limit, err := strconv.ParseInt(limitPart, 10, 64)
	if err != nil || limit <= 0 {
		return limiter.Rate{}, fmt.Errorf("invalid limit in rate %q", s)
	}
	period, err := time.ParseDuration(periodPart)
	if err != nil || period <= 0 {
		return limiter.Rate{}, fmt.Errorf("invalid period in rate %q", s)
	}
	return limiter.Rate{Limit: limit, Period: period}, nil
}

// Limit keys requests by authenticated user, falling back to the client IP.
// An unparsable rate disables the limiter for that route rather than failing startup.
func (r *RateLimiter) Limit(routeID, rateStr string) gin.HandlerFunc {
	rate, err := ParseRate(rateStr)
	if err != nil {
		r.logger.Error("rate limiter disabled", "route", routeID, "error", err.Error())
		return func(c *gin.Context) { c.Next() }
	}

	store, err := r.store(routeID, rate.Period)
	if err != nil {
		r.logger.Error("rate limiter disabled", "route", routeID, "error", err.Error())
		return func(c *gin.Context) { c.Next() }
	}

	return ginmiddleware.NewMiddleware(limiter.New(store, rate),
		ginmiddleware.WithKeyGetter(rateKey),
		ginmiddleware.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, please try again later", nil)
		}),
		ginmiddleware.WithErrorHandler(func(c *gin.Context, err error) {
			// store outages must not take bookings down
			r.logger.Warn("rate limiter store failed", "route", routeID, "error", err.Error())
			c.Next()
		}),
	)
}

func (r *RateLimiter) store(routeID string, period time.Duration) (limiter.Store, error) {
	prefix := "rate_limiter:" + routeID
	if r.rdb == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: period,
		}), nil
	}
	return redisstore.NewStoreWithOptions(r.rdb, limiter.StoreOptions{
		Prefix:          prefix,
		MaxRetry:        3,
		CleanUpInterval: period,
	})
}

func rateKey(c *gin.Context) string {
	if identity, ok := GetIdentity(c); ok {
		return "user:" + identity.ID()
	}
	return "ip:" + c.ClientIP()
}
