package middleware

import (
	"log/slog"
	"slices"

	"find-my-space/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), "X-Request-ID", "X-RateLimit-Remaining"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
		AllowWebSockets:  true,
	}
	logger.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// OriginAllowed applies the CORS origin list to websocket handshakes; requests without an Origin header pass.
func OriginAllowed(cfg config.CORSConfig) func(origin string) bool {
	return func(origin string) bool {
		if origin == "" {
			return true
		}
		return slices.Contains(cfg.AllowOrigins, "*") || slices.Contains(cfg.AllowOrigins, origin)
	}
}
