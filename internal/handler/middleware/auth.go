package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"find-my-space/internal/domain/user"
	"find-my-space/internal/handler/httperr"
	"find-my-space/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const (
	ctxIdentityKey = "identity"
	ctxClaimsKey   = "jwt_claims"
)

var (
	errMissingToken = errors.New("access token required")
	errNotProvider  = errors.New("provider role required")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// RequireProvider must run after RequireAuth.
func (m *AuthMiddleware) RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}
		if !identity.IsProvider() {
			httperr.AbortWithError(c, http.StatusForbidden, errNotProvider, "Permission denied: check access rules", nil)
			return
		}
		c.Next()
	}
}

// Browsers cannot set headers on websocket handshakes, so upgrades may pass the token as a query parameter.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	if websocket.IsWebSocketUpgrade(c.Request) {
		return c.Query("token")
	}
	return ""
}

func setIdentity(c *gin.Context, identity *user.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": identity.ID(),
		"role":    identity.Role().String(),
	})
}

func GetIdentity(c *gin.Context) (*user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*user.Identity)
	return identity, ok && identity != nil
}
