//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"find-my-space/internal/domain/user"
	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token the way the identity provider would.
func (h *JWTHelper) GenerateToken(t *testing.T, identity *user.Identity) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration).GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity *user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond).GenerateToken(identity)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateForeignToken is signed with another secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, identity *user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", h.cfg.Issuer, time.Hour).GenerateToken(identity)
	require.NoError(t, err)
	return token
}
