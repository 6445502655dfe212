//go:build unit

package api_test

import (
	"io"
	"log/slog"

	"find-my-space/internal/domain/user"
	"find-my-space/internal/handler/middleware"
	"find-my-space/internal/pkg/jwt"
	"find-my-space/tests/common/builder"
)

const (
	userToken     = "user-token"
	providerToken = "provider-token"
)

// stubValidator resolves fixed tokens to identities.
type stubValidator map[string]*user.Identity

func (v stubValidator) ValidateToken(token string) (*user.Identity, error) {
	if id, ok := v[token]; ok {
		return id, nil
	}
	return nil, jwt.ErrInvalidToken
}

func newTestAuth() (*middleware.AuthMiddleware, *user.Identity, *user.Identity) {
	u := builder.NewIdentityBuilder().MustBuild()
	p := builder.NewIdentityBuilder().AsProvider().MustBuild()
	validator := stubValidator{userToken: u, providerToken: p}
	return middleware.NewAuthMiddleware(validator, discardLogger()), u, p
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
