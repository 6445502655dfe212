package usecase

import (
	"find-my-space/internal/domain/user"
	"find-my-space/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// tokens without a role claim belong to plain users
	roleClaim := claims.Role
	if roleClaim == "" {
		roleClaim = user.RoleUser.String()
	}
	role, err := user.NewRole(roleClaim)
	if err != nil {
		return nil, err
	}

	return user.NewIdentity(claims.Subject, claims.Name, claims.Email, claims.EmailVerified, role)
}
