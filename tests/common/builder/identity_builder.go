//go:build unit || e2e

package builder

import (
	"find-my-space/internal/domain/user"
)

type IdentityBuilder struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Role          string
}

func NewIdentityBuilder() *IdentityBuilder {
	return &IdentityBuilder{
		ID:            "user-1",
		Name:          "Asha",
		Email:         "asha@example.com",
		EmailVerified: true,
		Role:          "user",
	}
}

func (b *IdentityBuilder) With(mutate func(*IdentityBuilder)) *IdentityBuilder {
	mutate(b)
	return b
}

func (b *IdentityBuilder) BuildDomain() (*user.Identity, error) {
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewIdentity(b.ID, b.Name, b.Email, b.EmailVerified, role)
}

// MustBuild is for fixtures whose inputs are known to be valid.
func (b *IdentityBuilder) MustBuild() *user.Identity {
	id, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return id
}

func (b *IdentityBuilder) WithID(id string) *IdentityBuilder {
	b.ID = id
	return b
}

func (b *IdentityBuilder) WithEmail(email string) *IdentityBuilder {
	b.Email = email
	return b
}

func (b *IdentityBuilder) WithRole(role string) *IdentityBuilder {
	b.Role = role
	return b
}

func (b *IdentityBuilder) AsProvider() *IdentityBuilder {
	b.ID = "provider-1"
	b.Name = "Ravi"
	b.Email = "ravi@example.com"
	b.Role = "provider"
	return b
}

func (b *IdentityBuilder) Unverified() *IdentityBuilder {
	b.EmailVerified = false
	return b
}
