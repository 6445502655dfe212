package user

import "strings"

// Identity is the caller as asserted by the auth provider's token.
// Accounts live with the auth provider; this service never stores them.
type Identity struct {
	id            string
	name          string
	email         Email
	emailVerified bool
	role          Role
}

func NewIdentity(id, name, email string, emailVerified bool, role Role) (*Identity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	var mail Email
	if email != "" {
		var err error
		if mail, err = NewEmail(email); err != nil {
			return nil, err
		}
	}

	return &Identity{
		id:            id,
		name:          strings.TrimSpace(name),
		email:         mail,
		emailVerified: emailVerified && !mail.IsZero(),
		role:          role,
	}, nil
}

func (i *Identity) ID() string          { return i.id }
func (i *Identity) Name() string        { return i.name }
func (i *Identity) Email() Email        { return i.email }
func (i *Identity) EmailVerified() bool { return i.emailVerified }
func (i *Identity) Role() Role          { return i.role }

func (i *Identity) IsProvider() bool {
	return i.role == RoleProvider
}

// DisplayName falls back to the mailbox name when the token carries no name.
func (i *Identity) DisplayName() string {
	if i.name != "" {
		return i.name
	}
	if local, _, ok := strings.Cut(i.email.Value(), "@"); ok {
		return local
	}
	return i.id
}
