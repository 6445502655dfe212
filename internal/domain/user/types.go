package user

type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleProvider:
		return true
	default:
		return false
	}
}

// NewRole treats a missing claim as a plain user.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
