package user

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role can approve/reject reservations and
// grants, and cancel reservations it does not own.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
