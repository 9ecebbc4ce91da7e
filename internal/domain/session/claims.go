package session

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is one the portal knows about. Anything
// else (including an absent role claim) is treated as "no role": the user
// stays authenticated but is not authorized for admin views.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Claims is the structured payload decoded from the bearer credential.
// It is derived fresh on every decode and never cached; redecoding is
// cheap and avoids staleness after login/logout swaps the credential.
type Claims struct {
	EmployeeID string
	Role       Role
}
