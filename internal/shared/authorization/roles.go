// Package authorization holds the two-role access model. Administrators
// decide requests and manage the catalog; regular users create and cancel
// their own requests.
package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps a stored or token-borne role string to a UserRole.
// Anything unrecognized degrades to RoleUser; a mangled claim can never
// grant admin.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
