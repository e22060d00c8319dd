package domain

import "strings"

// Role is the closed set of account roles the remote registration API issues.
// The gateway never invents roles; unknown strings fall back to RoleUser so a
// stale cookie can never grant a wider path prefix than a plain attendee.
type Role string

const (
	RoleSuper   Role = "SUPER"
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// ParseRole normalises a role string from the remote API or a decoded cookie.
// The second return reports whether the input named a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSuper:
		return RoleSuper, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleUser:
		return RoleUser, true
	default:
		return RoleUser, false
	}
}

// PathPrefix returns the page-path prefix owned by the role. ADMIN and
// MANAGER share the admin area, matching the remote API's permission model.
func (r Role) PathPrefix() string {
	switch r {
	case RoleSuper:
		return "/super"
	case RoleAdmin, RoleManager:
		return "/admin"
	case RoleUser:
		return "/user"
	default:
		return "/user"
	}
}

// Home is the landing path users of this role are sent to after login.
func (r Role) Home() string {
	return r.PathPrefix() + "/"
}

func (r Role) String() string { return string(r) }
