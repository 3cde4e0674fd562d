package model

import "slices"

// Role names granted to principals.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Scope is the authenticated principal attached to a request.
type Scope struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal holds role.
func (s Scope) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}
