// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular mobile app user.
	RoleUser Role = "user"
	// RoleAdmin indicates a directory moderator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates a moderator with full privileges.
	RoleSuperAdmin Role = "super_admin"
	// RoleGuest indicates a synthetic unauthenticated principal with
	// read-only access to public endpoints.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin, RoleGuest:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries moderation privileges.
func (r Role) IsAdmin() bool {
	return slices.Contains([]Role{RoleAdmin, RoleSuperAdmin}, r)
}
