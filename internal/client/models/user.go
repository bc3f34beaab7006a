// Package models defines client-side data models shared by the CampusLink
// services and API wrappers.
package models

import "fmt"

// Role is the platform role carried in the access token claims.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole maps a raw claim value onto a known Role. A token whose role
// claim is empty or unknown does not represent a usable session.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
