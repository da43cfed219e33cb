// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the staff role an account holds in the clinic.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "Admin"
	// RoleDoctor indicates a doctor.
	RoleDoctor Role = "Doctor"
	// RoleReceptionist indicates a receptionist.
	RoleReceptionist Role = "Receptionist"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known values.
// Account creation stores the role verbatim and does not enforce this;
// role checks are a presentation concern, not a server-side security boundary.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
