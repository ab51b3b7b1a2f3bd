// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds in the system.
type Role string

const (
	// RoleDonor indicates a blood donor account.
	RoleDonor Role = "donor"
	// RoleHospital indicates a hospital account (requires admin approval).
	RoleHospital Role = "hospital"
	// RoleOrganisation indicates a blood-bank organisation account.
	RoleOrganisation Role = "organisation"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleHospital, RoleOrganisation, RoleAdmin:
		return true
	default:
		return false
	}
}
