package constants

import "fmt"

const (
	RoleAdmin        = "admin"
	RoleSeniorWarden = "senior_warden"
	RoleWarden       = "warden"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only admins can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AdminOnly = []string{
		RoleAdmin,
	}

	// WardenRoles are the values of wardens.role.
	WardenRoles = []string{
		RoleSeniorWarden,
		RoleWarden,
	}
)
