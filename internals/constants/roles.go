package constants

import "fmt"

// Role names as they appear in the JWT "role" claim
const (
	RoleVolunteer   = "volunteer"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

// Error message templates for role guards
const (
	ErrOnlyCoordinatorsCanAccess = "❌ Only coordinators or admins may access %s."
	ErrOnlyAdminsCanAccess       = "❌ Only admins may access %s."
)

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleVolunteer,
		RoleCoordinator,
		RoleAdmin,
	}

	// Roles allowed to run the scanning station and mutate attendance
	AttendanceStaffRoles = []string{
		RoleCoordinator,
		RoleAdmin,
	}
)
