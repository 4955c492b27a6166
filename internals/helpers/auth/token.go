// file: internals/helpers/auth/token.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bayanihan_backend/internals/constants"
)

var ErrNoUserInToken = errors.New("user_id not found in token")

// GetUserIDFromToken reads the user_id local set by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserInToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("user_id in token is not a valid UUID")
	}
	return id, nil
}

func roleFromLocals(c *fiber.Ctx) string {
	if r, ok := c.Locals("role").(string); ok {
		return r
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return roleFromLocals(c) == constants.RoleAdmin
}

// IsAttendanceStaff reports whether the caller may run the scanning
// station (coordinator or admin).
func IsAttendanceStaff(c *fiber.Ctx) bool {
	role := roleFromLocals(c)
	for _, r := range constants.AttendanceStaffRoles {
		if role == r {
			return true
		}
	}
	return false
}
