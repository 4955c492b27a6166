// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"bayanihan_backend/internals/constants"
	helperAuth "bayanihan_backend/internals/helpers/auth"
)

// RequireRoles rejects the request unless the token role is one of the
// allowed roles. Must run after AuthMiddleware.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCoordinator(feature))
	}
}

// RequireAttendanceStaff guards the scanning-station endpoints.
func RequireAttendanceStaff(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAttendanceStaff(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCoordinator(feature))
		}
		return c.Next()
	}
}
