// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/constants"
	activityRoute "bayanihan_backend/internals/features/volunteers/activities/route"
	authMW "bayanihan_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	v := validator.New()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	activityRoute.ActivityPublicRoutes(public, db, v)

	// ===================== PRIVATE (VOLUNTEER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	// any known role may self-register; tokens without a role claim stop here
	private := app.Group("/api/u",
		authMW.AuthMiddleware(),
		authMW.RequireRoles("volunteer self-registration", constants.AllRoles...),
	)
	activityRoute.ActivityUserRoutes(private, db, v)

	// ===================== ADMIN (Auth + RoleCheck) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMW.AuthMiddleware(),
		authMW.RequireAttendanceStaff("activity management"),
	)
	activityRoute.ActivityAdminRoutes(admin, db, v)
}
