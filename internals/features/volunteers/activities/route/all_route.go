package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/controller"
)

// ActivityPublicRoutes: browse-only surface (no token needed)
func ActivityPublicRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	activityCtrl := controller.NewActivityController(db, v)

	activity := api.Group("/activities")
	activity.Get("/", activityCtrl.List)
	activity.Get("/:id", activityCtrl.GetByID)
}
