package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/controller"
)

// ActivityUserRoutes: authenticated volunteer surface
func ActivityUserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	participantCtrl := controller.NewActivityParticipantController(db, v)

	activity := api.Group("/activities")
	activity.Post("/:id/join", participantCtrl.Join)
}
