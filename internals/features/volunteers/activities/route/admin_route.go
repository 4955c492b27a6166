package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/controller"
	"bayanihan_backend/internals/middlewares"
)

// ActivityAdminRoutes: coordinator/admin surface for activity management,
// lifecycle transitions, the scanning station, and hour reports.
func ActivityAdminRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	activityCtrl := controller.NewActivityController(db, v)
	attendanceCtrl := controller.NewAttendanceController(db, v)
	hoursCtrl := controller.NewHoursController(db)

	// 🔹 Activities
	activity := api.Group("/activities")
	activity.Post("/", activityCtrl.Create)
	activity.Put("/:id", activityCtrl.Update)
	activity.Delete("/:id", activityCtrl.Delete)
	activity.Post("/:id/status", activityCtrl.Transition)

	// 🔹 Attendance (scan path gets its own limiter)
	activity.Post("/:id/attendance", middlewares.ScanRateLimiter(), attendanceCtrl.RecordAttendance)
	activity.Patch("/:id/attendance/:user_id", attendanceCtrl.CorrectAttendance)
	activity.Get("/:id/attendance", attendanceCtrl.Report)

	// 🔹 Hours served (reporting/letterhead exports)
	users := api.Group("/users")
	users.Get("/:user_id/hours", hoursCtrl.YearlyHours)
	users.Get("/:user_id/hours/window", hoursCtrl.WindowHours)
}
