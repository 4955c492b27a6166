// file: internals/features/volunteers/activities/controller/hours_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svc "bayanihan_backend/internals/features/volunteers/activities/service"
	helper "bayanihan_backend/internals/helpers"
)

type HoursController struct {
	Hours *svc.HoursService
}

func NewHoursController(db *gorm.DB) *HoursController {
	return &HoursController{Hours: svc.NewHoursService(db)}
}

// 🟢 GET /api/a/users/:user_id/hours?year=2025
func (ctl *HoursController) YearlyHours(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year", strconv.Itoa(time.Now().Year()))))
	if err != nil || year < 2000 || year > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	total, err := ctl.Hours.YearlyHours(c.UserContext(), userID, year)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Yearly hours fetched", fiber.Map{
		"user_id":     userID,
		"year":        year,
		"total_hours": total,
	})
}

// 🟢 GET /api/a/users/:user_id/hours/window?from=2025-01-01&to=2025-06-30
func (ctl *HoursController) WindowHours(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	from, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("from")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("to")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "to must not be before from")
	}
	// to is inclusive on the wire, exclusive in the query
	to = to.AddDate(0, 0, 1)

	total, err := ctl.Hours.WindowHours(c.UserContext(), userID, from, to)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Window hours fetched", fiber.Map{
		"user_id":     userID,
		"from":        c.Query("from"),
		"to":          c.Query("to"),
		"total_hours": total,
	})
}
