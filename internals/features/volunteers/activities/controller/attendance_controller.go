// file: internals/features/volunteers/activities/controller/attendance_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bayanihan_backend/internals/configs"
	"bayanihan_backend/internals/constants"
	"bayanihan_backend/internals/features/volunteers/activities/dto"
	"bayanihan_backend/internals/features/volunteers/activities/model"
	svc "bayanihan_backend/internals/features/volunteers/activities/service"
	helper "bayanihan_backend/internals/helpers"
	helperAuth "bayanihan_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Ledger   *svc.LedgerService
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Ledger:   svc.NewLedgerService(db),
	}
}

/* ========================= Scan ========================= */

// 🟢 POST /api/a/activities/:id/attendance
//
// Scanning-station entry point: decoded QR string + intended action.
// The activity id in the URL is the admin's selected context; an
// activity-bound badge must match it.
func (ctl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	activityID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return writeValidationError(c, err)
	}

	action, ok := svc.NormalizeAction(req.Action)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "action must be timeIn or timeOut")
	}

	identity, err := svc.ParseScanPayload(req.QRData, activityID, configs.QRSigningSecret)
	if err != nil {
		return writeServiceError(c, err)
	}

	participant, err := ctl.Ledger.RecordAttendance(c.UserContext(), identity, action, time.Now())
	if err != nil {
		return writeServiceError(c, err)
	}

	msg := "Attendance recorded"
	if (action == model.ScanActionTimeIn && participant.ActivityParticipantTimeInAdjusted) ||
		(action == model.ScanActionTimeOut && participant.ActivityParticipantTimeOutAdjusted) {
		msg = "Attendance recorded (Auto-adjusted)"
	}

	return helper.JsonOK(c, msg, dto.ToParticipantResponse(participant))
}

/* ========================= Correction ========================= */

// 🟢 PATCH /api/a/activities/:id/attendance/:user_id, admin override
// for mis-scans, separate from the idempotent scan path.
func (ctl *AttendanceController) CorrectAttendance(c *fiber.Ctx) error {
	// Coordinators may scan but not rewrite committed timestamps.
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("attendance correction"))
	}

	activityID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.CorrectAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.TimeIn == nil && req.TimeOut == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "time_in or time_out is required")
	}

	participant, err := ctl.Ledger.OverrideAttendance(c.UserContext(), activityID, userID, req.TimeIn, req.TimeOut)
	if err != nil {
		return writeServiceError(c, err)
	}

	log.Printf("[INFO] attendance corrected for activity=%s user=%s", activityID, userID)
	return helper.JsonUpdated(c, "Attendance corrected", dto.ToParticipantResponse(participant))
}

/* ========================= Report ========================= */

// 🟢 GET /api/a/activities/:id/attendance
func (ctl *AttendanceController) Report(c *fiber.Ctx) error {
	activityID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var activity model.ActivityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("activity_id = ?", activityID).First(&activity).Error; err != nil {
		return writeServiceError(c, err)
	}

	var rows []model.ActivityParticipantModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("activity_participant_activity_id = ?", activityID).
		Order("activity_participant_name ASC").
		Find(&rows).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Attendance report fetched", fiber.Map{
		"activity":     dto.ToActivityResponse(&activity),
		"participants": dto.ToParticipantResponses(rows),
	})
}
