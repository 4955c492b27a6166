// file: internals/features/volunteers/activities/controller/activity_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/dto"
	"bayanihan_backend/internals/features/volunteers/activities/model"
	svc "bayanihan_backend/internals/features/volunteers/activities/service"
	helper "bayanihan_backend/internals/helpers"
	helperAuth "bayanihan_backend/internals/helpers/auth"
)

var errInvalidWindow = errors.New("invalid activity window")

/* =========================
   Controller & Constructor
   ========================= */

type ActivityController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Lifecycle *svc.LifecycleService
}

func NewActivityController(db *gorm.DB, v *validator.Validate) *ActivityController {
	return &ActivityController{
		DB:        db,
		Validate:  v,
		Lifecycle: svc.NewLifecycleService(db),
	}
}

/* ========================= Create ========================= */

// 🟢 POST /api/a/activities
func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Activity.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return writeValidationError(c, err)
	}

	// reject an empty or inverted window before it hits the ledger
	if _, err := svc.ResolveWindow(mustDate(req.Date), req.TimeFrom, req.TimeTo, orgLoc()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var creator *uuid.UUID
	if id, err := helperAuth.GetUserIDFromToken(c); err == nil {
		creator = &id
	}

	activity := req.ToModel(creator)
	if err := ctl.DB.WithContext(c.UserContext()).Create(activity).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Activity created", dto.ToActivityResponse(activity))
}

/* ========================= List / Detail ========================= */

// 🟢 GET /api/public/activities?status=&page=&per_page=
func (ctl *ActivityController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ActivityModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("activity_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writeServiceError(c, err)
	}

	var rows []model.ActivityModel
	if err := q.Order("activity_date DESC, activity_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return writeServiceError(c, err)
	}

	responses := make([]dto.ActivityResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *dto.ToActivityResponse(&rows[i]))
	}

	return helper.JsonList(c, "Activities fetched", responses,
		helper.BuildPagination(paging.Page, paging.PerPage, total, len(responses)))
}

// 🟢 GET /api/public/activities/:id
func (ctl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var activity model.ActivityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("activity_id = ?", id).First(&activity).Error; err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Activity fetched", dto.ToActivityResponse(&activity))
}

/* ========================= Update ========================= */

// 🟢 PUT /api/a/activities/:id. Schedule/details editable only before
// the event starts (draft or published).
func (ctl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return writeValidationError(c, err)
	}

	var updated *model.ActivityModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var activity model.ActivityModel
		if err := tx.Where("activity_id = ?", id).First(&activity).Error; err != nil {
			return err
		}
		// Editable only before the event starts: not once it is
		// ongoing, and never once it has ended or been cancelled.
		if activity.IsTerminal() || activity.ActivityStatus == model.ActivityStatusOngoing {
			return svc.ErrInvalidActivityState
		}

		req.ApplyToModel(&activity)
		if _, werr := svc.ResolveWindow(activity.ActivityDate, activity.ActivityTimeFrom, activity.ActivityTimeTo, orgLoc()); werr != nil {
			return fmt.Errorf("%w: %v", errInvalidWindow, werr)
		}
		if err := tx.Save(&activity).Error; err != nil {
			return err
		}
		updated = &activity
		return nil
	})
	if err != nil {
		if errors.Is(err, errInvalidWindow) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return writeServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Activity updated", dto.ToActivityResponse(updated))
}

/* ========================= Delete ========================= */

// 🟢 DELETE /api/a/activities/:id. Soft delete, participants go with it
func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var activity model.ActivityModel
		if err := tx.Where("activity_id = ?", id).First(&activity).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_participant_activity_id = ?", id).
			Delete(&model.ActivityParticipantModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Activity deleted", fiber.Map{"activity_id": id})
}

/* ========================= Status transition ========================= */

// 🟢 POST /api/a/activities/:id/status
func (ctl *ActivityController) Transition(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.ActivityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return writeValidationError(c, err)
	}

	activity, err := ctl.Lifecycle.Transition(c.UserContext(), id, req.NewStatus)
	if err != nil {
		if errors.Is(err, svc.ErrInvalidStatusTransition) {
			log.Printf("[Activity.Transition] rejected transition to %s for %s", req.NewStatus, id)
		}
		return writeServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Activity status updated", dto.ToActivityResponse(activity))
}
