// file: internals/features/volunteers/activities/controller/activity_participant_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bayanihan_backend/internals/features/volunteers/activities/dto"
	"bayanihan_backend/internals/features/volunteers/activities/model"
	svc "bayanihan_backend/internals/features/volunteers/activities/service"
	helper "bayanihan_backend/internals/helpers"
	helperAuth "bayanihan_backend/internals/helpers/auth"
)

type ActivityParticipantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewActivityParticipantController(db *gorm.DB, v *validator.Validate) *ActivityParticipantController {
	return &ActivityParticipantController{DB: db, Validate: v}
}

// 🟢 POST /api/u/activities/:id/join
//
// The activity row is locked while counting so two concurrent joins
// cannot both squeeze past the participant limit.
func (ctl *ActivityParticipantController) Join(c *fiber.Ctx) error {
	activityID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.JoinActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return writeValidationError(c, err)
	}

	participant := req.ToModel(activityID, userID)

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var activity model.ActivityModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("activity_id = ?", activityID).
			First(&activity).Error; err != nil {
			return err
		}
		if activity.ActivityStatus != model.ActivityStatusPublished {
			return svc.ErrInvalidActivityState
		}

		var existing int64
		if err := tx.Model(&model.ActivityParticipantModel{}).
			Where("activity_participant_activity_id = ? AND activity_participant_user_id = ?", activityID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return svc.ErrAlreadyJoined
		}

		if activity.ActivityMaxParticipants > 0 {
			var count int64
			if err := tx.Model(&model.ActivityParticipantModel{}).
				Where("activity_participant_activity_id = ?", activityID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(activity.ActivityMaxParticipants) {
				return svc.ErrActivityFull
			}
		}

		return tx.Create(participant).Error
	})
	if err != nil {
		if errors.Is(err, svc.ErrInvalidActivityState) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Activity is not open for registration")
		}
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Joined activity", dto.ToParticipantResponse(participant))
}
