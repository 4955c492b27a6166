package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bayanihan_backend/internals/configs"
	svc "bayanihan_backend/internals/features/volunteers/activities/service"
	helper "bayanihan_backend/internals/helpers"
)

func orgLoc() *time.Location {
	return configs.OrgLocation()
}

// mustDate parses an already-validated "2006-01-02" date string.
func mustDate(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func writeValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return helper.JsonValidationError(c, fieldErrors)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate record (unique violation)."
		}
	}
	return 0, ""
}

// writeServiceError maps the engine error taxonomy onto HTTP statuses.
// Unmapped errors fall through as 500, which the scanning station
// treats as retryable (the write path is idempotent).
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrMalformedPayload),
		errors.Is(err, svc.ErrNoTimeInRecorded):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrActivityMismatch),
		errors.Is(err, svc.ErrActivityFull),
		errors.Is(err, svc.ErrAlreadyJoined):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, svc.ErrUnknownParticipant):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrInvalidActivityState),
		errors.Is(err, svc.ErrInvalidStatusTransition):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
	}
	if code, msg := mapPGError(err); code != 0 {
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
