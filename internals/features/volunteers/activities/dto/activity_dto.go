package dto

import (
	"time"

	"github.com/google/uuid"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// Request for creating an activity
type CreateActivityRequest struct {
	Title           string `json:"activity_title" validate:"required,max=255"`
	Description     string `json:"activity_description"`
	Location        string `json:"activity_location" validate:"max=255"`
	Date            string `json:"activity_date" validate:"required,datetime=2006-01-02"`
	TimeFrom        string `json:"activity_time_from" validate:"required,datetime=15:04"`
	TimeTo          string `json:"activity_time_to" validate:"required,datetime=15:04"`
	MaxParticipants int    `json:"activity_max_participants" validate:"gte=0"`
	Publish         bool   `json:"activity_publish"` // true = start at published instead of draft
}

// Request for updating an activity (draft/published only)
type UpdateActivityRequest struct {
	Title           *string `json:"activity_title" validate:"omitempty,max=255"`
	Description     *string `json:"activity_description"`
	Location        *string `json:"activity_location" validate:"omitempty,max=255"`
	Date            *string `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
	TimeFrom        *string `json:"activity_time_from" validate:"omitempty,datetime=15:04"`
	TimeTo          *string `json:"activity_time_to" validate:"omitempty,datetime=15:04"`
	MaxParticipants *int    `json:"activity_max_participants" validate:"omitempty,gte=0"`
}

// Request for a lifecycle transition
type ActivityStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required,oneof=draft published ongoing completed cancelled"`
}

// Response for activity data
type ActivityResponse struct {
	ID              uuid.UUID `json:"activity_id"`
	Title           string    `json:"activity_title"`
	Description     string    `json:"activity_description"`
	Location        string    `json:"activity_location"`
	Date            string    `json:"activity_date"`
	TimeFrom        string    `json:"activity_time_from"`
	TimeTo          string    `json:"activity_time_to"`
	Status          string    `json:"activity_status"`
	MaxParticipants int       `json:"activity_max_participants"`
	CreatedAt       string    `json:"activity_created_at"`
}

func (r *CreateActivityRequest) ToModel(createdBy *uuid.UUID) *model.ActivityModel {
	status := model.ActivityStatusDraft
	if r.Publish {
		status = model.ActivityStatusPublished
	}
	date, _ := time.Parse("2006-01-02", r.Date)
	return &model.ActivityModel{
		ActivityTitle:           r.Title,
		ActivityDescription:     r.Description,
		ActivityLocation:        r.Location,
		ActivityDate:            date,
		ActivityTimeFrom:        r.TimeFrom,
		ActivityTimeTo:          r.TimeTo,
		ActivityStatus:          status,
		ActivityMaxParticipants: r.MaxParticipants,
		ActivityCreatedBy:       createdBy,
	}
}

// ApplyToModel copies the provided fields onto an existing activity.
func (r *UpdateActivityRequest) ApplyToModel(m *model.ActivityModel) {
	if r.Title != nil {
		m.ActivityTitle = *r.Title
	}
	if r.Description != nil {
		m.ActivityDescription = *r.Description
	}
	if r.Location != nil {
		m.ActivityLocation = *r.Location
	}
	if r.Date != nil {
		if date, err := time.Parse("2006-01-02", *r.Date); err == nil {
			m.ActivityDate = date
		}
	}
	if r.TimeFrom != nil {
		m.ActivityTimeFrom = *r.TimeFrom
	}
	if r.TimeTo != nil {
		m.ActivityTimeTo = *r.TimeTo
	}
	if r.MaxParticipants != nil {
		m.ActivityMaxParticipants = *r.MaxParticipants
	}
}

func ToActivityResponse(m *model.ActivityModel) *ActivityResponse {
	return &ActivityResponse{
		ID:              m.ActivityID,
		Title:           m.ActivityTitle,
		Description:     m.ActivityDescription,
		Location:        m.ActivityLocation,
		Date:            m.ActivityDate.Format("2006-01-02"),
		TimeFrom:        m.ActivityTimeFrom,
		TimeTo:          m.ActivityTimeTo,
		Status:          m.ActivityStatus,
		MaxParticipants: m.ActivityMaxParticipants,
		CreatedAt:       m.ActivityCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
