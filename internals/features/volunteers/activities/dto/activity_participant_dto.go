package dto

import (
	"time"

	"github.com/google/uuid"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// Request for joining an activity. Name/contact/email are snapshotted
// onto the participant row and never updated afterwards.
type JoinActivityRequest struct {
	Name          string `json:"participant_name" validate:"required,max=255"`
	ContactNumber string `json:"participant_contact_number" validate:"max=30"`
	Email         string `json:"participant_email" validate:"omitempty,email"`
}

// Request for the scanning station
type RecordAttendanceRequest struct {
	QRData string `json:"qr_data" validate:"required"`
	Action string `json:"action" validate:"required"`
}

// Request for the admin correction path (distinct from scanning)
type CorrectAttendanceRequest struct {
	TimeIn  *time.Time `json:"time_in"`
	TimeOut *time.Time `json:"time_out"`
}

// Response for a participant attendance row
type ParticipantResponse struct {
	ID              uuid.UUID  `json:"activity_participant_id"`
	ActivityID      uuid.UUID  `json:"activity_participant_activity_id"`
	UserID          uuid.UUID  `json:"activity_participant_user_id"`
	Name            string     `json:"activity_participant_name"`
	ContactNumber   string     `json:"activity_participant_contact_number"`
	Email           string     `json:"activity_participant_email"`
	Status          string     `json:"activity_participant_status"`
	TimeIn          *time.Time `json:"activity_participant_time_in"`
	TimeOut         *time.Time `json:"activity_participant_time_out"`
	TimeInAdjusted  bool       `json:"activity_participant_time_in_adjusted"`
	TimeOutAdjusted bool       `json:"activity_participant_time_out_adjusted"`
	TotalHours      *float64   `json:"activity_participant_total_hours"`
}

func (r *JoinActivityRequest) ToModel(activityID, userID uuid.UUID) *model.ActivityParticipantModel {
	return &model.ActivityParticipantModel{
		ActivityParticipantActivityID:    activityID,
		ActivityParticipantUserID:        userID,
		ActivityParticipantName:          r.Name,
		ActivityParticipantContactNumber: r.ContactNumber,
		ActivityParticipantEmail:         r.Email,
		ActivityParticipantStatus:        model.ParticipantStatusRegistered,
	}
}

func ToParticipantResponse(m *model.ActivityParticipantModel) *ParticipantResponse {
	return &ParticipantResponse{
		ID:              m.ActivityParticipantID,
		ActivityID:      m.ActivityParticipantActivityID,
		UserID:          m.ActivityParticipantUserID,
		Name:            m.ActivityParticipantName,
		ContactNumber:   m.ActivityParticipantContactNumber,
		Email:           m.ActivityParticipantEmail,
		Status:          m.ActivityParticipantStatus,
		TimeIn:          m.ActivityParticipantTimeIn,
		TimeOut:         m.ActivityParticipantTimeOut,
		TimeInAdjusted:  m.ActivityParticipantTimeInAdjusted,
		TimeOutAdjusted: m.ActivityParticipantTimeOutAdjusted,
		TotalHours:      m.ActivityParticipantTotalHours,
	}
}

func ToParticipantResponses(rows []model.ActivityParticipantModel) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *ToParticipantResponse(&rows[i]))
	}
	return out
}
