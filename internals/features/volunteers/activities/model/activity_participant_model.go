package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant attendance states
const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusAttended   = "attended"
	ParticipantStatusAbsent     = "absent"
)

type ActivityParticipantModel struct {
	ActivityParticipantID         uuid.UUID `gorm:"column:activity_participant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_participant_id"`
	ActivityParticipantActivityID uuid.UUID `gorm:"column:activity_participant_activity_id;type:uuid;not null;uniqueIndex:ux_activity_participants_activity_user" json:"activity_participant_activity_id"`
	ActivityParticipantUserID     uuid.UUID `gorm:"column:activity_participant_user_id;type:uuid;not null;uniqueIndex:ux_activity_participants_activity_user"     json:"activity_participant_user_id"`

	// Contact snapshot captured at join time, immutable afterwards
	ActivityParticipantName          string `gorm:"column:activity_participant_name;type:varchar(255);not null" json:"activity_participant_name"`
	ActivityParticipantContactNumber string `gorm:"column:activity_participant_contact_number;type:varchar(30)" json:"activity_participant_contact_number"`
	ActivityParticipantEmail         string `gorm:"column:activity_participant_email;type:varchar(255)"         json:"activity_participant_email"`

	ActivityParticipantStatus string `gorm:"column:activity_participant_status;type:varchar(20);not null;default:'registered';index:idx_activity_participants_status" json:"activity_participant_status"`

	ActivityParticipantTimeIn          *time.Time `gorm:"column:activity_participant_time_in;type:timestamptz"  json:"activity_participant_time_in"`
	ActivityParticipantTimeOut         *time.Time `gorm:"column:activity_participant_time_out;type:timestamptz" json:"activity_participant_time_out"`
	ActivityParticipantTimeInAdjusted  bool       `gorm:"column:activity_participant_time_in_adjusted;default:false"  json:"activity_participant_time_in_adjusted"`
	ActivityParticipantTimeOutAdjusted bool       `gorm:"column:activity_participant_time_out_adjusted;default:false" json:"activity_participant_time_out_adjusted"`

	// Derived from time_in/time_out only; nil until both exist
	ActivityParticipantTotalHours *float64 `gorm:"column:activity_participant_total_hours;type:numeric(6,2)" json:"activity_participant_total_hours"`

	ActivityParticipantCreatedAt time.Time      `gorm:"column:activity_participant_created_at;type:timestamptz;autoCreateTime" json:"activity_participant_created_at"`
	ActivityParticipantUpdatedAt time.Time      `gorm:"column:activity_participant_updated_at;type:timestamptz;autoUpdateTime" json:"activity_participant_updated_at"`
	ActivityParticipantDeletedAt gorm.DeletedAt `gorm:"column:activity_participant_deleted_at;type:timestamptz;index"          json:"activity_participant_deleted_at,omitempty"`
}

func (ActivityParticipantModel) TableName() string {
	return "activity_participants"
}
