package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity lifecycle states. Forward-only: draft → published → ongoing
// → completed; cancelled is reachable from any non-terminal state.
const (
	ActivityStatusDraft     = "draft"
	ActivityStatusPublished = "published"
	ActivityStatusOngoing   = "ongoing"
	ActivityStatusCompleted = "completed"
	ActivityStatusCancelled = "cancelled"
)

type ActivityModel struct {
	ActivityID          uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityTitle       string    `gorm:"column:activity_title;type:varchar(255);not null"                  json:"activity_title"`
	ActivityDescription string    `gorm:"column:activity_description;type:text"                             json:"activity_description"`
	ActivityLocation    string    `gorm:"column:activity_location;type:varchar(255)"                        json:"activity_location"`

	// Scheduled window: one calendar date plus wall-clock bounds
	// ("HH:MM") in the organizational timezone.
	ActivityDate     time.Time `gorm:"column:activity_date;type:date;not null;index:idx_activities_date" json:"activity_date"`
	ActivityTimeFrom string    `gorm:"column:activity_time_from;type:varchar(5);not null"                json:"activity_time_from"`
	ActivityTimeTo   string    `gorm:"column:activity_time_to;type:varchar(5);not null"                  json:"activity_time_to"`

	ActivityStatus          string     `gorm:"column:activity_status;type:varchar(20);not null;default:'draft';index:idx_activities_status" json:"activity_status"`
	ActivityMaxParticipants int        `gorm:"column:activity_max_participants;default:0" json:"activity_max_participants"` // 0 = unlimited
	ActivityCreatedBy       *uuid.UUID `gorm:"column:activity_created_by;type:uuid"       json:"activity_created_by"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;type:timestamptz;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;type:timestamptz;autoUpdateTime" json:"activity_updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;type:timestamptz;index"          json:"activity_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

func (m *ActivityModel) IsTerminal() bool {
	return m.ActivityStatus == ActivityStatusCompleted || m.ActivityStatus == ActivityStatusCancelled
}
