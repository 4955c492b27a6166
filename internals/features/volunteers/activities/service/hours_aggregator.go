package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

type HoursService struct {
	DB *gorm.DB
}

func NewHoursService(db *gorm.DB) *HoursService {
	return &HoursService{DB: db}
}

// YearlyHours sums served hours for a volunteer across all activities
// dated within the calendar year. Only attended rows with a committed
// time-out count; a lone time-in contributes nothing.
func (s *HoursService) YearlyHours(ctx context.Context, userID uuid.UUID, year int) (float64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	return s.sumHours(ctx, userID, from, to)
}

// WindowHours is the same aggregate over an arbitrary [from, to) date
// window, used by active-window reporting exports.
func (s *HoursService) WindowHours(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	return s.sumHours(ctx, userID, from, to)
}

func (s *HoursService) sumHours(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	var total float64
	err := s.DB.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Joins("JOIN activities ON activities.activity_id = activity_participants.activity_participant_activity_id").
		Where("activity_participants.activity_participant_user_id = ?", userID).
		Where("activity_participants.activity_participant_status = ?", model.ParticipantStatusAttended).
		Where("activity_participants.activity_participant_total_hours IS NOT NULL").
		Where("activities.activity_date >= ? AND activities.activity_date < ?", from, to).
		Where("activities.activity_deleted_at IS NULL").
		Select("COALESCE(SUM(activity_participants.activity_participant_total_hours), 0)").
		Scan(&total).Error
	return total, err
}
