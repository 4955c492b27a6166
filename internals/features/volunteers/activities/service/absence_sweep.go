package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// applyAbsence is the per-row form of the completion sweep: only a
// still-registered participant flips to absent, attended and
// already-absent rows are left untouched. Applying it twice is the
// same as applying it once. The WHERE clause in sweepAbsences must
// stay in step with this predicate.
func applyAbsence(p *model.ActivityParticipantModel) bool {
	if p.ActivityParticipantStatus != model.ParticipantStatusRegistered {
		return false
	}
	p.ActivityParticipantStatus = model.ParticipantStatusAbsent
	return true
}

// sweepAbsences flips every still-registered participant of the
// activity to absent. Attended participants are untouched. Idempotent:
// a second run finds no registered rows and updates nothing, so an
// interrupted completion can simply be retried.
func sweepAbsences(tx *gorm.DB, activityID uuid.UUID) (int64, error) {
	res := tx.Model(&model.ActivityParticipantModel{}).
		Where("activity_participant_activity_id = ? AND activity_participant_status = ?",
			activityID, model.ParticipantStatusRegistered).
		Update("activity_participant_status", model.ParticipantStatusAbsent)
	return res.RowsAffected, res.Error
}
