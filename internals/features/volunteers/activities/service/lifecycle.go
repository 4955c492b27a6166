package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// allowedTransitions is the full edge set of the activity state
// machine. completed and cancelled have no outgoing edges.
var allowedTransitions = map[string][]string{
	model.ActivityStatusDraft:     {model.ActivityStatusPublished, model.ActivityStatusCancelled},
	model.ActivityStatusPublished: {model.ActivityStatusOngoing, model.ActivityStatusCancelled},
	model.ActivityStatusOngoing:   {model.ActivityStatusCompleted, model.ActivityStatusCancelled},
	model.ActivityStatusCompleted: {},
	model.ActivityStatusCancelled: {},
}

// CanTransition reports whether from → to is a legal lifecycle edge.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AcceptsScans reports whether an activity in the given status takes
// attendance scans. Only ongoing does; in particular a completed
// activity never accepts another scan, its ledger is closed by the
// absence sweep.
func AcceptsScans(status string) bool {
	return status == model.ActivityStatusOngoing
}

// AcceptsCorrections reports whether the admin override path may
// rewrite attendance: while ongoing and after completion, never on a
// cancelled activity.
func AcceptsCorrections(status string) bool {
	return status == model.ActivityStatusOngoing || status == model.ActivityStatusCompleted
}

type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// Transition moves an activity along the state machine. The →completed
// edge runs the absence sweep in the same transaction: the status
// change and the sweep commit together or not at all, so no completed
// activity is ever visible with unreconciled registrations.
func (s *LifecycleService) Transition(ctx context.Context, activityID uuid.UUID, newStatus string) (*model.ActivityModel, error) {
	var activity model.ActivityModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("activity_id = ?", activityID).
			First(&activity).Error; err != nil {
			return err
		}

		if !CanTransition(activity.ActivityStatus, newStatus) {
			return ErrInvalidStatusTransition
		}

		if newStatus == model.ActivityStatusCompleted {
			swept, err := sweepAbsences(tx, activityID)
			if err != nil {
				return err
			}
			if swept > 0 {
				log.Printf("[INFO] activity %s completed: %d no-shows marked absent", activityID, swept)
			}
		}

		if err := tx.Model(&model.ActivityModel{}).
			Where("activity_id = ?", activityID).
			Update("activity_status", newStatus).Error; err != nil {
			return err
		}

		activity.ActivityStatus = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
