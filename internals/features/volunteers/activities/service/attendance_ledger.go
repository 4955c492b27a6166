package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bayanihan_backend/internals/configs"
	"bayanihan_backend/internals/features/volunteers/activities/model"
)

type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// RecordAttendance commits one scan against the ledger.
//
// The whole read-adjust-write runs in a transaction with the
// participant row locked FOR UPDATE, so two near-simultaneous scans for
// the same (activity, user) serialize and the second one takes the
// idempotent path instead of racing. Duplicate delivery of the same
// payload is therefore safe to retry from the caller side.
func (s *LedgerService) RecordAttendance(ctx context.Context, identity ScanIdentity, action string, scanAt time.Time) (*model.ActivityParticipantModel, error) {
	loc := configs.OrgLocation()
	scanAt = scanAt.In(loc)

	var participant model.ActivityParticipantModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The activity row is taken FOR SHARE so the status check
		// serializes against a concurrent Transition, which locks the
		// same row FOR UPDATE. Without it a scan could read a stale
		// ongoing status while a completion sweep is committing.
		var activity model.ActivityModel
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Where("activity_id = ?", identity.ActivityID).First(&activity).Error; err != nil {
			return err
		}
		if !AcceptsScans(activity.ActivityStatus) {
			return ErrInvalidActivityState
		}

		window, err := ResolveWindow(activity.ActivityDate, activity.ActivityTimeFrom, activity.ActivityTimeTo, loc)
		if err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("activity_participant_activity_id = ? AND activity_participant_user_id = ?",
				identity.ActivityID, identity.UserID).
			First(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownParticipant
			}
			return err
		}

		var res attendanceResult
		switch action {
		case model.ScanActionTimeIn:
			res = applyTimeIn(&participant, scanAt, window)
		case model.ScanActionTimeOut:
			res, err = applyTimeOut(&participant, scanAt, window)
			if err != nil {
				return err
			}
		default:
			return ErrMalformedPayload
		}

		if !res.Changed {
			// first write already won; nothing to persist
			return nil
		}

		if err := tx.Save(&participant).Error; err != nil {
			return err
		}

		appliedAt := scanAt
		if action == model.ScanActionTimeIn {
			appliedAt = *participant.ActivityParticipantTimeIn
		} else {
			appliedAt = *participant.ActivityParticipantTimeOut
		}

		scanRow := model.AttendanceScanModel{
			AttendanceScanActivityID: identity.ActivityID,
			AttendanceScanUserID:     identity.UserID,
			AttendanceScanAction:     action,
			AttendanceScanSource:     identity.Source,
			AttendanceScanPayload:    datatypes.JSON(identity.RawPayload),
			AttendanceScanScannedAt:  scanAt,
			AttendanceScanAppliedAt:  appliedAt,
			AttendanceScanAdjusted:   res.Adjusted,
		}
		return tx.Create(&scanRow).Error
	})
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// OverrideAttendance is the explicit correction path for mis-scans,
// distinct from scan-driven recording: it may rewrite committed
// timestamps, clears the automatic-adjustment flags, and recomputes
// total hours. Allowed while ongoing and after completion, never on a
// cancelled activity.
func (s *LedgerService) OverrideAttendance(ctx context.Context, activityID, userID uuid.UUID, timeIn, timeOut *time.Time) (*model.ActivityParticipantModel, error) {
	loc := configs.OrgLocation()

	var participant model.ActivityParticipantModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FOR SHARE for the same reason as RecordAttendance: a
		// correction must not race a concurrent cancellation.
		var activity model.ActivityModel
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Where("activity_id = ?", activityID).First(&activity).Error; err != nil {
			return err
		}
		if !AcceptsCorrections(activity.ActivityStatus) {
			return ErrInvalidActivityState
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("activity_participant_activity_id = ? AND activity_participant_user_id = ?",
				activityID, userID).
			First(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownParticipant
			}
			return err
		}

		if timeOut != nil && timeIn == nil && participant.ActivityParticipantTimeIn == nil {
			return ErrNoTimeInRecorded
		}

		if timeIn != nil {
			in := timeIn.In(loc)
			participant.ActivityParticipantTimeIn = &in
			participant.ActivityParticipantTimeInAdjusted = false
			participant.ActivityParticipantStatus = model.ParticipantStatusAttended
		}
		if timeOut != nil {
			out := timeOut.In(loc)
			participant.ActivityParticipantTimeOut = &out
			participant.ActivityParticipantTimeOutAdjusted = false
		}

		if participant.ActivityParticipantTimeIn != nil && participant.ActivityParticipantTimeOut != nil {
			if participant.ActivityParticipantTimeOut.Before(*participant.ActivityParticipantTimeIn) {
				return ErrMalformedPayload
			}
			total := computeTotalHours(*participant.ActivityParticipantTimeIn, *participant.ActivityParticipantTimeOut)
			participant.ActivityParticipantTotalHours = &total
		} else {
			participant.ActivityParticipantTotalHours = nil
		}

		return tx.Save(&participant).Error
	})
	if err != nil {
		return nil, err
	}
	return &participant, nil
}
