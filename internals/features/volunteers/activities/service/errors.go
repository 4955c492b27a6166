package service

import "errors"

// Engine error taxonomy. Controllers map these onto HTTP statuses;
// anything else bubbling out of the services is a persistence failure
// and safe to retry because the write path is idempotent.
var (
	ErrMalformedPayload        = errors.New("malformed QR payload")
	ErrActivityMismatch        = errors.New("QR payload is bound to a different activity")
	ErrInvalidActivityState    = errors.New("attendance can only be recorded while the activity is ongoing")
	ErrNoTimeInRecorded        = errors.New("no time-in recorded for this participant")
	ErrInvalidStatusTransition = errors.New("invalid activity status transition")
	ErrUnknownParticipant      = errors.New("user is not a participant of this activity")
	ErrActivityFull            = errors.New("activity has reached its participant limit")
	ErrAlreadyJoined           = errors.New("user already joined this activity")
)
