package service

import (
	"fmt"
	"math"
	"time"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// LateGrace is the tolerance after the scheduled end before a time-out
// scan is snapped back to the window boundary.
const LateGrace = 3 * time.Minute

// AttendanceWindow is the resolved [start, end] of one activity date in
// the organizational timezone.
type AttendanceWindow struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow combines the activity date with its "HH:MM" wall-clock
// bounds. The stored date may carry a UTC midnight from the date column,
// so only its Y/M/D is used.
func ResolveWindow(date time.Time, timeFrom, timeTo string, loc *time.Location) (AttendanceWindow, error) {
	start, err := atWallClock(date, timeFrom, loc)
	if err != nil {
		return AttendanceWindow{}, fmt.Errorf("invalid time_from %q: %w", timeFrom, err)
	}
	end, err := atWallClock(date, timeTo, loc)
	if err != nil {
		return AttendanceWindow{}, fmt.Errorf("invalid time_to %q: %w", timeTo, err)
	}
	if !end.After(start) {
		return AttendanceWindow{}, fmt.Errorf("activity window is empty: %s >= %s", timeFrom, timeTo)
	}
	return AttendanceWindow{Start: start, End: end}, nil
}

func atWallClock(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// snapTimeIn snaps an early scan to the window start. Returns the
// timestamp to store and whether it was adjusted.
func snapTimeIn(scanAt time.Time, w AttendanceWindow) (time.Time, bool) {
	if scanAt.Before(w.Start) {
		return w.Start, true
	}
	return scanAt, false
}

// snapTimeOut snaps a scan later than end+grace back to the window end.
// A scan exactly at end+grace is still accepted as-is.
func snapTimeOut(scanAt time.Time, w AttendanceWindow) (time.Time, bool) {
	if scanAt.After(w.End.Add(LateGrace)) {
		return w.End, true
	}
	return scanAt, false
}

// computeTotalHours derives served hours from a time-in/time-out pair,
// rounded to the nearest minute equivalent.
func computeTotalHours(in, out time.Time) float64 {
	minutes := math.Round(out.Sub(in).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return minutes / 60
}

type attendanceResult struct {
	Changed  bool
	Adjusted bool
}

// applyTimeIn mutates the participant for a time-in scan. A second
// time-in is a no-op so camera retries never double-count.
func applyTimeIn(p *model.ActivityParticipantModel, scanAt time.Time, w AttendanceWindow) attendanceResult {
	if p.ActivityParticipantTimeIn != nil {
		return attendanceResult{Changed: false, Adjusted: p.ActivityParticipantTimeInAdjusted}
	}
	applied, adjusted := snapTimeIn(scanAt, w)
	p.ActivityParticipantTimeIn = &applied
	p.ActivityParticipantTimeInAdjusted = adjusted
	p.ActivityParticipantStatus = model.ParticipantStatusAttended
	return attendanceResult{Changed: true, Adjusted: adjusted}
}

// applyTimeOut mutates the participant for a time-out scan and
// recomputes total hours. Requires a prior time-in.
func applyTimeOut(p *model.ActivityParticipantModel, scanAt time.Time, w AttendanceWindow) (attendanceResult, error) {
	if p.ActivityParticipantTimeIn == nil {
		return attendanceResult{}, ErrNoTimeInRecorded
	}
	if p.ActivityParticipantTimeOut != nil {
		return attendanceResult{Changed: false, Adjusted: p.ActivityParticipantTimeOutAdjusted}, nil
	}
	applied, adjusted := snapTimeOut(scanAt, w)
	// keep time_in <= time_out even if a late snap lands before an
	// adjusted time_in on a very short window
	if applied.Before(*p.ActivityParticipantTimeIn) {
		applied = *p.ActivityParticipantTimeIn
	}
	p.ActivityParticipantTimeOut = &applied
	p.ActivityParticipantTimeOutAdjusted = adjusted
	total := computeTotalHours(*p.ActivityParticipantTimeIn, applied)
	p.ActivityParticipantTotalHours = &total
	return attendanceResult{Changed: true, Adjusted: adjusted}, nil
}
