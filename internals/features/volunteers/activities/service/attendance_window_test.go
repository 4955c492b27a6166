package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

var manila = mustLoadLocation("Asia/Manila")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// window 09:00-12:00 on 2025-03-15, the scenario used throughout
func testWindow(t *testing.T) AttendanceWindow {
	t.Helper()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	w, err := ResolveWindow(date, "09:00", "12:00", manila)
	require.NoError(t, err)
	return w
}

func at(t *testing.T, hhmmss string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", "2025-03-15 "+hhmmss, manila)
	require.NoError(t, err)
	return ts
}

func TestResolveWindow(t *testing.T) {
	w := testWindow(t)
	assert.Equal(t, at(t, "09:00:00"), w.Start)
	assert.Equal(t, at(t, "12:00:00"), w.End)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := ResolveWindow(date, "9am", "12:00", manila)
	assert.Error(t, err)

	_, err = ResolveWindow(date, "09:00", "not-a-time", manila)
	assert.Error(t, err)

	// inverted and empty windows rejected
	_, err = ResolveWindow(date, "12:00", "09:00", manila)
	assert.Error(t, err)
	_, err = ResolveWindow(date, "09:00", "09:00", manila)
	assert.Error(t, err)
}

func TestSnapTimeIn(t *testing.T) {
	w := testWindow(t)

	tests := []struct {
		name         string
		scanAt       time.Time
		want         time.Time
		wantAdjusted bool
	}{
		{"early scan snaps to start", at(t, "08:40:00"), w.Start, true},
		{"one second early still snaps", at(t, "08:59:59"), w.Start, true},
		{"exactly at start unchanged", at(t, "09:00:00"), at(t, "09:00:00"), false},
		{"inside window unchanged", at(t, "09:30:00"), at(t, "09:30:00"), false},
		{"late time-in is kept as-is", at(t, "11:50:00"), at(t, "11:50:00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adjusted := snapTimeIn(tt.scanAt, w)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAdjusted, adjusted)
		})
	}
}

func TestSnapTimeOut(t *testing.T) {
	w := testWindow(t)

	tests := []struct {
		name         string
		scanAt       time.Time
		want         time.Time
		wantAdjusted bool
	}{
		{"inside window unchanged", at(t, "11:30:00"), at(t, "11:30:00"), false},
		{"at end unchanged", at(t, "12:00:00"), at(t, "12:00:00"), false},
		{"within grace unchanged", at(t, "12:02:00"), at(t, "12:02:00"), false},
		// the grace boundary itself: 12:03 is not past end+3min
		{"exactly at grace boundary unchanged", at(t, "12:03:00"), at(t, "12:03:00"), false},
		{"one second past grace snaps", at(t, "12:03:01"), w.End, true},
		{"12:04 snaps to end", at(t, "12:04:00"), w.End, true},
		{"way past end snaps to end", at(t, "15:00:00"), w.End, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adjusted := snapTimeOut(tt.scanAt, w)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAdjusted, adjusted)
		})
	}
}

func TestComputeTotalHours(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
		want float64
	}{
		{"full window", "09:00:00", "12:00:00", 3.0},
		{"three and a half hours", "09:00:00", "12:30:00", 3.5},
		{"rounds seconds to nearest minute", "09:00:00", "11:59:40", 3.0},
		{"half a minute rounds up to one minute", "09:00:00", "09:00:30", 1.0 / 60},
		{"zero duration", "10:00:00", "10:00:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeTotalHours(at(t, tt.in), at(t, tt.out))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	// never negative even on a degenerate pair
	assert.Equal(t, 0.0, computeTotalHours(at(t, "12:00:00"), at(t, "11:00:00")))
}

func TestApplyTimeIn(t *testing.T) {
	w := testWindow(t)

	t.Run("first scan marks attended", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		res := applyTimeIn(p, at(t, "09:10:00"), w)

		assert.True(t, res.Changed)
		assert.False(t, res.Adjusted)
		require.NotNil(t, p.ActivityParticipantTimeIn)
		assert.Equal(t, at(t, "09:10:00"), *p.ActivityParticipantTimeIn)
		assert.Equal(t, model.ParticipantStatusAttended, p.ActivityParticipantStatus)
		assert.Nil(t, p.ActivityParticipantTotalHours)
	})

	t.Run("early scan is snapped and flagged", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		res := applyTimeIn(p, at(t, "08:40:00"), w)

		assert.True(t, res.Changed)
		assert.True(t, res.Adjusted)
		require.NotNil(t, p.ActivityParticipantTimeIn)
		assert.Equal(t, w.Start, *p.ActivityParticipantTimeIn)
		assert.True(t, p.ActivityParticipantTimeInAdjusted)
	})

	t.Run("second scan is idempotent", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		applyTimeIn(p, at(t, "09:10:00"), w)
		first := *p.ActivityParticipantTimeIn

		res := applyTimeIn(p, at(t, "10:30:00"), w)
		assert.False(t, res.Changed)
		assert.Equal(t, first, *p.ActivityParticipantTimeIn)
	})
}

func TestApplyTimeOut(t *testing.T) {
	w := testWindow(t)

	t.Run("requires a prior time-in", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		_, err := applyTimeOut(p, at(t, "12:00:00"), w)
		assert.ErrorIs(t, err, ErrNoTimeInRecorded)
		assert.Nil(t, p.ActivityParticipantTimeOut)
	})

	t.Run("in-window scan commits raw timestamp and hours", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		applyTimeIn(p, at(t, "09:00:00"), w)

		res, err := applyTimeOut(p, at(t, "12:02:00"), w)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.False(t, res.Adjusted)
		require.NotNil(t, p.ActivityParticipantTotalHours)
		assert.InDelta(t, 3.0+2.0/60.0, *p.ActivityParticipantTotalHours, 1e-9)
	})

	t.Run("past-grace scan snaps to end and flags", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		applyTimeIn(p, at(t, "08:40:00"), w) // snapped to 09:00

		res, err := applyTimeOut(p, at(t, "12:05:00"), w)
		require.NoError(t, err)
		assert.True(t, res.Adjusted)
		require.NotNil(t, p.ActivityParticipantTimeOut)
		assert.Equal(t, w.End, *p.ActivityParticipantTimeOut)
		assert.True(t, p.ActivityParticipantTimeOutAdjusted)
		require.NotNil(t, p.ActivityParticipantTotalHours)
		assert.InDelta(t, 3.0, *p.ActivityParticipantTotalHours, 1e-9)
	})

	t.Run("second scan is idempotent", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		applyTimeIn(p, at(t, "09:00:00"), w)
		_, err := applyTimeOut(p, at(t, "11:00:00"), w)
		require.NoError(t, err)
		firstOut := *p.ActivityParticipantTimeOut
		firstHours := *p.ActivityParticipantTotalHours

		res, err := applyTimeOut(p, at(t, "12:00:00"), w)
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Equal(t, firstOut, *p.ActivityParticipantTimeOut)
		assert.Equal(t, firstHours, *p.ActivityParticipantTotalHours)
	})

	t.Run("hours stay nil until time-out exists", func(t *testing.T) {
		p := &model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}
		applyTimeIn(p, at(t, "09:00:00"), w)
		assert.Nil(t, p.ActivityParticipantTotalHours)
	})
}
