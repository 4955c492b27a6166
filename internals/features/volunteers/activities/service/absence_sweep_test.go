package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

func TestApplyAbsence(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		wantChanged bool
		wantStatus  string
	}{
		{"registered no-show is marked absent", model.ParticipantStatusRegistered, true, model.ParticipantStatusAbsent},
		{"attended participant is untouched", model.ParticipantStatusAttended, false, model.ParticipantStatusAttended},
		{"already absent stays absent", model.ParticipantStatusAbsent, false, model.ParticipantStatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.ActivityParticipantModel{ActivityParticipantStatus: tt.status}
			assert.Equal(t, tt.wantChanged, applyAbsence(&p))
			assert.Equal(t, tt.wantStatus, p.ActivityParticipantStatus)
		})
	}
}

// Sweeping the same roster a second time changes nothing: every row a
// first pass touched is absent by then, and absent rows are not
// eligible.
func TestApplyAbsenceIdempotent(t *testing.T) {
	p := model.ActivityParticipantModel{ActivityParticipantStatus: model.ParticipantStatusRegistered}

	assert.True(t, applyAbsence(&p))
	assert.Equal(t, model.ParticipantStatusAbsent, p.ActivityParticipantStatus)

	assert.False(t, applyAbsence(&p))
	assert.Equal(t, model.ParticipantStatusAbsent, p.ActivityParticipantStatus)
}

func TestApplyAbsenceClearsRoster(t *testing.T) {
	roster := []model.ActivityParticipantModel{
		{ActivityParticipantStatus: model.ParticipantStatusRegistered},
		{ActivityParticipantStatus: model.ParticipantStatusAttended},
		{ActivityParticipantStatus: model.ParticipantStatusRegistered},
		{ActivityParticipantStatus: model.ParticipantStatusAbsent},
	}

	swept := 0
	for i := range roster {
		if applyAbsence(&roster[i]) {
			swept++
		}
	}
	assert.Equal(t, 2, swept)

	// after the sweep nobody is still registered
	for _, p := range roster {
		assert.NotEqual(t, model.ParticipantStatusRegistered, p.ActivityParticipantStatus)
	}
}
