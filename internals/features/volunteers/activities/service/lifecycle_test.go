package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

func TestCanTransition(t *testing.T) {
	allStatuses := []string{
		model.ActivityStatusDraft,
		model.ActivityStatusPublished,
		model.ActivityStatusOngoing,
		model.ActivityStatusCompleted,
		model.ActivityStatusCancelled,
	}

	allowed := map[[2]string]bool{
		{model.ActivityStatusDraft, model.ActivityStatusPublished}:     true,
		{model.ActivityStatusDraft, model.ActivityStatusCancelled}:     true,
		{model.ActivityStatusPublished, model.ActivityStatusOngoing}:   true,
		{model.ActivityStatusPublished, model.ActivityStatusCancelled}: true,
		{model.ActivityStatusOngoing, model.ActivityStatusCompleted}:   true,
		{model.ActivityStatusOngoing, model.ActivityStatusCancelled}:   true,
	}

	// exhaustive over every (from, to) pair: only the six edges above
	// are legal, terminal states have no way out
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]string{from, to}]
			assert.Equalf(t, want, CanTransition(from, to), "%s → %s", from, to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("archived", model.ActivityStatusPublished))
	assert.False(t, CanTransition(model.ActivityStatusDraft, "archived"))
	assert.False(t, CanTransition("", ""))
}

func TestAcceptsScans(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{model.ActivityStatusDraft, false},
		{model.ActivityStatusPublished, false},
		{model.ActivityStatusOngoing, true},
		{model.ActivityStatusCompleted, false},
		{model.ActivityStatusCancelled, false},
		{"archived", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, AcceptsScans(tt.status), "status %q", tt.status)
	}
}

func TestAcceptsCorrections(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{model.ActivityStatusDraft, false},
		{model.ActivityStatusPublished, false},
		{model.ActivityStatusOngoing, true},
		{model.ActivityStatusCompleted, true},
		{model.ActivityStatusCancelled, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, AcceptsCorrections(tt.status), "status %q", tt.status)
	}
}

// A terminal activity must be sealed on every axis: no outgoing
// lifecycle edge and no further scans. A completed activity that still
// accepted a scan would reopen a ledger the absence sweep already
// closed.
func TestTerminalStatusesAreSealed(t *testing.T) {
	allStatuses := []string{
		model.ActivityStatusDraft,
		model.ActivityStatusPublished,
		model.ActivityStatusOngoing,
		model.ActivityStatusCompleted,
		model.ActivityStatusCancelled,
	}

	for _, status := range []string{model.ActivityStatusCompleted, model.ActivityStatusCancelled} {
		activity := model.ActivityModel{ActivityStatus: status}
		assert.Truef(t, activity.IsTerminal(), "%s is terminal", status)
		assert.Falsef(t, AcceptsScans(status), "%s must not accept scans", status)
		for _, to := range allStatuses {
			assert.Falsef(t, CanTransition(status, to), "%s → %s must be rejected", status, to)
		}
	}
}
