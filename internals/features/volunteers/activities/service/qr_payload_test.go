package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

func signUserID(userID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(userID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseScanPayload_ActivityQR(t *testing.T) {
	contextID := uuid.New()
	userID := uuid.New()

	raw := fmt.Sprintf(`{"userId":%q,"name":"Juan Dela Cruz","contactNumber":"+639171234567","email":"juan@example.com","activityId":%q,"activityTitle":"Coastal Cleanup","activityDate":"2025-03-15","version":1}`,
		userID, contextID)

	identity, err := ParseScanPayload(raw, contextID, "")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, contextID, identity.ActivityID)
	assert.Equal(t, "Juan Dela Cruz", identity.Name)
	assert.Equal(t, model.ScanSourceActivityQR, identity.Source)
}

func TestParseScanPayload_ActivityMismatch(t *testing.T) {
	contextID := uuid.New()
	otherID := uuid.New()
	userID := uuid.New()

	raw := fmt.Sprintf(`{"userId":%q,"name":"Juan","activityId":%q}`, userID, otherID)

	_, err := ParseScanPayload(raw, contextID, "")
	assert.ErrorIs(t, err, ErrActivityMismatch)
}

func TestParseScanPayload_ProfileQR(t *testing.T) {
	contextID := uuid.New()
	userID := uuid.New()

	t.Run("bound to context activity", func(t *testing.T) {
		raw := fmt.Sprintf(`{"userId":%q,"name":"Maria","contactNumber":"+639181112222","version":2}`, userID)

		identity, err := ParseScanPayload(raw, contextID, "")
		require.NoError(t, err)
		assert.Equal(t, contextID, identity.ActivityID)
		assert.Equal(t, model.ScanSourceProfileQR, identity.Source)
	})

	t.Run("valid signature accepted", func(t *testing.T) {
		secret := "org-secret"
		raw := fmt.Sprintf(`{"userId":%q,"name":"Maria","signature":%q}`,
			userID, signUserID(userID.String(), secret))

		_, err := ParseScanPayload(raw, contextID, secret)
		assert.NoError(t, err)
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		raw := fmt.Sprintf(`{"userId":%q,"name":"Maria","signature":"deadbeef"}`, userID)

		_, err := ParseScanPayload(raw, contextID, "org-secret")
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("signature skipped when no secret configured", func(t *testing.T) {
		raw := fmt.Sprintf(`{"userId":%q,"name":"Maria","signature":"deadbeef"}`, userID)

		_, err := ParseScanPayload(raw, contextID, "")
		assert.NoError(t, err)
	})
}

func TestParseScanPayload_Malformed(t *testing.T) {
	contextID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"not JSON", "BADGE-0012345"},
		{"truncated JSON", `{"userId":"abc`},
		{"missing userId", `{"name":"Juan"}`},
		{"userId not a UUID", `{"userId":"12345","name":"Juan"}`},
		{"missing name", fmt.Sprintf(`{"userId":%q}`, userID)},
		{"blank name", fmt.Sprintf(`{"userId":%q,"name":"  "}`, userID)},
		{"activityId not a UUID", fmt.Sprintf(`{"userId":%q,"name":"Juan","activityId":"nope"}`, userID)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScanPayload(tt.raw, contextID, "")
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"timeIn", model.ScanActionTimeIn, true},
		{"time_in", model.ScanActionTimeIn, true},
		{"timeOut", model.ScanActionTimeOut, true},
		{"time_out", model.ScanActionTimeOut, true},
		{" timeIn ", model.ScanActionTimeIn, true},
		{"checkin", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeAction(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
