package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"bayanihan_backend/internals/features/volunteers/activities/model"
)

// qrPayload is the decoded wire shape. Two variants share it:
// activity-bound badges carry activity_id, lifetime profile badges
// carry a signature instead.
type qrPayload struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	ActivityID    string `json:"activityId"`
	ActivityTitle string `json:"activityTitle"`
	ActivityDate  string `json:"activityDate"`
	Signature     string `json:"signature"`
	Version       int    `json:"version"`
}

// ScanIdentity is the validated output handed to the ledger.
type ScanIdentity struct {
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Name       string
	Source     string // model.ScanSourceActivityQR | model.ScanSourceProfileQR
	RawPayload []byte
}

// ParseScanPayload validates a decoded QR string against the admin's
// activity context. Pure: no side effects, no DB access.
//
// Discrimination follows the payload itself: presence of activityId
// makes it an activity badge which must match the context activity;
// absence makes it a profile badge, valid only because the context
// supplies the activity out-of-band. Profile badges are HMAC-signed
// over the userId when a signing secret is configured.
func ParseScanPayload(raw string, contextActivityID uuid.UUID, signingSecret string) (ScanIdentity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ScanIdentity{}, ErrMalformedPayload
	}

	var p qrPayload
	if err := sonic.Unmarshal([]byte(raw), &p); err != nil {
		return ScanIdentity{}, ErrMalformedPayload
	}

	userID, err := uuid.Parse(strings.TrimSpace(p.UserID))
	if err != nil {
		return ScanIdentity{}, ErrMalformedPayload
	}
	if strings.TrimSpace(p.Name) == "" {
		return ScanIdentity{}, ErrMalformedPayload
	}

	identity := ScanIdentity{
		UserID:     userID,
		ActivityID: contextActivityID,
		Name:       strings.TrimSpace(p.Name),
		RawPayload: []byte(raw),
	}

	if strings.TrimSpace(p.ActivityID) != "" {
		payloadActivityID, err := uuid.Parse(strings.TrimSpace(p.ActivityID))
		if err != nil {
			return ScanIdentity{}, ErrMalformedPayload
		}
		if payloadActivityID != contextActivityID {
			return ScanIdentity{}, ErrActivityMismatch
		}
		identity.Source = model.ScanSourceActivityQR
		return identity, nil
	}

	if signingSecret != "" && !verifyProfileSignature(p.UserID, p.Signature, signingSecret) {
		return ScanIdentity{}, ErrMalformedPayload
	}
	identity.Source = model.ScanSourceProfileQR
	return identity, nil
}

func verifyProfileSignature(userID, signature, secret string) bool {
	sig, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(userID))
	return hmac.Equal(sig, mac.Sum(nil))
}

// NormalizeAction maps the wire action names onto the stored scan
// actions. Accepts both the camelCase the scanner UI sends and the
// snake_case the API documents.
func NormalizeAction(action string) (string, bool) {
	switch strings.TrimSpace(action) {
	case "timeIn", "time_in":
		return model.ScanActionTimeIn, true
	case "timeOut", "time_out":
		return model.ScanActionTimeOut, true
	default:
		return "", false
	}
}
