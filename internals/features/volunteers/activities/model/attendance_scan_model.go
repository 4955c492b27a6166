package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scan actions and payload sources as stored on the audit row
const (
	ScanActionTimeIn  = "time_in"
	ScanActionTimeOut = "time_out"

	ScanSourceActivityQR = "activity_qr"
	ScanSourceProfileQR  = "profile_qr"
)

// AttendanceScanModel is the append-only audit trail of accepted scans.
// The raw decoded QR payload is kept as JSONB so disputes can be traced
// back to what the camera actually delivered.
type AttendanceScanModel struct {
	AttendanceScanID         uuid.UUID      `gorm:"column:attendance_scan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_scan_id"`
	AttendanceScanActivityID uuid.UUID      `gorm:"column:attendance_scan_activity_id;type:uuid;not null;index:idx_attendance_scans_activity" json:"attendance_scan_activity_id"`
	AttendanceScanUserID     uuid.UUID      `gorm:"column:attendance_scan_user_id;type:uuid;not null" json:"attendance_scan_user_id"`
	AttendanceScanAction     string         `gorm:"column:attendance_scan_action;type:varchar(10);not null" json:"attendance_scan_action"`
	AttendanceScanSource     string         `gorm:"column:attendance_scan_source;type:varchar(15);not null" json:"attendance_scan_source"`
	AttendanceScanPayload    datatypes.JSON `gorm:"column:attendance_scan_payload;type:jsonb"               json:"attendance_scan_payload"`
	AttendanceScanScannedAt  time.Time      `gorm:"column:attendance_scan_scanned_at;type:timestamptz;not null" json:"attendance_scan_scanned_at"`
	AttendanceScanAppliedAt  time.Time      `gorm:"column:attendance_scan_applied_at;type:timestamptz;not null" json:"attendance_scan_applied_at"`
	AttendanceScanAdjusted   bool           `gorm:"column:attendance_scan_adjusted;default:false"               json:"attendance_scan_adjusted"`
	AttendanceScanCreatedAt  time.Time      `gorm:"column:attendance_scan_created_at;type:timestamptz;autoCreateTime" json:"attendance_scan_created_at"`
}

func (AttendanceScanModel) TableName() string {
	return "attendance_scans"
}
