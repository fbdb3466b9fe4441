// file: internals/features/school/attendance/statuses/model/attendance_status_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Katalog status absensi. PK integer kecil (bukan uuid) karena status
// direferensikan per-record absensi dalam jumlah besar.
type AttendanceStatusModel struct {
	AttendanceStatusID int `gorm:"primaryKey;autoIncrement;column:attendance_status_id" json:"attendance_status_id"`

	AttendanceStatusCode string `gorm:"type:varchar(32);not null;uniqueIndex;column:attendance_status_code" json:"attendance_status_code"` // PRESENT, ABSENT, ...
	AttendanceStatusName string `gorm:"type:varchar(80);not null;column:attendance_status_name"             json:"attendance_status_name"`

	AttendanceStatusColor string `gorm:"type:varchar(16);not null;default:'#9E9E9E';column:attendance_status_color" json:"attendance_status_color"`

	AttendanceStatusRequiresJustification bool `gorm:"not null;default:false;column:attendance_status_requires_justification" json:"attendance_status_requires_justification"`
	AttendanceStatusCanHaveNotes          bool `gorm:"not null;default:true;column:attendance_status_can_have_notes"          json:"attendance_status_can_have_notes"`
	AttendanceStatusIsNegative            bool `gorm:"not null;default:false;column:attendance_status_is_negative"            json:"attendance_status_is_negative"`
	AttendanceStatusIsExcused             bool `gorm:"not null;default:false;column:attendance_status_is_excused"             json:"attendance_status_is_excused"`
	AttendanceStatusIsTemporal            bool `gorm:"not null;default:false;column:attendance_status_is_temporal"            json:"attendance_status_is_temporal"`

	AttendanceStatusOrder    int  `gorm:"not null;default:0;column:attendance_status_order"        json:"attendance_status_order"`
	AttendanceStatusIsActive bool `gorm:"not null;default:true;column:attendance_status_is_active" json:"attendance_status_is_active"`

	AttendanceStatusCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_status_created_at" json:"attendance_status_created_at"`
	AttendanceStatusUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_status_updated_at" json:"attendance_status_updated_at"`
	AttendanceStatusDeletedAt gorm.DeletedAt `gorm:"column:attendance_status_deleted_at;index"                                   json:"attendance_status_deleted_at,omitempty"`
}

func (AttendanceStatusModel) TableName() string {
	return "attendance_statuses"
}
