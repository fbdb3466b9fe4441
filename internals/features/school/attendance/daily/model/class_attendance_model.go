// file: internals/features/school/attendance/daily/model/class_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record absensi per (enrollment, mapel, tanggal).
// Status asli (original) tidak pernah berubah setelah pencatatan —
// koreksi hanya menyentuh status current + metadata modifikasi.
type ClassAttendanceModel struct {
	ClassAttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_attendance_id" json:"class_attendance_id"`

	ClassAttendanceSectionID    uuid.UUID `gorm:"type:uuid;not null;index;column:class_attendance_section_id"                                      json:"class_attendance_section_id"`
	ClassAttendanceEnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_cell;column:class_attendance_enrollment_id"          json:"class_attendance_enrollment_id"`
	ClassAttendanceCourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_cell;column:class_attendance_course_id"              json:"class_attendance_course_id"`
	ClassAttendanceDate         time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_cell;index;column:class_attendance_date"             json:"class_attendance_date"`

	ClassAttendanceOriginalStatusID int `gorm:"not null;column:class_attendance_original_status_id" json:"class_attendance_original_status_id"`
	ClassAttendanceCurrentStatusID  int `gorm:"not null;column:class_attendance_current_status_id"  json:"class_attendance_current_status_id"`

	ClassAttendanceRecordedBy uuid.UUID `gorm:"type:uuid;not null;column:class_attendance_recorded_by"                  json:"class_attendance_recorded_by"`
	ClassAttendanceRecordedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:class_attendance_recorded_at" json:"class_attendance_recorded_at"`

	// Metadata koreksi terakhir (modified_by, reason, modified_at).
	// NULL selama record belum pernah dikoreksi.
	ClassAttendanceModification datatypes.JSONMap `gorm:"column:class_attendance_modification" json:"class_attendance_modification,omitempty"`

	ClassAttendanceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_attendance_created_at" json:"class_attendance_created_at"`
	ClassAttendanceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_attendance_updated_at" json:"class_attendance_updated_at"`
	ClassAttendanceDeletedAt gorm.DeletedAt `gorm:"column:class_attendance_deleted_at;index"                                   json:"class_attendance_deleted_at,omitempty"`
}

func (ClassAttendanceModel) TableName() string {
	return "class_attendances"
}
