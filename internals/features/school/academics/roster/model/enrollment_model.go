// file: internals/features/school/academics/roster/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment: pendaftaran siswa pada satu section untuk satu cycle.
// Unit yang dialamatkan record absensi. Nama siswa disimpan sebagai
// snapshot dari layanan data siswa eksternal (master siswa bukan milik
// subsistem ini).
type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentCycleID   uuid.UUID `gorm:"type:uuid;not null;column:enrollment_cycle_id"                       json:"enrollment_cycle_id"`
	EnrollmentSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_section_id"               json:"enrollment_section_id"`
	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollment_student_id"               json:"enrollment_student_id"`

	EnrollmentStudentName string `gorm:"type:varchar(160);not null;column:enrollment_student_name" json:"enrollment_student_name"`

	EnrollmentIsActive bool `gorm:"not null;default:true;column:enrollment_is_active" json:"enrollment_is_active"`

	EnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index"                                   json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
