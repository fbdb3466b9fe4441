// file: internals/features/school/academics/schedules/model/teacher_absence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ketidakhadiran guru (izin/sakit/dinas). Keberadaan record untuk
// (guru, tanggal) = guru TIDAK tersedia → registrasi absensi diblokir.
type TeacherAbsenceModel struct {
	TeacherAbsenceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_absence_id" json:"teacher_absence_id"`
	TeacherAbsenceTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_absence_teacher_id"               json:"teacher_absence_teacher_id"`

	TeacherAbsenceDate   time.Time `gorm:"type:date;not null;index;column:teacher_absence_date"   json:"teacher_absence_date"`
	TeacherAbsenceReason string    `gorm:"type:varchar(160);not null;column:teacher_absence_reason" json:"teacher_absence_reason"`

	TeacherAbsenceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_absence_created_at" json:"teacher_absence_created_at"`
	TeacherAbsenceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_absence_updated_at" json:"teacher_absence_updated_at"`
	TeacherAbsenceDeletedAt gorm.DeletedAt `gorm:"column:teacher_absence_deleted_at;index"                                   json:"teacher_absence_deleted_at,omitempty"`
}

func (TeacherAbsenceModel) TableName() string {
	return "teacher_absences"
}
