// file: internals/features/school/academics/schedules/model/teacher_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

// Jadwal mengajar guru per (hari ISO, section, mapel).
// Data jadwal DIBUAT oleh modul penjadwalan eksternal; di sini hanya disimpan
// dan dibaca untuk validasi registrasi absensi.
type TeacherScheduleModel struct {
	TeacherScheduleID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_schedule_id" json:"teacher_schedule_id"`
	TeacherScheduleTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_schedule_teacher_id"               json:"teacher_schedule_teacher_id"`
	TeacherScheduleSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_schedule_section_id"               json:"teacher_schedule_section_id"`
	TeacherScheduleCourseID  uuid.UUID `gorm:"type:uuid;not null;column:teacher_schedule_course_id"                      json:"teacher_schedule_course_id"`

	// ISO day-of-week: Senin=1 .. Minggu=7
	TeacherScheduleIsoDay int `gorm:"not null;column:teacher_schedule_iso_day" json:"teacher_schedule_iso_day"`

	TeacherScheduleStartTime dbtime.Tod `gorm:"type:time;not null;column:teacher_schedule_start_time" json:"teacher_schedule_start_time"`
	TeacherScheduleEndTime   dbtime.Tod `gorm:"type:time;not null;column:teacher_schedule_end_time"   json:"teacher_schedule_end_time"`

	TeacherScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_schedule_created_at" json:"teacher_schedule_created_at"`
	TeacherScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_schedule_updated_at" json:"teacher_schedule_updated_at"`
	TeacherScheduleDeletedAt gorm.DeletedAt `gorm:"column:teacher_schedule_deleted_at;index"                                   json:"teacher_schedule_deleted_at,omitempty"`
}

func (TeacherScheduleModel) TableName() string {
	return "teacher_schedules"
}
