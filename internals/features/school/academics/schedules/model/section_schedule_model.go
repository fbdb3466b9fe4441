// file: internals/features/school/academics/schedules/model/section_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

// Jadwal section per hari ISO (lepas dari guru) — dipakai saat detail
// jadwal guru tidak tersedia, dan untuk ekspansi registrasi harian
// (satu record absensi per mapel terjadwal).
type SectionScheduleModel struct {
	SectionScheduleID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_schedule_id" json:"section_schedule_id"`
	SectionScheduleSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:section_schedule_section_id"               json:"section_schedule_section_id"`
	SectionScheduleCourseID  uuid.UUID `gorm:"type:uuid;not null;column:section_schedule_course_id"                      json:"section_schedule_course_id"`

	SectionScheduleIsoDay int `gorm:"not null;column:section_schedule_iso_day" json:"section_schedule_iso_day"`

	SectionScheduleStartTime dbtime.Tod `gorm:"type:time;not null;column:section_schedule_start_time" json:"section_schedule_start_time"`
	SectionScheduleEndTime   dbtime.Tod `gorm:"type:time;not null;column:section_schedule_end_time"   json:"section_schedule_end_time"`

	SectionScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:section_schedule_created_at" json:"section_schedule_created_at"`
	SectionScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:section_schedule_updated_at" json:"section_schedule_updated_at"`
	SectionScheduleDeletedAt gorm.DeletedAt `gorm:"column:section_schedule_deleted_at;index"                                   json:"section_schedule_deleted_at,omitempty"`
}

func (SectionScheduleModel) TableName() string {
	return "section_schedules"
}
