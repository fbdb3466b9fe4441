// file: internals/features/school/academics/calendar/model/academic_week_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe minggu akademik. Absensi hanya berlaku untuk minggu non-break.
const (
	AcademicWeekTypeRegular    = "regular"
	AcademicWeekTypeEvaluation = "evaluation"
	AcademicWeekTypeReview     = "review"
	AcademicWeekTypeBreak      = "break"
)

type AcademicWeekModel struct {
	AcademicWeekID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_week_id" json:"academic_week_id"`
	AcademicWeekBimesterID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_week_bimester_id"              json:"academic_week_bimester_id"`

	AcademicWeekNumber int    `gorm:"not null;column:academic_week_number"                              json:"academic_week_number"`
	AcademicWeekType   string `gorm:"type:varchar(16);not null;default:'regular';column:academic_week_type" json:"academic_week_type"`

	AcademicWeekStartDate time.Time `gorm:"type:date;not null;column:academic_week_start_date" json:"academic_week_start_date"`
	AcademicWeekEndDate   time.Time `gorm:"type:date;not null;column:academic_week_end_date"   json:"academic_week_end_date"`

	AcademicWeekCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_week_created_at" json:"academic_week_created_at"`
	AcademicWeekUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_week_updated_at" json:"academic_week_updated_at"`
	AcademicWeekDeletedAt gorm.DeletedAt `gorm:"column:academic_week_deleted_at;index"                                   json:"academic_week_deleted_at,omitempty"`
}

func (AcademicWeekModel) TableName() string {
	return "academic_weeks"
}
