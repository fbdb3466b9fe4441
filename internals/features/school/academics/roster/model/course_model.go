// file: internals/features/school/academics/roster/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseName  string `gorm:"type:varchar(120);not null;column:course_name"          json:"course_name"`
	CourseColor string `gorm:"type:varchar(16);not null;default:'#607D8B';column:course_color" json:"course_color"`

	CourseIsActive bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"                                   json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
