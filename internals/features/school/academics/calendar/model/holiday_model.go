// file: internals/features/school/academics/calendar/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HolidayModel struct {
	HolidayID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_id" json:"holiday_id"`
	HolidayBimesterID uuid.UUID `gorm:"type:uuid;not null;index;column:holiday_bimester_id"              json:"holiday_bimester_id"`

	HolidayDate        time.Time `gorm:"type:date;not null;index;column:holiday_date"       json:"holiday_date"`
	HolidayDescription string    `gorm:"type:varchar(160);not null;column:holiday_description" json:"holiday_description"`

	HolidayCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:holiday_created_at" json:"holiday_created_at"`
	HolidayUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:holiday_updated_at" json:"holiday_updated_at"`
	HolidayDeletedAt gorm.DeletedAt `gorm:"column:holiday_deleted_at;index"                                   json:"holiday_deleted_at,omitempty"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}
