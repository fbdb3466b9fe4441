// file: internals/features/school/academics/calendar/model/bimester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bimester: pembagian term akademik (± dua bulan) dalam satu cycle
// (tahun ajaran). Minggu akademik & hari libur tergantung ke bimester.
type BimesterModel struct {
	BimesterID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bimester_id" json:"bimester_id"`
	BimesterCycleID uuid.UUID `gorm:"type:uuid;not null;index;column:bimester_cycle_id"                 json:"bimester_cycle_id"`

	BimesterName  string `gorm:"type:varchar(80);not null;column:bimester_name" json:"bimester_name"`
	BimesterOrder int    `gorm:"not null;default:1;column:bimester_order"       json:"bimester_order"`

	BimesterStartDate time.Time `gorm:"type:date;not null;column:bimester_start_date" json:"bimester_start_date"`
	BimesterEndDate   time.Time `gorm:"type:date;not null;column:bimester_end_date"   json:"bimester_end_date"`

	BimesterIsActive bool `gorm:"not null;default:true;column:bimester_is_active" json:"bimester_is_active"`

	BimesterCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:bimester_created_at" json:"bimester_created_at"`
	BimesterUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:bimester_updated_at" json:"bimester_updated_at"`
	BimesterDeletedAt gorm.DeletedAt `gorm:"column:bimester_deleted_at;index"                                   json:"bimester_deleted_at,omitempty"`
}

func (BimesterModel) TableName() string {
	return "bimesters"
}
