// file: internals/features/school/attendance/validation/model/attendance_config_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

// Konfigurasi absensi aktif per cycle: jendela jam pencatatan dan batas
// hari mundur untuk edit. Informasional pada pipeline validasi (cek #8),
// tidak pernah memblokir registrasi.
type AttendanceConfigModel struct {
	AttendanceConfigID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_config_id" json:"attendance_config_id"`
	AttendanceConfigCycleID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_config_cycle_id"                 json:"attendance_config_cycle_id"`

	AttendanceConfigOpenTime  dbtime.Tod `gorm:"type:time;not null;default:'07:00';column:attendance_config_open_time"  json:"attendance_config_open_time"`
	AttendanceConfigCloseTime dbtime.Tod `gorm:"type:time;not null;default:'18:00';column:attendance_config_close_time" json:"attendance_config_close_time"`

	AttendanceConfigEditWindowDays int `gorm:"not null;default:3;column:attendance_config_edit_window_days" json:"attendance_config_edit_window_days"`

	AttendanceConfigIsActive bool `gorm:"not null;default:true;column:attendance_config_is_active" json:"attendance_config_is_active"`

	AttendanceConfigCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_config_created_at" json:"attendance_config_created_at"`
	AttendanceConfigUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_config_updated_at" json:"attendance_config_updated_at"`
	AttendanceConfigDeletedAt gorm.DeletedAt `gorm:"column:attendance_config_deleted_at;index"                                   json:"attendance_config_deleted_at,omitempty"`
}

func (AttendanceConfigModel) TableName() string {
	return "attendance_configs"
}
