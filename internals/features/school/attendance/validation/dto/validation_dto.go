// file: internals/features/school/attendance/validation/dto/validation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Konteks pendaftaran yang sedang disusun di UI. Field opsional boleh
// kosong — cek yang inputnya belum ada akan dilewati.
type ValidateRegistrationRequest struct {
	CycleID uuid.UUID `json:"cycle_id" validate:"required,uuid4"`
	Date    string    `json:"date"     validate:"required"`

	BimesterID *uuid.UUID `json:"bimester_id"  validate:"omitempty,uuid4"`
	TeacherID  *uuid.UUID `json:"teacher_id"   validate:"omitempty,uuid4"`
	SectionID  *uuid.UUID `json:"section_id"   validate:"omitempty,uuid4"`

	StudentCount *int `json:"student_count" validate:"omitempty,gte=0"`
}

func (r ValidateRegistrationRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(r.Date))
}

type AttendanceConfigCreateRequest struct {
	CycleID        uuid.UUID `json:"cycle_id"         validate:"required,uuid4"`
	OpenTime       string    `json:"open_time"        validate:"required"`
	CloseTime      string    `json:"close_time"       validate:"required"`
	EditWindowDays int       `json:"edit_window_days" validate:"gte=0,lte=30"`
}
