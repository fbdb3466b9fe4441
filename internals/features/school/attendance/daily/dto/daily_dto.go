// file: internals/features/school/attendance/daily/dto/daily_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Payload registrasi harian: satu status per enrollment. Ekspansi
// per-mapel terjadi di server berdasarkan jadwal section.
type DailyRegistrationRequest struct {
	SectionID uuid.UUID         `json:"section_id" validate:"required,uuid4"`
	Date      string            `json:"date"       validate:"required"`
	Statuses  map[uuid.UUID]int `json:"statuses"   validate:"required"`
}

func (r DailyRegistrationRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(r.Date))
}

type UpdateStatusRequest struct {
	NewStatusID int    `json:"new_status_id" validate:"required,gt=0"`
	Reason      string `json:"reason"        validate:"omitempty,max=300"`
}
