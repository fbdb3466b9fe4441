// file: internals/features/school/academics/calendar/dto/calendar_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/calendar/model"
)

const dateLayout = "2006-01-02"

/* ===================== Bimester ===================== */

type BimesterCreateRequest struct {
	CycleID   uuid.UUID `json:"cycle_id"   validate:"required,uuid4"`
	Name      string    `json:"name"       validate:"required,max=80"`
	Order     int       `json:"order"      validate:"required,min=1,max=8"`
	StartDate string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date"   validate:"required,datetime=2006-01-02"`
	IsActive  *bool     `json:"is_active,omitempty"`
}

func (r BimesterCreateRequest) ToModel() model.BimesterModel {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	m := model.BimesterModel{
		BimesterCycleID:   r.CycleID,
		BimesterName:      strings.TrimSpace(r.Name),
		BimesterOrder:     r.Order,
		BimesterStartDate: start,
		BimesterEndDate:   end,
		BimesterIsActive:  true,
	}
	if r.IsActive != nil {
		m.BimesterIsActive = *r.IsActive
	}
	return m
}

type BimesterUpdateRequest struct {
	Name      *string `json:"name,omitempty"       validate:"omitempty,max=80"`
	Order     *int    `json:"order,omitempty"      validate:"omitempty,min=1,max=8"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r BimesterUpdateRequest) Apply(m *model.BimesterModel) {
	if r.Name != nil {
		m.BimesterName = strings.TrimSpace(*r.Name)
	}
	if r.Order != nil {
		m.BimesterOrder = *r.Order
	}
	if r.StartDate != nil {
		if t, err := time.Parse(dateLayout, *r.StartDate); err == nil {
			m.BimesterStartDate = t
		}
	}
	if r.EndDate != nil {
		if t, err := time.Parse(dateLayout, *r.EndDate); err == nil {
			m.BimesterEndDate = t
		}
	}
	if r.IsActive != nil {
		m.BimesterIsActive = *r.IsActive
	}
}

/* ===================== Holiday ===================== */

type HolidayCreateRequest struct {
	BimesterID  uuid.UUID `json:"bimester_id" validate:"required,uuid4"`
	Date        string    `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string    `json:"description" validate:"required,max=160"`
}

func (r HolidayCreateRequest) ToModel() model.HolidayModel {
	d, _ := time.Parse(dateLayout, r.Date)
	return model.HolidayModel{
		HolidayBimesterID:  r.BimesterID,
		HolidayDate:        d,
		HolidayDescription: strings.TrimSpace(r.Description),
	}
}

/* ===================== Academic week ===================== */

type AcademicWeekCreateRequest struct {
	BimesterID uuid.UUID `json:"bimester_id" validate:"required,uuid4"`
	Number     int       `json:"number"      validate:"required,min=1,max=12"`
	Type       string    `json:"type"        validate:"required,oneof=regular evaluation review break"`
	StartDate  string    `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string    `json:"end_date"    validate:"required,datetime=2006-01-02"`
}

func (r AcademicWeekCreateRequest) ToModel() model.AcademicWeekModel {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return model.AcademicWeekModel{
		AcademicWeekBimesterID: r.BimesterID,
		AcademicWeekNumber:     r.Number,
		AcademicWeekType:       strings.ToLower(strings.TrimSpace(r.Type)),
		AcademicWeekStartDate:  start,
		AcademicWeekEndDate:    end,
	}
}
