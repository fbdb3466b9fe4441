// file: internals/features/school/academics/schedules/dto/schedules_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/schedules/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

const dateLayout = "2006-01-02"

type TeacherScheduleCreateRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required,uuid4"`
	SectionID uuid.UUID `json:"section_id" validate:"required,uuid4"`
	CourseID  uuid.UUID `json:"course_id"  validate:"required,uuid4"`
	IsoDay    int       `json:"iso_day"    validate:"required,min=1,max=7"`
	StartTime string    `json:"start_time" validate:"required"` // "HH:MM"
	EndTime   string    `json:"end_time"   validate:"required"`
}

func (r TeacherScheduleCreateRequest) ToModel() (model.TeacherScheduleModel, error) {
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return model.TeacherScheduleModel{}, err
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return model.TeacherScheduleModel{}, err
	}
	return model.TeacherScheduleModel{
		TeacherScheduleTeacherID: r.TeacherID,
		TeacherScheduleSectionID: r.SectionID,
		TeacherScheduleCourseID:  r.CourseID,
		TeacherScheduleIsoDay:    r.IsoDay,
		TeacherScheduleStartTime: start,
		TeacherScheduleEndTime:   end,
	}, nil
}

type SectionScheduleCreateRequest struct {
	SectionID uuid.UUID `json:"section_id" validate:"required,uuid4"`
	CourseID  uuid.UUID `json:"course_id"  validate:"required,uuid4"`
	IsoDay    int       `json:"iso_day"    validate:"required,min=1,max=7"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time"   validate:"required"`
}

func (r SectionScheduleCreateRequest) ToModel() (model.SectionScheduleModel, error) {
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return model.SectionScheduleModel{}, err
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return model.SectionScheduleModel{}, err
	}
	return model.SectionScheduleModel{
		SectionScheduleSectionID: r.SectionID,
		SectionScheduleCourseID:  r.CourseID,
		SectionScheduleIsoDay:    r.IsoDay,
		SectionScheduleStartTime: start,
		SectionScheduleEndTime:   end,
	}, nil
}

type TeacherAbsenceCreateRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required,uuid4"`
	Date      string    `json:"date"       validate:"required,datetime=2006-01-02"`
	Reason    string    `json:"reason"     validate:"required,max=160"`
}

func (r TeacherAbsenceCreateRequest) ToModel() model.TeacherAbsenceModel {
	d, _ := time.Parse(dateLayout, r.Date)
	return model.TeacherAbsenceModel{
		TeacherAbsenceTeacherID: r.TeacherID,
		TeacherAbsenceDate:      d,
		TeacherAbsenceReason:    strings.TrimSpace(r.Reason),
	}
}
