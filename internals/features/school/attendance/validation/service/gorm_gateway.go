// file: internals/features/school/attendance/validation/service/gorm_gateway.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	calmodel "sekolahku_backend/internals/features/school/academics/calendar/model"
	schmodel "sekolahku_backend/internals/features/school/academics/schedules/model"
	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	valmodel "sekolahku_backend/internals/features/school/attendance/validation/model"
)

// GormGateway mengimplementasikan semua gateway validasi di atas satu
// koneksi GORM. ErrRecordNotFound dipetakan ke Lookup{Found:false},
// error lain diteruskan apa adanya (pipeline yang membungkusnya).
type GormGateway struct {
	DB *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{DB: db}
}

const dateOnly = "2006-01-02"

func (g *GormGateway) BimesterByDate(ctx context.Context, cycleID uuid.UUID, date time.Time) (Lookup[BimesterInfo], error) {
	var m calmodel.BimesterModel
	err := g.DB.WithContext(ctx).
		Where("bimester_cycle_id = ?", cycleID).
		Where("bimester_start_date <= ? AND bimester_end_date >= ?", date.Format(dateOnly), date.Format(dateOnly)).
		Order("bimester_order ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[BimesterInfo](), nil
	}
	if err != nil {
		return NotFound[BimesterInfo](), err
	}
	return Found(BimesterInfo{ID: m.BimesterID, Name: m.BimesterName}), nil
}

func (g *GormGateway) HolidayByDate(ctx context.Context, bimesterID uuid.UUID, date time.Time) (Lookup[HolidayInfo], error) {
	var m calmodel.HolidayModel
	err := g.DB.WithContext(ctx).
		Where("holiday_bimester_id = ?", bimesterID).
		Where("holiday_date = ?", date.Format(dateOnly)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[HolidayInfo](), nil
	}
	if err != nil {
		return NotFound[HolidayInfo](), err
	}
	return Found(HolidayInfo{ID: m.HolidayID, Description: m.HolidayDescription}), nil
}

func (g *GormGateway) AcademicWeekByDate(ctx context.Context, bimesterID uuid.UUID, date time.Time) (Lookup[AcademicWeekInfo], error) {
	var m calmodel.AcademicWeekModel
	err := g.DB.WithContext(ctx).
		Where("academic_week_bimester_id = ?", bimesterID).
		Where("academic_week_start_date <= ? AND academic_week_end_date >= ?", date.Format(dateOnly), date.Format(dateOnly)).
		Order("academic_week_number ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[AcademicWeekInfo](), nil
	}
	if err != nil {
		return NotFound[AcademicWeekInfo](), err
	}
	return Found(AcademicWeekInfo{
		ID:     m.AcademicWeekID,
		Number: m.AcademicWeekNumber,
		Type:   m.AcademicWeekType,
	}), nil
}

func (g *GormGateway) TeacherAbsenceByDate(ctx context.Context, teacherID uuid.UUID, date time.Time) (Lookup[TeacherAbsenceInfo], error) {
	var m schmodel.TeacherAbsenceModel
	err := g.DB.WithContext(ctx).
		Where("teacher_absence_teacher_id = ?", teacherID).
		Where("teacher_absence_date = ?", date.Format(dateOnly)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[TeacherAbsenceInfo](), nil
	}
	if err != nil {
		return NotFound[TeacherAbsenceInfo](), err
	}
	return Found(TeacherAbsenceInfo{ID: m.TeacherAbsenceID, Reason: m.TeacherAbsenceReason}), nil
}

func (g *GormGateway) TeacherScheduleExists(ctx context.Context, teacherID uuid.UUID, isoDay int, sectionID uuid.UUID) (bool, error) {
	var n int64
	q := g.DB.WithContext(ctx).
		Model(&schmodel.TeacherScheduleModel{}).
		Where("teacher_schedule_teacher_id = ?", teacherID).
		Where("teacher_schedule_iso_day = ?", isoDay)
	if sectionID != uuid.Nil {
		q = q.Where("teacher_schedule_section_id = ?", sectionID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (g *GormGateway) SectionScheduleExists(ctx context.Context, sectionID uuid.UUID, isoDay int) (bool, error) {
	var n int64
	err := g.DB.WithContext(ctx).
		Model(&schmodel.SectionScheduleModel{}).
		Where("section_schedule_section_id = ?", sectionID).
		Where("section_schedule_iso_day = ?", isoDay).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (g *GormGateway) RoleHasStatuses(ctx context.Context, roleID int) (bool, error) {
	var n int64
	err := g.DB.WithContext(ctx).
		Model(&statmodel.RoleAttendanceStatusModel{}).
		Where("role_attendance_status_role_id = ?", roleID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (g *GormGateway) ActiveConfig(ctx context.Context, cycleID uuid.UUID) (Lookup[ConfigInfo], error) {
	var m valmodel.AttendanceConfigModel
	err := g.DB.WithContext(ctx).
		Where("attendance_config_cycle_id = ?", cycleID).
		Where("attendance_config_is_active = TRUE").
		Order("attendance_config_updated_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[ConfigInfo](), nil
	}
	if err != nil {
		return NotFound[ConfigInfo](), err
	}
	return Found(ConfigInfo{
		ID:             m.AttendanceConfigID,
		OpenTime:       m.AttendanceConfigOpenTime.Format("15:04"),
		CloseTime:      m.AttendanceConfigCloseTime.Format("15:04"),
		EditWindowDays: m.AttendanceConfigEditWindowDays,
	}), nil
}
