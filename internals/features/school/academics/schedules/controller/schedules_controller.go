// file: internals/features/school/academics/schedules/controller/schedules_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schdto "sekolahku_backend/internals/features/school/academics/schedules/dto"
	schmodel "sekolahku_backend/internals/features/school/academics/schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchedulesController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchedulesController(db *gorm.DB) *SchedulesController {
	return &SchedulesController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseIsoDayQuery(c *fiber.Ctx) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(c.Query("iso_day")))
	if err != nil || day < 1 || day > 7 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "iso_day harus 1..7 (Senin=1)")
	}
	return day, nil
}

// ===============================
// Teacher schedules
// ===============================

func (ctl *SchedulesController) CreateTeacherSchedule(c *fiber.Ctx) error {
	var req schdto.TeacherScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "format jam tidak valid (HH:MM)")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Jadwal guru dibuat", m)
}

func (ctl *SchedulesController) ListTeacherSchedules(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&schmodel.TeacherScheduleModel{})

	if s := strings.TrimSpace(c.Query("teacher_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("teacher_schedule_teacher_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("section_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("teacher_schedule_section_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("iso_day")); s != "" {
		day, err := parseIsoDayQuery(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		tx = tx.Where("teacher_schedule_iso_day = ?", day)
	}

	var rows []schmodel.TeacherScheduleModel
	if err := tx.Order("teacher_schedule_iso_day ASC, teacher_schedule_start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *SchedulesController) DeleteTeacherSchedule(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&schmodel.TeacherScheduleModel{}, "teacher_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Jadwal guru dihapus", fiber.Map{"teacher_schedule_id": id})
}

// ===============================
// Section schedules
// ===============================

func (ctl *SchedulesController) CreateSectionSchedule(c *fiber.Ctx) error {
	var req schdto.SectionScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "format jam tidak valid (HH:MM)")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Jadwal section dibuat", m)
}

func (ctl *SchedulesController) ListSectionSchedules(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&schmodel.SectionScheduleModel{})

	if s := strings.TrimSpace(c.Query("section_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		tx = tx.Where("section_schedule_section_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("iso_day")); s != "" {
		day, err := parseIsoDayQuery(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		tx = tx.Where("section_schedule_iso_day = ?", day)
	}

	var rows []schmodel.SectionScheduleModel
	if err := tx.Order("section_schedule_iso_day ASC, section_schedule_start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *SchedulesController) DeleteSectionSchedule(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&schmodel.SectionScheduleModel{}, "section_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Jadwal section dihapus", fiber.Map{"section_schedule_id": id})
}

// ===============================
// Teacher absences
// ===============================

func (ctl *SchedulesController) CreateTeacherAbsence(c *fiber.Ctx) error {
	var req schdto.TeacherAbsenceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Ketidakhadiran guru dicatat", m)
}

func (ctl *SchedulesController) ListTeacherAbsences(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&schmodel.TeacherAbsenceModel{})

	if s := strings.TrimSpace(c.Query("teacher_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("teacher_absence_teacher_id = ?", id)
	}

	var rows []schmodel.TeacherAbsenceModel
	if err := tx.Order("teacher_absence_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *SchedulesController) DeleteTeacherAbsence(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&schmodel.TeacherAbsenceModel{}, "teacher_absence_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Ketidakhadiran guru dihapus", fiber.Map{"teacher_absence_id": id})
}
