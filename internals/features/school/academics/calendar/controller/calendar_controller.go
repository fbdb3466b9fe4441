// file: internals/features/school/academics/calendar/controller/calendar_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	caldto "sekolahku_backend/internals/features/school/academics/calendar/dto"
	calmodel "sekolahku_backend/internals/features/school/academics/calendar/model"
	helper "sekolahku_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type CalendarController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseDateQuery(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "query ?date= wajib diisi (YYYY-MM-DD)")
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "format tanggal tidak valid (YYYY-MM-DD)")
	}
	return d, nil
}

// ===============================
// Bimester
// ===============================

func (ctl *CalendarController) CreateBimester(c *fiber.Ctx) error {
	var req caldto.BimesterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if !m.BimesterEndDate.After(m.BimesterStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus setelah start_date")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Bimester dibuat", m)
}

func (ctl *CalendarController) ListBimesters(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&calmodel.BimesterModel{})

	if s := strings.TrimSpace(c.Query("cycle_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
		}
		tx = tx.Where("bimester_cycle_id = ?", id)
	}

	var rows []calmodel.BimesterModel
	if err := tx.Order("bimester_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *CalendarController) PatchBimester(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req caldto.BimesterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m calmodel.BimesterModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "bimester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bimester tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&m)
	m.BimesterUpdatedAt = time.Now().UTC()
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Bimester diperbarui", m)
}

func (ctl *CalendarController) DeleteBimester(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&calmodel.BimesterModel{}, "bimester_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Bimester dihapus", fiber.Map{"bimester_id": id})
}

// GET /bimesters/by-date?cycle_id=&date=
// Presence = ada bimester yang mencakup tanggal itu; null = tidak ada.
func (ctl *CalendarController) GetBimesterByDate(c *fiber.Ctx) error {
	cycleID, err := uuid.Parse(strings.TrimSpace(c.Query("cycle_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}
	date, err := parseDateQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m calmodel.BimesterModel
	err = ctl.DB.WithContext(c.Context()).
		Where("bimester_cycle_id = ? AND bimester_is_active = TRUE AND bimester_start_date <= ? AND bimester_end_date >= ?",
			cycleID, date.Format(dateLayout), date.Format(dateLayout)).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "tidak ada bimester untuk tanggal ini", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", m)
}

// ===============================
// Holiday
// ===============================

func (ctl *CalendarController) CreateHoliday(c *fiber.Ctx) error {
	var req caldto.HolidayCreateRequest
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
	return helper.JsonCreated(c, "Hari libur dibuat", m)
}

func (ctl *CalendarController) ListHolidays(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&calmodel.HolidayModel{})
	if s := strings.TrimSpace(c.Query("bimester_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "bimester_id tidak valid")
		}
		tx = tx.Where("holiday_bimester_id = ?", id)
	}

	var rows []calmodel.HolidayModel
	if err := tx.Order("holiday_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *CalendarController) DeleteHoliday(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&calmodel.HolidayModel{}, "holiday_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Hari libur dihapus", fiber.Map{"holiday_id": id})
}

// ===============================
// Academic week
// ===============================

func (ctl *CalendarController) CreateAcademicWeek(c *fiber.Ctx) error {
	var req caldto.AcademicWeekCreateRequest
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
	return helper.JsonCreated(c, "Minggu akademik dibuat", m)
}

func (ctl *CalendarController) ListAcademicWeeks(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&calmodel.AcademicWeekModel{})
	if s := strings.TrimSpace(c.Query("bimester_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "bimester_id tidak valid")
		}
		tx = tx.Where("academic_week_bimester_id = ?", id)
	}

	var rows []calmodel.AcademicWeekModel
	if err := tx.Order("academic_week_number ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *CalendarController) DeleteAcademicWeek(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&calmodel.AcademicWeekModel{}, "academic_week_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Minggu akademik dihapus", fiber.Map{"academic_week_id": id})
}
