// file: internals/features/school/attendance/validation/controller/validation_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	valdto "sekolahku_backend/internals/features/school/attendance/validation/dto"
	valmodel "sekolahku_backend/internals/features/school/attendance/validation/model"
	valsvc "sekolahku_backend/internals/features/school/attendance/validation/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apperr"
	"sekolahku_backend/internals/helpers/dbtime"
)

type ValidationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Runner    *valsvc.EligibilityRunner
}

func NewValidationController(db *gorm.DB) *ValidationController {
	gw := valsvc.NewGormGateway(db)
	return &ValidationController{
		DB:        db,
		Validator: validator.New(),
		Runner:    valsvc.NewEligibilityRunner(valsvc.NewEligibilityPipeline(gw, gw, gw, gw)),
	}
}

// ValidateRegistration: jalankan pipeline kelayakan untuk konteks
// pendaftaran yang sedang disusun. Role diambil dari token, bukan body.
func (ctl *ValidationController) ValidateRegistration(c *fiber.Ctx) error {
	var req valdto.ValidateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	params := valsvc.EligibilityParams{
		CycleID:      req.CycleID,
		Date:         date,
		BimesterID:   req.BimesterID,
		TeacherID:    req.TeacherID,
		SectionID:    req.SectionID,
		RoleID:       helper.GetRoleIDFromToken(c),
		StudentCount: req.StudentCount,
	}
	res, err := ctl.Runner.Run(c.Context(), params)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}
	return helper.JsonOK(c, "ok", res)
}

// GetActiveConfig: konfigurasi absensi aktif untuk cycle (null kalau
// belum ada — klien menampilkan peringatan, bukan error).
func (ctl *ValidationController) GetActiveConfig(c *fiber.Ctx) error {
	cycleID, err := uuid.Parse(strings.TrimSpace(c.Query("cycle_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}

	gw := valsvc.NewGormGateway(ctl.DB)
	lk, err := gw.ActiveConfig(c.Context(), cycleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	if !lk.Found {
		return helper.JsonOK(c, "belum ada konfigurasi aktif", nil)
	}
	return helper.JsonOK(c, "ok", lk.Value)
}

/* ===== Admin: konfigurasi absensi ===== */

func (ctl *ValidationController) CreateConfig(c *fiber.Ctx) error {
	var req valdto.AttendanceConfigCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	open, err := dbtime.Parse(req.OpenTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "open_time harus HH:MM")
	}
	closeT, err := dbtime.Parse(req.CloseTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "close_time harus HH:MM")
	}

	m := valmodel.AttendanceConfigModel{
		AttendanceConfigCycleID:        req.CycleID,
		AttendanceConfigOpenTime:       open,
		AttendanceConfigCloseTime:      closeT,
		AttendanceConfigEditWindowDays: req.EditWindowDays,
		AttendanceConfigIsActive:       true,
	}

	// Satu konfigurasi aktif per cycle: yang lama dinonaktifkan dulu.
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&valmodel.AttendanceConfigModel{}).
			Where("attendance_config_cycle_id = ? AND attendance_config_is_active = TRUE", req.CycleID).
			Update("attendance_config_is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Konfigurasi absensi dibuat", m)
}

func (ctl *ValidationController) ListConfigs(c *fiber.Ctx) error {
	var rows []valmodel.AttendanceConfigModel
	q := ctl.DB.WithContext(c.Context()).Order("attendance_config_updated_at DESC")
	if s := strings.TrimSpace(c.Query("cycle_id")); s != "" {
		cycleID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
		}
		q = q.Where("attendance_config_cycle_id = ?", cycleID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}
