// file: internals/features/school/attendance/statuses/controller/status_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statdto "sekolahku_backend/internals/features/school/attendance/statuses/dto"
	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
	statsvc "sekolahku_backend/internals/features/school/attendance/statuses/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apperr"
)

type StatusController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Catalog   *statsvc.StatusCatalogService
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{
		DB:        db,
		Validator: validator.New(),
		Catalog:   statsvc.NewStatusCatalogService(statsvc.NewGormStatusStore(db)),
	}
}

/* ===================== User-facing ===================== */

// ListByRole: status yang boleh dipakai role si pemanggil (dari token).
func (ctl *StatusController) ListByRole(c *fiber.Ctx) error {
	roleID := helper.GetRoleIDFromToken(c)
	rows, err := ctl.Catalog.ResolveForRole(c.Context(), roleID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

// ListSelector: katalog untuk dropdown generik (fallback bawaan kalau
// DB belum di-seed).
func (ctl *StatusController) ListSelector(c *fiber.Ctx) error {
	rows, err := ctl.Catalog.ListSelector(c.Context())
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===================== Admin CRUD ===================== */

func (ctl *StatusController) Create(c *fiber.Ctx) error {
	var req statdto.AttendanceStatusCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode status sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Status absensi dibuat", m)
}

func (ctl *StatusController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req statdto.AttendanceStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m statmodel.AttendanceStatusModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "attendance_status_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Status tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Status absensi diperbarui", m)
}

func (ctl *StatusController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).
		Delete(&statmodel.AttendanceStatusModel{}, "attendance_status_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Status tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Status absensi dihapus", fiber.Map{"attendance_status_id": id})
}

/* ===================== Admin grants ===================== */

func (ctl *StatusController) GrantToRole(c *fiber.Ctx) error {
	var req statdto.RoleStatusGrantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := statmodel.RoleAttendanceStatusModel{
		RoleAttendanceStatusRoleID:   req.RoleID,
		RoleAttendanceStatusStatusID: req.StatusID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Grant sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Grant dibuat", m)
}

func (ctl *StatusController) RevokeFromRole(c *fiber.Ctx) error {
	var req statdto.RoleStatusGrantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("role_attendance_status_role_id = ? AND role_attendance_status_status_id = ?", req.RoleID, req.StatusID).
		Delete(&statmodel.RoleAttendanceStatusModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grant tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Grant dicabut", req)
}
