// file: internals/features/school/attendance/daily/controller/daily_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attdto "sekolahku_backend/internals/features/school/attendance/daily/dto"
	attsvc "sekolahku_backend/internals/features/school/attendance/daily/service"
	statsvc "sekolahku_backend/internals/features/school/attendance/statuses/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apperr"
)

type DailyAttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	Registration *attsvc.RegistrationService
	View         *attsvc.ConsolidatedViewService
	Editor       *attsvc.EditorService
	Catalog      *statsvc.StatusCatalogService
}

func NewDailyAttendanceController(db *gorm.DB) *DailyAttendanceController {
	store := attsvc.NewGormAttendanceStore(db)
	return &DailyAttendanceController{
		DB:           db,
		Validator:    validator.New(),
		Registration: attsvc.NewRegistrationService(store),
		View:         attsvc.NewConsolidatedViewService(store),
		Editor:       attsvc.NewEditorService(store),
		Catalog:      statsvc.NewStatusCatalogService(statsvc.NewGormStatusStore(db)),
	}
}

func (ctl *DailyAttendanceController) jsonAppErr(c *fiber.Ctx, err error) error {
	if apperr.IsConfiguration(err) {
		log.Printf("[CONFIG-DEFECT] %v", err)
	}
	return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
}

// RegisterDaily: catat absensi harian satu section. Role si pencatat
// harus punya grant untuk SEMUA status yang dikirim.
func (ctl *DailyAttendanceController) RegisterDaily(c *fiber.Ctx) error {
	var req attdto.DailyRegistrationRequest
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

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roleID := helper.GetRoleIDFromToken(c)

	allowed, err := ctl.Catalog.ResolveForRole(c.Context(), roleID)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}
	if len(allowed) == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Role ini tidak punya status absensi")
	}
	allowedIDs := make(map[int]bool, len(allowed))
	for _, st := range allowed {
		allowedIDs[st.AttendanceStatusID] = true
	}
	for _, statusID := range req.Statuses {
		if statusID > 0 && !allowedIDs[statusID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ada status yang tidak diizinkan untuk role ini")
		}
	}

	n, err := ctl.Registration.Register(c.Context(), attsvc.RegistrationInput{
		SectionID:  req.SectionID,
		Date:       date,
		Selections: req.Statuses,
		RecordedBy: userID,
	})
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}

	view, err := ctl.View.Refresh(c.Context(), req.SectionID, date)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}
	return helper.JsonCreated(c, "Absensi tercatat", fiber.Map{
		"records_created": n,
		"view":            view,
	})
}

// GetConsolidated: view absensi section per tanggal, dibangun ulang
// penuh setiap panggilan.
func (ctl *DailyAttendanceController) GetConsolidated(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(strings.TrimSpace(c.Query("section_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("date")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date harus YYYY-MM-DD")
	}

	view, err := ctl.View.Refresh(c.Context(), sectionID, date)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}

// UpdateRecordStatus: koreksi status satu record, lalu kembalikan view
// konsolidasi yang sudah dibangun ulang.
func (ctl *DailyAttendanceController) UpdateRecordStatus(c *fiber.Ctx) error {
	recordID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req attdto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roleID := helper.GetRoleIDFromToken(c)

	allowed, err := ctl.Catalog.ResolveForRole(c.Context(), roleID)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}
	permitted := false
	for _, st := range allowed {
		if st.AttendanceStatusID == req.NewStatusID {
			permitted = true
			break
		}
	}
	if !permitted {
		return helper.JsonError(c, fiber.StatusForbidden, "Status pengganti tidak diizinkan untuk role ini")
	}

	rec, err := ctl.Editor.UpdateStatus(c.Context(), recordID, req.NewStatusID, req.Reason, userID)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}

	view, err := ctl.View.Refresh(c.Context(), rec.ClassAttendanceSectionID, rec.ClassAttendanceDate)
	if err != nil {
		return ctl.jsonAppErr(c, err)
	}
	return helper.JsonUpdated(c, "Status absensi dikoreksi", view)
}
