// file: internals/features/school/academics/roster/controller/roster_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rosmodel "sekolahku_backend/internals/features/school/academics/roster/model"
	helper "sekolahku_backend/internals/helpers"
)

type RosterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ===================== Courses ===================== */

type courseCreateRequest struct {
	Name  string `json:"name"  validate:"required,max=120"`
	Color string `json:"color" validate:"omitempty,max=16"`
}

func (ctl *RosterController) CreateCourse(c *fiber.Ctx) error {
	var req courseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := rosmodel.CourseModel{
		CourseName:     strings.TrimSpace(req.Name),
		CourseIsActive: true,
	}
	if s := strings.TrimSpace(req.Color); s != "" {
		m.CourseColor = s
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Mapel dibuat", m)
}

func (ctl *RosterController) ListCourses(c *fiber.Ctx) error {
	var rows []rosmodel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("course_is_active = TRUE").
		Order("course_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===================== Enrollments ===================== */

type enrollmentCreateRequest struct {
	CycleID     uuid.UUID `json:"cycle_id"     validate:"required,uuid4"`
	SectionID   uuid.UUID `json:"section_id"   validate:"required,uuid4"`
	StudentID   uuid.UUID `json:"student_id"   validate:"required,uuid4"`
	StudentName string    `json:"student_name" validate:"required,max=160"`
}

func (ctl *RosterController) CreateEnrollment(c *fiber.Ctx) error {
	var req enrollmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := rosmodel.EnrollmentModel{
		EnrollmentCycleID:     req.CycleID,
		EnrollmentSectionID:   req.SectionID,
		EnrollmentStudentID:   req.StudentID,
		EnrollmentStudentName: strings.TrimSpace(req.StudentName),
		EnrollmentIsActive:    true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Enrollment dibuat", m)
}

// ListEnrollmentsBySection: roster mentah per section (termasuk siswa
// yang belum punya absensi — beda dengan view konsolidasi).
func (ctl *RosterController) ListEnrollmentsBySection(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(strings.TrimSpace(c.Query("section_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}

	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	base := ctl.DB.WithContext(c.Context()).
		Model(&rosmodel.EnrollmentModel{}).
		Where("enrollment_section_id = ? AND enrollment_is_active = TRUE", sectionID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []rosmodel.EnrollmentModel
	if err := base.
		Order("enrollment_student_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "ok", rows, &pg)
}

func (ctl *RosterController) DeactivateEnrollment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	res := ctl.DB.WithContext(c.Context()).
		Model(&rosmodel.EnrollmentModel{}).
		Where("enrollment_id = ?", id).
		Update("enrollment_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Enrollment dinonaktifkan", fiber.Map{"enrollment_id": id})
}
