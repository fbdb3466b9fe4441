// file: internals/features/school/academics/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schCtrl "sekolahku_backend/internals/features/school/academics/schedules/controller"
)

func SchedulesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schCtrl.NewSchedulesController(db)

	ts := r.Group("/teacher-schedules")
	ts.Post("/", ctl.CreateTeacherSchedule)
	ts.Get("/", ctl.ListTeacherSchedules)
	ts.Delete("/:id", ctl.DeleteTeacherSchedule)

	ss := r.Group("/section-schedules")
	ss.Post("/", ctl.CreateSectionSchedule)
	ss.Get("/", ctl.ListSectionSchedules)
	ss.Delete("/:id", ctl.DeleteSectionSchedule)

	ta := r.Group("/teacher-absences")
	ta.Post("/", ctl.CreateTeacherAbsence)
	ta.Get("/", ctl.ListTeacherAbsences)
	ta.Delete("/:id", ctl.DeleteTeacherAbsence)
}

func SchedulesUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schCtrl.NewSchedulesController(db)

	sch := r.Group("/schedules")
	sch.Get("/teachers", ctl.ListTeacherSchedules)
	sch.Get("/sections", ctl.ListSectionSchedules)
}
