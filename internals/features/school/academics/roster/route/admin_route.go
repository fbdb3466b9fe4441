// file: internals/features/school/academics/roster/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rosCtrl "sekolahku_backend/internals/features/school/academics/roster/controller"
)

func RosterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rosCtrl.NewRosterController(db)

	co := r.Group("/courses")
	co.Post("/", ctl.CreateCourse)
	co.Get("/", ctl.ListCourses)

	en := r.Group("/enrollments")
	en.Post("/", ctl.CreateEnrollment)
	en.Get("/", ctl.ListEnrollmentsBySection)
	en.Post("/:id/deactivate", ctl.DeactivateEnrollment)
}

func RosterUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rosCtrl.NewRosterController(db)

	ro := r.Group("/roster")
	ro.Get("/courses", ctl.ListCourses)
	ro.Get("/enrollments", ctl.ListEnrollmentsBySection)
}
