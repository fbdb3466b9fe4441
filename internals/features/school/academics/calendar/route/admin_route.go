// file: internals/features/school/academics/calendar/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calCtrl "sekolahku_backend/internals/features/school/academics/calendar/controller"
)

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := calCtrl.NewCalendarController(db)

	// =====================
	// Bimesters
	// =====================
	b := r.Group("/bimesters")
	b.Post("/", ctl.CreateBimester)
	b.Get("/", ctl.ListBimesters)
	b.Patch("/:id", ctl.PatchBimester)
	b.Delete("/:id", ctl.DeleteBimester)

	// =====================
	// Holidays
	// =====================
	h := r.Group("/holidays")
	h.Post("/", ctl.CreateHoliday)
	h.Get("/", ctl.ListHolidays)
	h.Delete("/:id", ctl.DeleteHoliday)

	// =====================
	// Academic weeks
	// =====================
	w := r.Group("/academic-weeks")
	w.Post("/", ctl.CreateAcademicWeek)
	w.Get("/", ctl.ListAcademicWeeks)
	w.Delete("/:id", ctl.DeleteAcademicWeek)
}

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := calCtrl.NewCalendarController(db)

	cal := r.Group("/calendar")
	cal.Get("/bimesters", ctl.ListBimesters)
	cal.Get("/bimesters/by-date", ctl.GetBimesterByDate)
	cal.Get("/academic-weeks", ctl.ListAcademicWeeks)
	cal.Get("/holidays", ctl.ListHolidays)
}
