// file: internals/route/details/academics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calRoute "sekolahku_backend/internals/features/school/academics/calendar/route"
	rosRoute "sekolahku_backend/internals/features/school/academics/roster/route"
	schRoute "sekolahku_backend/internals/features/school/academics/schedules/route"
)

// Kalender publik (read-only) boleh diakses tanpa login — dipakai
// landing page jadwal sekolah.
func AcademicsPublicRoutes(r fiber.Router, db *gorm.DB) {
	calRoute.CalendarUserRoutes(r, db)
}

func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	calRoute.CalendarUserRoutes(r, db)
	schRoute.SchedulesUserRoutes(r, db)
	rosRoute.RosterUserRoutes(r, db)
}

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	calRoute.CalendarAdminRoutes(r, db)
	schRoute.SchedulesAdminRoutes(r, db)
	rosRoute.RosterAdminRoutes(r, db)
}
