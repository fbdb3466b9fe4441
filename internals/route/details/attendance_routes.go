// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dailyRoute "sekolahku_backend/internals/features/school/attendance/daily/route"
	statRoute "sekolahku_backend/internals/features/school/attendance/statuses/route"
	valRoute "sekolahku_backend/internals/features/school/attendance/validation/route"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	statRoute.StatusUserRoutes(r, db)
	valRoute.ValidationUserRoutes(r, db)
	dailyRoute.DailyAttendanceRoutes(r, db)
}

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	statRoute.StatusAdminRoutes(r, db)
	valRoute.ValidationAdminRoutes(r, db)
}
