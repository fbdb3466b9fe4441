// file: internals/features/school/attendance/daily/route/daily_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "sekolahku_backend/internals/features/school/attendance/daily/controller"
	"sekolahku_backend/internals/middlewares"
)

func DailyAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtrl.NewDailyAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/daily", middlewares.AttendanceWriteRateLimiter(), ctl.RegisterDaily)
	att.Get("/consolidated", ctl.GetConsolidated)
	att.Patch("/records/:id/status", middlewares.AttendanceWriteRateLimiter(), ctl.UpdateRecordStatus)
}
