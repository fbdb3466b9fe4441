// file: internals/features/school/attendance/validation/route/validation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	valCtrl "sekolahku_backend/internals/features/school/attendance/validation/controller"
)

func ValidationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := valCtrl.NewValidationController(db)

	att := r.Group("/attendance")
	att.Post("/validate-registration", ctl.ValidateRegistration)
	att.Get("/config", ctl.GetActiveConfig)
}

func ValidationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := valCtrl.NewValidationController(db)

	cfg := r.Group("/attendance-configs")
	cfg.Post("/", ctl.CreateConfig)
	cfg.Get("/", ctl.ListConfigs)
}
