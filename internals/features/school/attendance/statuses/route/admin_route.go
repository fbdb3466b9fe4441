// file: internals/features/school/attendance/statuses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statCtrl "sekolahku_backend/internals/features/school/attendance/statuses/controller"
)

func StatusAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statCtrl.NewStatusController(db)

	st := r.Group("/attendance-statuses")
	st.Post("/", ctl.Create)
	st.Put("/:id", ctl.Update)
	st.Delete("/:id", ctl.Delete)

	gr := r.Group("/attendance-status-grants")
	gr.Post("/", ctl.GrantToRole)
	gr.Delete("/", ctl.RevokeFromRole)
}

func StatusUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statCtrl.NewStatusController(db)

	st := r.Group("/attendance-statuses")
	st.Get("/", ctl.ListSelector)
	st.Get("/by-role", ctl.ListByRole)
}
