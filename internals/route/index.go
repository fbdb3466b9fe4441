// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	routeDetails "sekolahku_backend/internals/route/details"

	"sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", auth.AuthMiddleware())

	// ATTENDANCE OPS → JWT + teacher ke atas (guru/auxiliary mencatat absensi)
	log.Println("[INFO] Setting up ATTENDANCE group (Auth + teacher ke atas)...")
	attendanceOps := app.Group("/api/a",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorTeacher("absensi"), constants.TeacherAndAbove...),
	)

	// ADMIN → sub-prefix sendiri. Handler group di Fiber terdaftar sebagai
	// Use se-prefix, jadi dua group dengan prefix sama akan saling
	// menumpuk middleware — gate admin tidak boleh numpang di /api/a.
	// Admin/owner lolos gate teacher di atas, lalu dicek lagi di sini.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := attendanceOps.Group("/admin",
		auth.OnlyRoles(constants.RoleErrorAdmin("mengelola data akademik"), constants.AdminAndAbove...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsPublicRoutes(public, db)
	routeDetails.AcademicsUserRoutes(private, db)
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(attendanceOps, db)
	routeDetails.AttendanceAdminRoutes(admin, db)
}
