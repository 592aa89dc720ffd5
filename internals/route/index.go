package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"halaqat_backend/internals/configs"
	database "halaqat_backend/internals/databases"
	helper "halaqat_backend/internals/helpers"
	middlewares "halaqat_backend/internals/middlewares"
	authMiddleware "halaqat_backend/internals/middlewares/auth"

	attendanceRoute "halaqat_backend/internals/features/halaqat/attendance/route"
	attendanceService "halaqat_backend/internals/features/halaqat/attendance/service"
	halaqaRoute "halaqat_backend/internals/features/halaqat/halaqat/route"
	studentRoute "halaqat_backend/internals/features/halaqat/students/route"
	teacherRoute "halaqat_backend/internals/features/halaqat/teachers/route"

	donationRoute "halaqat_backend/internals/features/donations/donations/route"
	fundraisingRoute "halaqat_backend/internals/features/donations/fundraising/route"

	dashboardRoute "halaqat_backend/internals/features/reports/dashboard/route"
	exportRoute "halaqat_backend/internals/features/reports/exports/route"
	reportRoute "halaqat_backend/internals/features/reports/reports/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, st *database.Storage, cfg configs.AppConfig) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, st, cfg)

	// ===================== ADMIN GROUP =====================
	handlers := []fiber.Handler{helper.NewFlasher(cfg.SecretKey).Install()}
	if cfg.AdminAuthEnabled() {
		log.Println("[INFO] Admin basic-auth aktif")
		handlers = append(handlers, authMiddleware.AdminGuard(cfg.AdminUsername, cfg.AdminPasswordHash))
	} else {
		log.Println("[WARN] ADMIN_USERNAME/ADMIN_PASSWORD_HASH kosong, halaman admin terbuka")
	}
	handlers = append(handlers, middlewares.WriteRateLimiter())
	admin := app.Group("/", handlers...)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Halaqat routes...")
	dashboardRoute.DashboardRoutes(admin, st.DB)
	studentRoute.StudentRoutes(admin, st.DB)
	halaqaRoute.HalaqaRoutes(admin, st.DB)
	teacherRoute.TeacherRoutes(admin, st.DB)
	attendanceRoute.AttendanceRoutes(admin, st.DB, attendanceService.NewLedger(st.DB))

	log.Println("[INFO] Mounting Donation routes...")
	donationRoute.DonationRoutes(admin, st.DB)
	fundraisingRoute.FundraisingRoutes(admin, st.DB)

	log.Println("[INFO] Mounting Report routes...")
	reportRoute.ReportRoutes(admin, st.DB)
	exportRoute.ExportRoutes(admin, st)
}
