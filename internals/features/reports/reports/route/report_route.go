package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/reports/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r.Get("/reports", ctl.Page)
	r.Get("/ai_reports", ctl.AIPage)
	r.Post("/generate_ai_report", ctl.Generate)
	r.Post("/export_report_pdf", ctl.Export)
}
