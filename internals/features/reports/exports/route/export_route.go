package route

import (
	"github.com/gofiber/fiber/v2"

	database "halaqat_backend/internals/databases"
	"halaqat_backend/internals/features/reports/exports/controller"
)

func ExportRoutes(r fiber.Router, st *database.Storage) {
	ctl := controller.NewExportController(st)

	r.Get("/export_data/:type", ctl.Export)
}
