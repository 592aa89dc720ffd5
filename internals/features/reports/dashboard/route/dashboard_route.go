package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/reports/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	r.Get("/", ctl.Index)
}
