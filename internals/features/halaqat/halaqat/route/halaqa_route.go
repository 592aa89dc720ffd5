package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/halaqat/controller"
)

func HalaqaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewHalaqaController(db)

	r.Get("/halaqat", ctl.List)
	r.Get("/halaqat/add", ctl.AddForm)
	r.Post("/halaqat/add", ctl.Add)
	r.Get("/halaqa/:id", ctl.Detail)
	r.Get("/halaqa/:id/edit", ctl.EditForm)
	r.Post("/halaqa/:id/edit", ctl.Edit)
}
