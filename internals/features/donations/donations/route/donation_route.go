package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/donations/donations/controller"
)

func DonationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDonationController(db)

	r.Get("/donations", ctl.List)
	r.Get("/donations/add", ctl.AddForm)
	r.Post("/donations/add", ctl.Add)
	r.Get("/donation/:id/edit", ctl.EditForm)
	r.Post("/donation/:id/edit", ctl.Edit)
}
