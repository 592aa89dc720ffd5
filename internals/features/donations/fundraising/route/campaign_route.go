package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/donations/fundraising/controller"
)

func FundraisingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCampaignController(db)

	r.Get("/fundraising", ctl.List)
	r.Get("/fundraising/add", ctl.AddForm)
	r.Post("/fundraising/add", ctl.Add)
	r.Get("/fundraising/:id/edit", ctl.EditForm)
	r.Post("/fundraising/:id/edit", ctl.Edit)
}
