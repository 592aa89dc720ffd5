package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/teachers/controller"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db)

	r.Get("/teachers", ctl.List)
	r.Get("/teachers/add", ctl.AddForm)
	r.Post("/teachers/add", ctl.Add)
	r.Get("/teacher/:id", ctl.Detail)
	r.Get("/teacher/:id/edit", ctl.EditForm)
	r.Post("/teacher/:id/edit", ctl.Edit)
}
