package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	r.Get("/students", ctl.List)
	r.Get("/students/add", ctl.AddForm)
	r.Post("/students/add", ctl.Add)
	r.Get("/student/:id/edit", ctl.EditForm)
	r.Post("/student/:id/edit", ctl.Edit)
}
