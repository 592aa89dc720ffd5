package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/attendance/controller"
	"halaqat_backend/internals/features/halaqat/attendance/service"
)

// AttendanceRoutes mounts the roll-call page and its JSON endpoints. The
// ledger is shared so per-date locking covers every handler.
func AttendanceRoutes(r fiber.Router, db *gorm.DB, ledger *service.Ledger) {
	ctl := controller.NewAttendanceController(db, ledger)

	r.Get("/attendance", ctl.Page)
	r.Post("/mark_attendance", ctl.Mark)
	r.Get("/get_attendance", ctl.Get)
}
