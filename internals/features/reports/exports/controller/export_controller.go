package controller

import (
	"bytes"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"halaqat_backend/internals/constants"
	database "halaqat_backend/internals/databases"
	"halaqat_backend/internals/features/reports/exports/service"
	helper "halaqat_backend/internals/helpers"
)

type ExportController struct {
	Exporter *service.Exporter
	Now      func() time.Time
}

func NewExportController(st *database.Storage) *ExportController {
	return &ExportController{Exporter: service.NewExporter(st.X()), Now: time.Now}
}

// GET /export_data/:type
func (ctl *ExportController) Export(c *fiber.Ctx) error {
	kind := c.Params("type")
	if !service.Supported(kind) {
		return helper.RedirectWithFlash(c, "/reports", constants.FlashError, "نوع التقرير غير صحيح")
	}

	var buf bytes.Buffer
	if err := ctl.Exporter.Write(c.UserContext(), kind, &buf); err != nil {
		log.Printf("[exports#%s] reqid=%s err=%v", kind, helper.ReqID(c), err)
		return helper.RedirectWithFlash(c, "/reports", constants.FlashError, "خطأ في تصدير البيانات")
	}

	c.Attachment(service.Filename(kind, ctl.Now()))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
