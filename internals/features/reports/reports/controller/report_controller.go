package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	halaqaModel "halaqat_backend/internals/features/halaqat/halaqat/model"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	exportService "halaqat_backend/internals/features/reports/exports/service"
	"halaqat_backend/internals/features/reports/reports/dto"
	"halaqat_backend/internals/features/reports/reports/model"
	"halaqat_backend/internals/features/reports/reports/service"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type ReportController struct {
	DB         *gorm.DB
	Aggregator *service.Aggregator
	Now        func() time.Time
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:         db,
		Aggregator: service.NewAggregator(service.NewGormSource(db)),
		Now:        time.Now,
	}
}

func (ctl *ReportController) overview(c *fiber.Ctx, op string) (model.Overview, bool) {
	o, err := service.LoadOverview(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[reports#%s] reqid=%s err=%v", op, helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل صفحة التقارير")
		return model.Overview{}, false
	}
	return o, true
}

// GET /reports
func (ctl *ReportController) Page(c *fiber.Ctx) error {
	o, ok := ctl.overview(c, "page")
	weekly := model.WeeklyAttendanceSample
	if !ok {
		weekly = make([]int, len(model.WeeklyAttendanceSample))
	}
	return helper.Render(c, "reports/index", "التقارير", fiber.Map{
		"Stats":            o,
		"TodayAttendance":  o.TodayAttendance(),
		"WeeklyAttendance": weekly,
		"ExportKinds":      exportService.Kinds(),
	})
}

// GET /ai_reports
func (ctl *ReportController) AIPage(c *fiber.Ctx) error {
	o, ok := ctl.overview(c, "ai")
	halaqat, err := halaqaRepo.Options(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[reports#ai] reqid=%s halaqat err=%v", helper.ReqID(c), err)
		halaqat = []halaqaModel.HalaqaOption{}
	}
	rate := model.EstimatedAttendanceRate
	if !ok {
		rate = 0
	}
	return helper.Render(c, "reports/ai", "التقارير الذكية", fiber.Map{
		"Stats":          o,
		"Halaqat":        halaqat,
		"AttendanceRate": rate,
		"TotalMemorized": o.TotalMemorized(),
		"Kinds":          service.AvailableKinds,
	})
}

// POST /generate_ai_report
func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	var body dto.GenerateReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonFail(c, "بيانات غير صالحة", nil)
		}
	}
	req, err := body.ToRequest()
	if ve, ok := apperror.AsValidation(err); ok {
		return helper.JsonFail(c, ve.Message, ve.FieldMap())
	}

	report, err := ctl.Aggregator.Generate(c.UserContext(), req)
	if err != nil {
		log.Printf("[reports#generate] reqid=%s kind=%s err=%v", helper.ReqID(c), req.Kind, err)
		return helper.JsonFail(c, "خطأ في توليد التقرير", nil)
	}
	log.Printf("[reports#generate] reqid=%s kind=%s status=%s", helper.ReqID(c), req.Kind, report.Status)
	return helper.JsonOK(c, "", fiber.Map{"report": report})
}

// POST /export_report_pdf
func (ctl *ReportController) Export(c *fiber.Ctx) error {
	var body dto.ExportReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonFail(c, "بيانات غير صالحة", nil)
		}
	}
	report, ok, err := body.Decode()
	if err != nil {
		return helper.JsonFail(c, "بيانات غير صالحة", nil)
	}
	if !ok {
		return helper.JsonFail(c, "لا توجد بيانات تقرير للتصدير", nil)
	}

	now := ctl.Now()
	c.Attachment(service.ExportFilename(now))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(service.RenderText(report, now))
}
