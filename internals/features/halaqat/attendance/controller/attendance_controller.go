package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/attendance/dto"
	"halaqat_backend/internals/features/halaqat/attendance/service"
	studentModel "halaqat_backend/internals/features/halaqat/students/model"
	studentRepo "halaqat_backend/internals/features/halaqat/students/repository"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type AttendanceController struct {
	DB     *gorm.DB
	Ledger *service.Ledger
	Now    func() time.Time
}

func NewAttendanceController(db *gorm.DB, ledger *service.Ledger) *AttendanceController {
	return &AttendanceController{DB: db, Ledger: ledger, Now: time.Now}
}

// parseDay reads YYYY-MM-DD; blank means today.
func (ctl *AttendanceController) parseDay(raw string) (datatypes.Date, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d := helper.Today(ctl.Now())
		return d, time.Time(d).Format(helper.DateLayout), nil
	}
	t, err := helper.ParseDate(raw)
	if err != nil {
		return datatypes.Date{}, raw, err
	}
	return datatypes.Date(t), raw, nil
}

// GET /attendance?date=YYYY-MM-DD
func (ctl *AttendanceController) Page(c *fiber.Ctx) error {
	ctx := c.UserContext()

	d, label, err := ctl.parseDay(c.Query("date"))
	if err != nil {
		helper.SetFlash(c, constants.FlashError, "تاريخ غير صالح، تم عرض حضور اليوم")
		d, label, _ = ctl.parseDay("")
	}

	students, err := studentRepo.ListForAttendance(ctx, ctl.DB)
	if err != nil {
		log.Printf("[attendance#page] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل بيانات الحضور")
		students = []studentModel.StudentWithHalaqa{}
	}
	marks, err := ctl.Ledger.Get(ctx, d)
	if err != nil {
		log.Printf("[attendance#page] reqid=%s marks err=%v", helper.ReqID(c), err)
		marks = map[int64]service.Mark{}
	}
	summary, err := ctl.Ledger.Summary(ctx, d)
	if err != nil {
		log.Printf("[attendance#page] reqid=%s summary err=%v", helper.ReqID(c), err)
		summary = service.DaySummary{}
	}

	return helper.Render(c, "attendance/page", "الحضور والغياب", fiber.Map{
		"Date":     label,
		"Students": students,
		"Marks":    marks,
		"Summary":  summary,
		"Statuses": []string{constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceLate},
	})
}

// POST /mark_attendance
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, "بيانات غير صالحة", nil)
	}
	d, _, err := ctl.parseDay(req.Date)
	if err != nil {
		return helper.JsonFail(c, "تاريخ غير صالح", map[string][]string{"date": {"date must be YYYY-MM-DD"}})
	}

	n, err := ctl.Ledger.Mark(c.UserContext(), d, req.Entries())
	if err != nil {
		if ve, ok := apperror.AsValidation(err); ok {
			return helper.JsonFail(c, ve.Message, nil)
		}
		log.Printf("[attendance#mark] reqid=%s date=%s err=%v", helper.ReqID(c), req.Date, err)
		return helper.JsonFail(c, "خطأ في تسجيل الحضور", nil)
	}

	log.Printf("[attendance#mark] reqid=%s date=%s count=%d", helper.ReqID(c), time.Time(d).Format(helper.DateLayout), n)
	return helper.JsonOK(c, fmt.Sprintf("تم تسجيل حضور %d طالب بنجاح", n), fiber.Map{"count": n})
}

// GET /get_attendance?date=YYYY-MM-DD
func (ctl *AttendanceController) Get(c *fiber.Ctx) error {
	d, _, err := ctl.parseDay(c.Query("date"))
	if err != nil {
		return helper.JsonFail(c, "تاريخ غير صالح", nil)
	}
	marks, err := ctl.Ledger.Get(c.UserContext(), d)
	if err != nil {
		log.Printf("[attendance#get] reqid=%s err=%v", helper.ReqID(c), err)
		return helper.JsonFail(c, "خطأ في تحميل بيانات الحضور", nil)
	}
	return helper.JsonOK(c, "", fiber.Map{"attendance": marks})
}
