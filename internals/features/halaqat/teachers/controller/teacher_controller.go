package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	halaqaModel "halaqat_backend/internals/features/halaqat/halaqat/model"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	"halaqat_backend/internals/features/halaqat/teachers/dto"
	"halaqat_backend/internals/features/halaqat/teachers/model"
	repo "halaqat_backend/internals/features/halaqat/teachers/repository"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *helper.Validator
	Now       func() time.Time
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validator: helper.NewValidator(), Now: time.Now}
}

// GET /teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := repo.List(ctx, ctl.DB)
	if err != nil {
		log.Printf("[teachers#list] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل قائمة المعلمين")
		rows = []model.TeacherWithLoad{}
	}
	stats, err := repo.Stats(ctx, ctl.DB)
	if err != nil {
		log.Printf("[teachers#list] reqid=%s stats err=%v", helper.ReqID(c), err)
		stats = model.TeacherStats{}
	}

	return helper.Render(c, "teachers/list", "المعلمون", fiber.Map{
		"Teachers": rows,
		"Stats":    stats,
	})
}

// GET /teacher/:id
func (ctl *TeacherController) Detail(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
	}
	ctx := c.UserContext()

	t, err := repo.Get(ctx, ctl.DB, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
		}
		log.Printf("[teachers#detail] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "خطأ في عرض تفاصيل المعلم")
	}

	halaqat, err := halaqaRepo.ListByTeacher(ctx, ctl.DB, id)
	if err != nil {
		log.Printf("[teachers#detail] reqid=%s id=%d halaqat err=%v", helper.ReqID(c), id, err)
		halaqat = []halaqaModel.HalaqaWithCount{}
	}
	var total int64
	for _, h := range halaqat {
		total += h.StudentCount
	}

	return helper.Render(c, "teachers/detail", t.Name, fiber.Map{
		"Teacher":       t,
		"Halaqat":       halaqat,
		"TotalStudents": total,
	})
}

// GET /teachers/add
func (ctl *TeacherController) AddForm(c *fiber.Ctx) error {
	return ctl.renderForm(c, "/teachers/add", "إضافة معلم", dto.TeacherForm{
		ExperienceYears: "0",
		Status:          constants.StatusActive,
		HireDate:        ctl.Now().Format(helper.DateLayout),
	}, "")
}

// POST /teachers/add
func (ctl *TeacherController) Add(c *fiber.Ctx) error {
	var form dto.TeacherForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, "/teachers/add", "إضافة معلم", form, "بيانات غير صالحة")
	}
	t, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, "/teachers/add", "إضافة معلم", form, err.Error())
	}
	if _, err := repo.Create(c.UserContext(), ctl.DB, t); err != nil {
		log.Printf("[teachers#add] reqid=%s err=%v", helper.ReqID(c), err)
		return ctl.renderForm(c, "/teachers/add", "إضافة معلم", form, "خطأ في إضافة المعلم")
	}
	return helper.RedirectWithFlash(c, "/teachers", constants.FlashSuccess, "تم إضافة المعلم بنجاح!")
}

// GET /teacher/:id/edit
func (ctl *TeacherController) EditForm(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
	}
	t, err := repo.Get(c.UserContext(), ctl.DB, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			log.Printf("[teachers#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		}
		return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
	}
	return ctl.renderForm(c, c.Path(), "تعديل بيانات المعلم", dto.FromModel(t), "")
}

// POST /teacher/:id/edit
func (ctl *TeacherController) Edit(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
	}
	var form dto.TeacherForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل بيانات المعلم", form, "بيانات غير صالحة")
	}
	t, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل بيانات المعلم", form, err.Error())
	}
	if err := repo.Update(c.UserContext(), ctl.DB, id, t); err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/teachers", constants.FlashError, "المعلم غير موجود")
		}
		log.Printf("[teachers#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return ctl.renderForm(c, c.Path(), "تعديل بيانات المعلم", form, "خطأ في تحديث المعلم")
	}
	return helper.RedirectWithFlash(c, "/teachers", constants.FlashSuccess, "تم تحديث بيانات المعلم بنجاح!")
}

func (ctl *TeacherController) validate(form dto.TeacherForm) (*model.Teacher, error) {
	if err := ctl.Validator.Struct(form); err != nil {
		return nil, err
	}
	return form.ToModel(ctl.Now())
}

func (ctl *TeacherController) renderForm(c *fiber.Ctx, action, title string, form dto.TeacherForm, errMsg string) error {
	return helper.Render(c, "teachers/form", title, fiber.Map{
		"Action":   action,
		"Form":     form,
		"Statuses": []string{constants.StatusActive, constants.StatusInactive},
		"Error":    errMsg,
	})
}
