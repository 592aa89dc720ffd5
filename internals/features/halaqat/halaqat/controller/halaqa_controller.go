package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/halaqat/dto"
	"halaqat_backend/internals/features/halaqat/halaqat/model"
	repo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	studentRepo "halaqat_backend/internals/features/halaqat/students/repository"
	teacherRepo "halaqat_backend/internals/features/halaqat/teachers/repository"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type HalaqaController struct {
	DB        *gorm.DB
	Validator *helper.Validator
}

func NewHalaqaController(db *gorm.DB) *HalaqaController {
	return &HalaqaController{DB: db, Validator: helper.NewValidator()}
}

// GET /halaqat
func (ctl *HalaqaController) List(c *fiber.Ctx) error {
	rows, err := repo.List(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[halaqat#list] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل قائمة الحلقات")
		rows = []model.HalaqaWithCount{}
	}
	return helper.Render(c, "halaqat/list", "الحلقات", fiber.Map{"Halaqat": rows})
}

// GET /halaqa/:id
func (ctl *HalaqaController) Detail(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
	}
	ctx := c.UserContext()

	h, err := repo.Get(ctx, ctl.DB, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
		}
		log.Printf("[halaqat#detail] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "خطأ في عرض تفاصيل الحلقة")
	}

	members, err := studentRepo.ListByHalaqa(ctx, ctl.DB, id)
	if err != nil {
		log.Printf("[halaqat#detail] reqid=%s id=%d members err=%v", helper.ReqID(c), id, err)
	}

	return helper.Render(c, "halaqat/detail", h.Name, fiber.Map{
		"Halaqa":   h,
		"Students": members,
		"Stats":    AttendanceStats(len(members)),
	})
}

// AttendanceStats is the placeholder summary shown on the circle page.
func AttendanceStats(members int) fiber.Map {
	return fiber.Map{
		"total_sessions":     20,
		"average_attendance": members * 85 / 100,
	}
}

// GET /halaqat/add
func (ctl *HalaqaController) AddForm(c *fiber.Ctx) error {
	return ctl.renderForm(c, "/halaqat/add", "إضافة حلقة", dto.HalaqaForm{MaxCapacity: "30"}, "")
}

// POST /halaqat/add
func (ctl *HalaqaController) Add(c *fiber.Ctx) error {
	var form dto.HalaqaForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, "/halaqat/add", "إضافة حلقة", form, "بيانات غير صالحة")
	}
	h, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, "/halaqat/add", "إضافة حلقة", form, err.Error())
	}
	if _, err := repo.Create(c.UserContext(), ctl.DB, h); err != nil {
		log.Printf("[halaqat#add] reqid=%s err=%v", helper.ReqID(c), err)
		return ctl.renderForm(c, "/halaqat/add", "إضافة حلقة", form, "خطأ في إضافة الحلقة")
	}
	return helper.RedirectWithFlash(c, "/halaqat", constants.FlashSuccess, "تم إضافة الحلقة بنجاح!")
}

// GET /halaqa/:id/edit
func (ctl *HalaqaController) EditForm(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
	}
	h, err := repo.Get(c.UserContext(), ctl.DB, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			log.Printf("[halaqat#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		}
		return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
	}
	return ctl.renderForm(c, c.Path(), "تعديل الحلقة", dto.FromModel(h), "")
}

// POST /halaqa/:id/edit
func (ctl *HalaqaController) Edit(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
	}
	var form dto.HalaqaForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل الحلقة", form, "بيانات غير صالحة")
	}
	h, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل الحلقة", form, err.Error())
	}
	if err := repo.Update(c.UserContext(), ctl.DB, id, h); err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/halaqat", constants.FlashError, "الحلقة غير موجودة")
		}
		log.Printf("[halaqat#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return ctl.renderForm(c, c.Path(), "تعديل الحلقة", form, "خطأ في تحديث الحلقة")
	}
	return helper.RedirectWithFlash(c, "/halaqat", constants.FlashSuccess, "تم تحديث بيانات الحلقة بنجاح!")
}

func (ctl *HalaqaController) validate(form dto.HalaqaForm) (*model.Halaqa, error) {
	if err := ctl.Validator.Struct(form); err != nil {
		return nil, err
	}
	return form.ToModel()
}

func (ctl *HalaqaController) renderForm(c *fiber.Ctx, action, title string, form dto.HalaqaForm, errMsg string) error {
	teachers, err := teacherRepo.Options(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[halaqat#form] reqid=%s teachers err=%v", helper.ReqID(c), err)
	}
	return helper.Render(c, "halaqat/form", title, fiber.Map{
		"Action":   action,
		"Form":     form,
		"Teachers": teachers,
		"Error":    errMsg,
	})
}
