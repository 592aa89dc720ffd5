package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	"halaqat_backend/internals/features/halaqat/students/dto"
	"halaqat_backend/internals/features/halaqat/students/model"
	repo "halaqat_backend/internals/features/halaqat/students/repository"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *helper.Validator
	Now       func() time.Time
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: helper.NewValidator(), Now: time.Now}
}

// GET /students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	rows, err := repo.List(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[students#list] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل قائمة الطلاب")
		rows = []model.StudentWithHalaqa{}
	}
	return helper.Render(c, "students/list", "الطلاب", fiber.Map{"Students": rows})
}

// GET /students/add
func (ctl *StudentController) AddForm(c *fiber.Ctx) error {
	return ctl.renderForm(c, "/students/add", "إضافة طالب", dto.StudentForm{
		MemorizationLevel: constants.DefaultMemorizationLevel,
	}, "")
}

// POST /students/add
func (ctl *StudentController) Add(c *fiber.Ctx) error {
	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, "/students/add", "إضافة طالب", form, "بيانات غير صالحة")
	}
	s, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, "/students/add", "إضافة طالب", form, err.Error())
	}
	if _, err := repo.Create(c.UserContext(), ctl.DB, s); err != nil {
		log.Printf("[students#add] reqid=%s err=%v", helper.ReqID(c), err)
		return ctl.renderForm(c, "/students/add", "إضافة طالب", form, "خطأ في إضافة الطالب")
	}
	return helper.RedirectWithFlash(c, "/students", constants.FlashSuccess, "تم إضافة الطالب بنجاح!")
}

// GET /student/:id/edit
func (ctl *StudentController) EditForm(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/students", constants.FlashError, "الطالب غير موجود")
	}
	s, err := repo.Get(c.UserContext(), ctl.DB, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			log.Printf("[students#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		}
		return helper.RedirectWithFlash(c, "/students", constants.FlashError, "الطالب غير موجود")
	}
	return ctl.renderForm(c, c.Path(), "تعديل بيانات الطالب", dto.FromModel(s), "")
}

// POST /student/:id/edit
func (ctl *StudentController) Edit(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/students", constants.FlashError, "الطالب غير موجود")
	}
	var form dto.StudentForm
	if err := c.BodyParser(&form); err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل بيانات الطالب", form, "بيانات غير صالحة")
	}
	s, err := ctl.validate(form)
	if err != nil {
		return ctl.renderForm(c, c.Path(), "تعديل بيانات الطالب", form, err.Error())
	}
	if err := repo.Update(c.UserContext(), ctl.DB, id, s); err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/students", constants.FlashError, "الطالب غير موجود")
		}
		log.Printf("[students#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return ctl.renderForm(c, c.Path(), "تعديل بيانات الطالب", form, "خطأ في تحديث الطالب")
	}
	return helper.RedirectWithFlash(c, "/students", constants.FlashSuccess, "تم تحديث بيانات الطالب بنجاح!")
}

func (ctl *StudentController) validate(form dto.StudentForm) (*model.Student, error) {
	if err := ctl.Validator.Struct(form); err != nil {
		return nil, err
	}
	return form.ToModel(ctl.Now())
}

func (ctl *StudentController) renderForm(c *fiber.Ctx, action, title string, form dto.StudentForm, errMsg string) error {
	halaqat, err := halaqaRepo.Options(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[students#form] reqid=%s halaqat err=%v", helper.ReqID(c), err)
	}
	return helper.Render(c, "students/form", title, fiber.Map{
		"Action":  action,
		"Form":    form,
		"Halaqat": halaqat,
		"Error":   errMsg,
	})
}
