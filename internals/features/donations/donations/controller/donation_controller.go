package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/donations/donations/dto"
	"halaqat_backend/internals/features/donations/donations/model"
	repo "halaqat_backend/internals/features/donations/donations/repository"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

const recentLimit = 100

const (
	addTitle  = "إضافة تبرع"
	editTitle = "تعديل التبرع"
)

type DonationController struct {
	DB        *gorm.DB
	Validator *helper.Validator
	Now       func() time.Time
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validator: helper.NewValidator(), Now: time.Now}
}

// GET /donations
func (ctl *DonationController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := repo.ListRecent(ctx, ctl.DB, recentLimit)
	if err != nil {
		log.Printf("[donations#list] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل قائمة التبرعات")
		rows = []model.Donation{}
	}
	totals, err := repo.Totals(ctx, ctl.DB)
	if err != nil {
		log.Printf("[donations#list] reqid=%s totals err=%v", helper.ReqID(c), err)
		totals = model.Totals{}
	}

	return helper.Render(c, "donations/list", "التبرعات", fiber.Map{
		"Donations": rows,
		"Totals":    totals,
	})
}

// GET /donations/add
func (ctl *DonationController) AddForm(c *fiber.Ctx) error {
	return ctl.renderForm(c, "/donations/add", addTitle, dto.DonationForm{
		Purpose:      constants.DefaultDonationPurpose,
		DonationDate: ctl.Now().Format(helper.DateLayout),
	}, "")
}

// POST /donations/add
func (ctl *DonationController) Add(c *fiber.Ctx) error {
	form, d, errMsg := ctl.parse(c)
	if errMsg != "" {
		return ctl.renderForm(c, "/donations/add", addTitle, form, errMsg)
	}
	if _, err := repo.Create(c.UserContext(), ctl.DB, d); err != nil {
		log.Printf("[donations#add] reqid=%s err=%v", helper.ReqID(c), err)
		return ctl.renderForm(c, "/donations/add", addTitle, form, "خطأ في إضافة التبرع")
	}
	log.Printf("[donations#add] reqid=%s id=%d amount=%s", helper.ReqID(c), d.ID, d.Amount.StringFixed(2))
	return helper.RedirectWithFlash(c, "/donations", constants.FlashSuccess, "تم إضافة التبرع بنجاح!")
}

// GET /donation/:id/edit
func (ctl *DonationController) EditForm(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/donations", constants.FlashError, "التبرع غير موجود")
	}
	d, err := repo.Get(c.UserContext(), ctl.DB, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			log.Printf("[donations#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		}
		return helper.RedirectWithFlash(c, "/donations", constants.FlashError, "التبرع غير موجود")
	}
	return ctl.renderForm(c, c.Path(), editTitle, dto.FromModel(d), "")
}

// POST /donation/:id/edit
func (ctl *DonationController) Edit(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/donations", constants.FlashError, "التبرع غير موجود")
	}
	form, d, errMsg := ctl.parse(c)
	if errMsg != "" {
		return ctl.renderForm(c, c.Path(), editTitle, form, errMsg)
	}
	if err := repo.Update(c.UserContext(), ctl.DB, id, d); err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/donations", constants.FlashError, "التبرع غير موجود")
		}
		log.Printf("[donations#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return ctl.renderForm(c, c.Path(), editTitle, form, "خطأ في تحديث التبرع")
	}
	return helper.RedirectWithFlash(c, "/donations", constants.FlashSuccess, "تم تحديث التبرع بنجاح!")
}

func (ctl *DonationController) parse(c *fiber.Ctx) (dto.DonationForm, *model.Donation, string) {
	var form dto.DonationForm
	if err := c.BodyParser(&form); err != nil {
		return form, nil, "بيانات غير صالحة"
	}
	if err := ctl.Validator.Struct(form); err != nil {
		return form, nil, err.Error()
	}
	d, err := form.ToModel(ctl.Now())
	if err != nil {
		return form, nil, err.Error()
	}
	return form, d, ""
}

func (ctl *DonationController) renderForm(c *fiber.Ctx, action, title string, form dto.DonationForm, errMsg string) error {
	halaqat, err := halaqaRepo.Options(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[donations#form] reqid=%s halaqat err=%v", helper.ReqID(c), err)
	}
	return helper.Render(c, "donations/form", title, fiber.Map{
		"Action":  action,
		"Form":    form,
		"Halaqat": halaqat,
		"Error":   errMsg,
	})
}
