package controller

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/donations/fundraising/dto"
	"halaqat_backend/internals/features/donations/fundraising/model"
	repo "halaqat_backend/internals/features/donations/fundraising/repository"
	"halaqat_backend/internals/features/donations/fundraising/service"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

const (
	addTitle  = "حملة جمع تبرعات جديدة"
	editTitle = "تعديل الحملة"
)

type CampaignController struct {
	DB        *gorm.DB
	Validator *helper.Validator
	Assistant *service.Assistant
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{
		DB:        db,
		Validator: helper.NewValidator(),
		Assistant: service.NewAssistant(rand.NewSource(time.Now().UnixNano())),
	}
}

// GET /fundraising
func (ctl *CampaignController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := repo.List(ctx, ctl.DB)
	if err != nil {
		log.Printf("[fundraising#list] reqid=%s err=%v", helper.ReqID(c), err)
		helper.SetFlash(c, constants.FlashError, "خطأ في تحميل حملات جمع التبرعات")
		rows = []model.Campaign{}
	}
	stats, err := repo.Stats(ctx, ctl.DB)
	if err != nil {
		log.Printf("[fundraising#list] reqid=%s stats err=%v", helper.ReqID(c), err)
		stats = model.CampaignStats{}
	}

	return helper.Render(c, "fundraising/list", "حملات جمع التبرعات", fiber.Map{
		"Campaigns": rows,
		"Stats":     stats,
	})
}

// GET /fundraising/add
func (ctl *CampaignController) AddForm(c *fiber.Ctx) error {
	return ctl.renderForm(c, "/fundraising/add", addTitle, dto.CampaignForm{}, "")
}

// POST /fundraising/add
func (ctl *CampaignController) Add(c *fiber.Ctx) error {
	form, campaign, errMsg := ctl.parse(c)
	if errMsg != "" {
		return ctl.renderForm(c, "/fundraising/add", addTitle, form, errMsg)
	}
	ctl.Assistant.Enrich(campaign)

	if _, err := repo.Create(c.UserContext(), ctl.DB, campaign); err != nil {
		log.Printf("[fundraising#add] reqid=%s err=%v", helper.ReqID(c), err)
		return ctl.renderForm(c, "/fundraising/add", addTitle, form, "خطأ في إنشاء الحملة")
	}
	log.Printf("[fundraising#add] reqid=%s id=%d", helper.ReqID(c), campaign.ID)
	return helper.RedirectWithFlash(c, "/fundraising", constants.FlashSuccess, "✅ تم إنشاء حملة جمع التبرعات بنجاح!")
}

// GET /fundraising/:id/edit
func (ctl *CampaignController) EditForm(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/fundraising", constants.FlashError, "الحملة غير موجودة")
	}
	campaign, err := repo.Get(c.UserContext(), ctl.DB, id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			log.Printf("[fundraising#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		}
		return helper.RedirectWithFlash(c, "/fundraising", constants.FlashError, "الحملة غير موجودة")
	}
	return ctl.renderForm(c, c.Path(), editTitle, dto.FromModel(campaign), "")
}

// POST /fundraising/:id/edit keeps the generated suggestions of the campaign.
func (ctl *CampaignController) Edit(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.RedirectWithFlash(c, "/fundraising", constants.FlashError, "الحملة غير موجودة")
	}
	form, campaign, errMsg := ctl.parse(c)
	if errMsg != "" {
		return ctl.renderForm(c, c.Path(), editTitle, form, errMsg)
	}
	if err := repo.Update(c.UserContext(), ctl.DB, id, campaign); err != nil {
		if apperror.IsNotFound(err) {
			return helper.RedirectWithFlash(c, "/fundraising", constants.FlashError, "الحملة غير موجودة")
		}
		log.Printf("[fundraising#edit] reqid=%s id=%d err=%v", helper.ReqID(c), id, err)
		return ctl.renderForm(c, c.Path(), editTitle, form, "خطأ في تحديث الحملة")
	}
	return helper.RedirectWithFlash(c, "/fundraising", constants.FlashSuccess, "تم تحديث الحملة بنجاح!")
}

func (ctl *CampaignController) parse(c *fiber.Ctx) (dto.CampaignForm, *model.Campaign, string) {
	var form dto.CampaignForm
	if err := c.BodyParser(&form); err != nil {
		return form, nil, "بيانات غير صالحة"
	}
	if err := ctl.Validator.Struct(form); err != nil {
		return form, nil, err.Error()
	}
	campaign, err := form.ToModel()
	if err != nil {
		return form, nil, err.Error()
	}
	return form, campaign, ""
}

func (ctl *CampaignController) renderForm(c *fiber.Ctx, action, title string, form dto.CampaignForm, errMsg string) error {
	return helper.Render(c, "fundraising/form", title, fiber.Map{
		"Action":    action,
		"Form":      form,
		"Platforms": service.Platforms(),
		"Error":     errMsg,
	})
}
