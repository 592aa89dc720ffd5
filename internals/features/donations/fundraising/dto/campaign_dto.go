package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/donations/fundraising/model"
	helper "halaqat_backend/internals/helpers"
	"halaqat_backend/internals/helpers/apperror"
)

type CampaignForm struct {
	CampaignName        string `form:"campaign_name" validate:"notblank,max=255"`
	Platform            string `form:"platform" validate:"max=100"`
	TargetAmount        string `form:"target_amount"`
	CurrentAmount       string `form:"current_amount"`
	TargetAudience      string `form:"target_audience" validate:"max=255"`
	CampaignDescription string `form:"campaign_description" validate:"max=5000"`
	StartDate           string `form:"start_date"`
	EndDate             string `form:"end_date"`
	Status              string `form:"status" validate:"max=50"`
}

// ToModel coerces the form. The generated text fields are left for the
// assistant to fill.
func (f CampaignForm) ToModel() (*model.Campaign, error) {
	target, err := helper.DecimalOr("target_amount", f.TargetAmount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	current, err := helper.DecimalOr("current_amount", f.CurrentAmount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	start, err := helper.DateOr("start_date", f.StartDate, nil)
	if err != nil {
		return nil, err
	}
	end, err := helper.DateOr("end_date", f.EndDate, nil)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && time.Time(*end).Before(time.Time(*start)) {
		return nil, apperror.NewValidationError("end_date must not be before start_date",
			apperror.FieldError{Field: "end_date", Error: "end_date must not be before start_date"})
	}
	return &model.Campaign{
		CampaignName:        helper.OrDefault(f.CampaignName, ""),
		Platform:            helper.NilIfEmpty(f.Platform),
		TargetAmount:        target,
		CurrentAmount:       current,
		TargetAudience:      helper.NilIfEmpty(f.TargetAudience),
		CampaignDescription: helper.NilIfEmpty(f.CampaignDescription),
		StartDate:           start,
		EndDate:             end,
		Status:              helper.OrDefault(f.Status, constants.StatusPlanned),
		CreatedBy:           constants.DefaultCampaignAuthor,
	}, nil
}

// FromModel prefills the edit form.
func FromModel(c *model.Campaign) CampaignForm {
	return CampaignForm{
		CampaignName:        c.CampaignName,
		Platform:            deref(c.Platform),
		TargetAmount:        c.TargetAmount.String(),
		CurrentAmount:       c.CurrentAmount.String(),
		TargetAudience:      deref(c.TargetAudience),
		CampaignDescription: deref(c.CampaignDescription),
		StartDate:           helper.FormatDate(c.StartDate),
		EndDate:             helper.FormatDate(c.EndDate),
		Status:              c.Status,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
