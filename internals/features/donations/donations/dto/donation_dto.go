package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/donations/donations/model"
	helper "halaqat_backend/internals/helpers"
)

type DonationForm struct {
	DonorName    string `form:"donor_name" validate:"max=255"`
	DonorPhone   string `form:"donor_phone" validate:"max=50"`
	DonorEmail   string `form:"donor_email" validate:"omitempty,email"`
	Amount       string `form:"amount"`
	DonationDate string `form:"donation_date"`
	Purpose      string `form:"purpose" validate:"max=255"`
	HalaqaID     string `form:"halaqa_id"`
	Notes        string `form:"notes" validate:"max=2000"`
	Status       string `form:"status" validate:"max=50"`
}

// ToModel coerces the form: blank amount is 0, blank purpose is a general
// donation, blank date is today.
func (f DonationForm) ToModel(now time.Time) (*model.Donation, error) {
	amount, err := helper.DecimalOr("amount", f.Amount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	halaqaID, err := helper.OptionalID("halaqa_id", f.HalaqaID)
	if err != nil {
		return nil, err
	}
	today := helper.Today(now)
	date, err := helper.DateOr("donation_date", f.DonationDate, &today)
	if err != nil {
		return nil, err
	}

	return &model.Donation{
		DonorName:    helper.NilIfEmpty(f.DonorName),
		DonorPhone:   helper.NilIfEmpty(f.DonorPhone),
		DonorEmail:   helper.NilIfEmpty(f.DonorEmail),
		Amount:       amount,
		DonationDate: date,
		Purpose:      helper.OrDefault(f.Purpose, constants.DefaultDonationPurpose),
		HalaqaID:     halaqaID,
		Notes:        helper.NilIfEmpty(f.Notes),
		Status:       helper.OrDefault(f.Status, constants.StatusCompleted),
	}, nil
}

// FromModel prefills the edit form.
func FromModel(d *model.Donation) DonationForm {
	f := DonationForm{
		DonorName:    deref(d.DonorName),
		DonorPhone:   deref(d.DonorPhone),
		DonorEmail:   deref(d.DonorEmail),
		Amount:       d.Amount.String(),
		DonationDate: helper.FormatDate(d.DonationDate),
		Purpose:      d.Purpose,
		Notes:        deref(d.Notes),
		Status:       d.Status,
	}
	if d.HalaqaID != nil {
		f.HalaqaID = strconv.FormatInt(*d.HalaqaID, 10)
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
