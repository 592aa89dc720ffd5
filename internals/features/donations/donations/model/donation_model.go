package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Donation is recorded by staff; HalaqaID optionally earmarks it for a circle.
type Donation struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DonorName    *string         `gorm:"column:donor_name" json:"donor_name,omitempty"`
	DonorPhone   *string         `gorm:"column:donor_phone" json:"donor_phone,omitempty"`
	DonorEmail   *string         `gorm:"column:donor_email" json:"donor_email,omitempty"`
	Amount       decimal.Decimal `gorm:"column:amount;not null;default:0" json:"amount"`
	DonationDate *datatypes.Date `gorm:"column:donation_date" json:"donation_date,omitempty"`
	Purpose      string          `gorm:"column:purpose" json:"purpose"`
	HalaqaID     *int64          `gorm:"column:halaqa_id" json:"halaqa_id,omitempty"`
	Notes        *string         `gorm:"column:notes" json:"notes,omitempty"`
	Status       string          `gorm:"column:status" json:"status"`
	CreatedDate  time.Time       `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Donation) TableName() string {
	return "donations"
}

// Totals backs the summary cards of the donations page. Allocated is an
// estimate: 70% of everything received.
type Totals struct {
	Total     decimal.Decimal `json:"total"`
	Allocated decimal.Decimal `json:"allocated"`
	Remaining decimal.Decimal `json:"remaining"`
	Count     int64           `json:"count"`
}

var AllocatedShare = decimal.RequireFromString("0.7")

func NewTotals(total decimal.Decimal, count int64) Totals {
	allocated := total.Mul(AllocatedShare)
	return Totals{
		Total:     total,
		Allocated: allocated,
		Remaining: total.Sub(allocated),
		Count:     count,
	}
}
