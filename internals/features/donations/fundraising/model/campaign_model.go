package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Campaign is a social-media fundraising drive. Hashtags, suggestions and
// posting times are generated once, on creation.
type Campaign struct {
	ID                  int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CampaignName        string          `gorm:"column:campaign_name;not null" json:"campaign_name"`
	Platform            *string         `gorm:"column:platform" json:"platform,omitempty"`
	TargetAmount        decimal.Decimal `gorm:"column:target_amount" json:"target_amount"`
	CurrentAmount       decimal.Decimal `gorm:"column:current_amount" json:"current_amount"`
	TargetAudience      *string         `gorm:"column:target_audience" json:"target_audience,omitempty"`
	CampaignDescription *string         `gorm:"column:campaign_description" json:"campaign_description,omitempty"`
	CampaignHashtags    *string         `gorm:"column:campaign_hashtags" json:"campaign_hashtags,omitempty"`
	StartDate           *datatypes.Date `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate             *datatypes.Date `gorm:"column:end_date" json:"end_date,omitempty"`
	Status              string          `gorm:"column:status" json:"status"`
	AISuggestions       *string         `gorm:"column:ai_suggestions" json:"ai_suggestions,omitempty"`
	BestPostingTimes    *string         `gorm:"column:best_posting_times" json:"best_posting_times,omitempty"`
	CreatedBy           string          `gorm:"column:created_by" json:"created_by"`
	CreatedDate         time.Time       `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Campaign) TableName() string {
	return "fundraising_campaigns"
}

// Progress is the share of the target raised so far, in percent, capped at 100.
func (c Campaign) Progress() int {
	if !c.TargetAmount.IsPositive() {
		return 0
	}
	p := c.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(c.TargetAmount).IntPart()
	if p > 100 {
		return 100
	}
	return int(p)
}

type CampaignStats struct {
	Active     int64           `json:"active"`
	OpenTarget decimal.Decimal `json:"open_target"`
	Raised     decimal.Decimal `json:"raised"`
}
