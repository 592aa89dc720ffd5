package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/donations/fundraising/model"
	"halaqat_backend/internals/helpers/apperror"
)

// List returns campaigns newest first.
func List(ctx context.Context, db *gorm.DB) ([]model.Campaign, error) {
	var rows []model.Campaign
	err := db.WithContext(ctx).Order("created_date DESC").Order("id DESC").Find(&rows).Error
	return rows, apperror.Storage("list campaigns", err)
}

// Stats counts active campaigns and sums the targets still open and the
// amounts raised across all campaigns.
func Stats(ctx context.Context, db *gorm.DB) (model.CampaignStats, error) {
	var st model.CampaignStats
	q := db.WithContext(ctx).Model(&model.Campaign{})

	if err := q.Session(&gorm.Session{}).Where("status = ?", constants.StatusActive).Count(&st.Active).Error; err != nil {
		return model.CampaignStats{}, apperror.Storage("campaign stats", err)
	}

	var open, raised decimal.NullDecimal
	if err := q.Session(&gorm.Session{}).
		Select("COALESCE(SUM(target_amount), 0)").
		Where("status <> ?", constants.StatusCompleted).
		Row().Scan(&open); err != nil {
		return model.CampaignStats{}, apperror.Storage("campaign stats", err)
	}
	if err := q.Session(&gorm.Session{}).
		Select("COALESCE(SUM(current_amount), 0)").
		Row().Scan(&raised); err != nil {
		return model.CampaignStats{}, apperror.Storage("campaign stats", err)
	}
	st.OpenTarget, st.Raised = open.Decimal, raised.Decimal
	return st, nil
}

func Create(ctx context.Context, db *gorm.DB, c *model.Campaign) (int64, error) {
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, apperror.Storage("create campaign", err)
	}
	return c.ID, nil
}

func Get(ctx context.Context, db *gorm.DB, id int64) (*model.Campaign, error) {
	var c model.Campaign
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, apperror.Storage("get campaign", err)
	}
	return &c, nil
}

// The generated hashtags, suggestions and posting times are kept as created.
var updatable = []string{
	"campaign_name", "platform", "target_amount", "current_amount", "target_audience",
	"campaign_description", "start_date", "end_date", "status",
}

func Update(ctx context.Context, db *gorm.DB, id int64, c *model.Campaign) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Campaign{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Campaign{}).Where("id = ?", id).Select(updatable).Updates(c).Error
	})
	return apperror.Storage("update campaign", err)
}
