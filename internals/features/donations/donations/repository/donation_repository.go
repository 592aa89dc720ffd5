package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/donations/donations/model"
	"halaqat_backend/internals/helpers/apperror"
)

// ListRecent returns the latest donations, newest id first.
func ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]model.Donation, error) {
	var rows []model.Donation
	err := db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error
	return rows, apperror.Storage("list donations", err)
}

// Sum is the total amount ever received; zero on an empty table.
func Sum(ctx context.Context, db *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.WithContext(ctx).Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, apperror.Storage("sum donations", err)
	}
	return total.Decimal, nil
}

func Totals(ctx context.Context, db *gorm.DB) (model.Totals, error) {
	total, err := Sum(ctx, db)
	if err != nil {
		return model.Totals{}, err
	}
	var n int64
	if err := db.WithContext(ctx).Model(&model.Donation{}).Count(&n).Error; err != nil {
		return model.Totals{}, apperror.Storage("count donations", err)
	}
	return model.NewTotals(total, n), nil
}

func Create(ctx context.Context, db *gorm.DB, d *model.Donation) (int64, error) {
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return 0, apperror.Storage("create donation", err)
	}
	return d.ID, nil
}

func Get(ctx context.Context, db *gorm.DB, id int64) (*model.Donation, error) {
	var d model.Donation
	if err := db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, apperror.Storage("get donation", err)
	}
	return &d, nil
}

var updatable = []string{
	"donor_name", "donor_phone", "donor_email", "amount", "donation_date",
	"purpose", "halaqa_id", "notes", "status",
}

func Update(ctx context.Context, db *gorm.DB, id int64, d *model.Donation) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Donation{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Donation{}).Where("id = ?", id).Select(updatable).Updates(d).Error
	})
	return apperror.Storage("update donation", err)
}
