package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	donationRepo "halaqat_backend/internals/features/donations/donations/repository"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	studentRepo "halaqat_backend/internals/features/halaqat/students/repository"
	"halaqat_backend/internals/features/reports/reports/model"
	"halaqat_backend/internals/helpers/apperror"
)

// Source is the read-only view of stored data the aggregator works from.
type Source interface {
	CountStudents(ctx context.Context, halaqaID *int64) (int64, error)
	CountHalaqat(ctx context.Context) (int64, error)
	// HalaqaName reports ok=false when the circle does not exist.
	HalaqaName(ctx context.Context, id int64) (name string, ok bool, err error)
	SumDonations(ctx context.Context) (decimal.Decimal, error)
	// CircleLoads ranks circles by member count, largest first.
	CircleLoads(ctx context.Context, halaqaID *int64) ([]model.CircleLoad, error)
}

type GormSource struct {
	DB *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

func (s *GormSource) CountStudents(ctx context.Context, halaqaID *int64) (int64, error) {
	return studentRepo.Count(ctx, s.DB, halaqaID)
}

func (s *GormSource) CountHalaqat(ctx context.Context) (int64, error) {
	return halaqaRepo.Count(ctx, s.DB)
}

func (s *GormSource) HalaqaName(ctx context.Context, id int64) (string, bool, error) {
	h, err := halaqaRepo.Get(ctx, s.DB, id)
	if apperror.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return h.Name, true, nil
}

func (s *GormSource) SumDonations(ctx context.Context) (decimal.Decimal, error) {
	return donationRepo.Sum(ctx, s.DB)
}

func (s *GormSource) CircleLoads(ctx context.Context, halaqaID *int64) ([]model.CircleLoad, error) {
	q := s.DB.WithContext(ctx).
		Table("halaqat h").
		Select("h.id, h.name, COUNT(s.id) AS student_count").
		Joins("LEFT JOIN students s ON h.id = s.halaqa_id")
	if halaqaID != nil {
		q = q.Where("h.id = ?", *halaqaID)
	}
	var rows []model.CircleLoad
	err := q.Group("h.id, h.name").Order("student_count DESC").Order("h.id").Scan(&rows).Error
	return rows, apperror.Storage("circle loads", err)
}
