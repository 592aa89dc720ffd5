package service

import (
	"context"

	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	donationRepo "halaqat_backend/internals/features/donations/donations/repository"
	halaqaRepo "halaqat_backend/internals/features/halaqat/halaqat/repository"
	studentRepo "halaqat_backend/internals/features/halaqat/students/repository"
	teacherRepo "halaqat_backend/internals/features/halaqat/teachers/repository"
	"halaqat_backend/internals/features/reports/reports/model"
)

// LoadOverview gathers the headline counts. The first failing query aborts
// and the caller falls back to a zero Overview.
func LoadOverview(ctx context.Context, db *gorm.DB) (model.Overview, error) {
	var (
		o   model.Overview
		err error
	)
	if o.TotalStudents, err = studentRepo.Count(ctx, db, nil); err != nil {
		return model.Overview{}, err
	}
	if o.MaleCount, err = studentRepo.CountByGender(ctx, db, constants.GenderMale); err != nil {
		return model.Overview{}, err
	}
	if o.FemaleCount, err = studentRepo.CountByGender(ctx, db, constants.GenderFemale); err != nil {
		return model.Overview{}, err
	}
	if o.TotalHalaqat, err = halaqaRepo.Count(ctx, db); err != nil {
		return model.Overview{}, err
	}
	if o.TotalTeachers, err = teacherRepo.Count(ctx, db); err != nil {
		return model.Overview{}, err
	}
	if o.TotalDonations, err = donationRepo.Sum(ctx, db); err != nil {
		return model.Overview{}, err
	}
	return o, nil
}
