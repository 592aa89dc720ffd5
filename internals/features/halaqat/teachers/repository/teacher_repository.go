package repository

import (
	"context"

	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/teachers/model"
	"halaqat_backend/internals/helpers/apperror"
)

/* ====================== READ ====================== */

// List returns teachers with their circle and student load, joined by teacher id.
func List(ctx context.Context, db *gorm.DB) ([]model.TeacherWithLoad, error) {
	var rows []model.TeacherWithLoad
	err := db.WithContext(ctx).Raw(`SELECT t.*,
			COUNT(DISTINCT h.id) AS halaqat_count,
			COUNT(s.id) AS total_students
		FROM teachers t
		LEFT JOIN halaqat h ON h.teacher_id = t.id
		LEFT JOIN students s ON s.halaqa_id = h.id
		GROUP BY t.id
		ORDER BY t.name`).Scan(&rows).Error
	return rows, apperror.Storage("list teachers", err)
}

func Stats(ctx context.Context, db *gorm.DB) (model.TeacherStats, error) {
	var st model.TeacherStats
	err := db.WithContext(ctx).Raw(`SELECT COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN gender = ? THEN 1 ELSE 0 END), 0) AS male,
			COALESCE(SUM(CASE WHEN gender = ? THEN 1 ELSE 0 END), 0) AS female
		FROM teachers`,
		constants.StatusActive, constants.GenderMale, constants.GenderFemale,
	).Scan(&st).Error
	return st, apperror.Storage("teacher stats", err)
}

func Options(ctx context.Context, db *gorm.DB) ([]model.TeacherOption, error) {
	var rows []model.TeacherOption
	err := db.WithContext(ctx).Model(&model.Teacher{}).Select("id", "name").Order("name").Scan(&rows).Error
	return rows, apperror.Storage("list teacher options", err)
}

func Get(ctx context.Context, db *gorm.DB, id int64) (*model.Teacher, error) {
	var t model.Teacher
	if err := db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, apperror.Storage("get teacher", err)
	}
	return &t, nil
}

func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.Teacher{}).Count(&n).Error
	return n, apperror.Storage("count teachers", err)
}

/* ====================== WRITE ====================== */

func Create(ctx context.Context, db *gorm.DB, t *model.Teacher) (int64, error) {
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return 0, apperror.Storage("create teacher", err)
	}
	return t.ID, nil
}

var updatable = []string{
	"name", "gender", "phone", "email", "qualification", "specialization",
	"experience_years", "salary", "status", "hire_date", "notes",
}

// Update also refreshes the display name cached on the teacher's circles.
func Update(ctx context.Context, db *gorm.DB, id int64, t *model.Teacher) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Teacher{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&model.Teacher{}).Where("id = ?", id).Select(updatable).Updates(t).Error; err != nil {
			return err
		}
		return tx.Table("halaqat").Where("teacher_id = ?", id).Update("teacher_name", t.Name).Error
	})
	return apperror.Storage("update teacher", err)
}
