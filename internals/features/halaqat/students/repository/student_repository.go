package repository

import (
	"context"

	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/students/model"
	"halaqat_backend/internals/helpers/apperror"
)

const withHalaqaSQL = `SELECT s.*, h.name AS halaqa_name
	FROM students s
	LEFT JOIN halaqat h ON s.halaqa_id = h.id`

/* ====================== READ ====================== */

// List returns all students with their circle name, ordered by name.
func List(ctx context.Context, db *gorm.DB) ([]model.StudentWithHalaqa, error) {
	var rows []model.StudentWithHalaqa
	err := db.WithContext(ctx).Raw(withHalaqaSQL + ` ORDER BY s.name`).Scan(&rows).Error
	return rows, apperror.Storage("list students", err)
}

// Recent returns the latest enrolments, newest id first.
func Recent(ctx context.Context, db *gorm.DB, limit int) ([]model.StudentWithHalaqa, error) {
	var rows []model.StudentWithHalaqa
	err := db.WithContext(ctx).Raw(withHalaqaSQL+` ORDER BY s.id DESC LIMIT ?`, limit).Scan(&rows).Error
	return rows, apperror.Storage("list recent students", err)
}

// ListForAttendance orders by circle then student, as the roll-call page groups them.
func ListForAttendance(ctx context.Context, db *gorm.DB) ([]model.StudentWithHalaqa, error) {
	var rows []model.StudentWithHalaqa
	err := db.WithContext(ctx).Raw(withHalaqaSQL + ` ORDER BY h.name, s.name`).Scan(&rows).Error
	return rows, apperror.Storage("list students for attendance", err)
}

func ListByHalaqa(ctx context.Context, db *gorm.DB, halaqaID int64) ([]model.Student, error) {
	var rows []model.Student
	err := db.WithContext(ctx).Where("halaqa_id = ?", halaqaID).Order("name").Find(&rows).Error
	return rows, apperror.Storage("list students by halaqa", err)
}

func Get(ctx context.Context, db *gorm.DB, id int64) (*model.Student, error) {
	var s model.Student
	if err := db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, apperror.Storage("get student", err)
	}
	return &s, nil
}

// Count counts students, optionally only one circle's members.
func Count(ctx context.Context, db *gorm.DB, halaqaID *int64) (int64, error) {
	var n int64
	q := db.WithContext(ctx).Model(&model.Student{})
	if halaqaID != nil {
		q = q.Where("halaqa_id = ?", *halaqaID)
	}
	err := q.Count(&n).Error
	return n, apperror.Storage("count students", err)
}

func CountByGender(ctx context.Context, db *gorm.DB, gender string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.Student{}).Where("gender = ?", gender).Count(&n).Error
	return n, apperror.Storage("count students by gender", err)
}

/* ====================== WRITE ====================== */

func Create(ctx context.Context, db *gorm.DB, s *model.Student) (int64, error) {
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return 0, apperror.Storage("create student", err)
	}
	return s.ID, nil
}

var updatable = []string{
	"name", "age", "gender", "phone", "email", "guardian_name", "guardian_phone",
	"halaqa_id", "memorization_level", "enrollment_date", "status",
}

func Update(ctx context.Context, db *gorm.DB, id int64, s *model.Student) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Student{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Student{}).Where("id = ?", id).Select(updatable).Updates(s).Error
	})
	return apperror.Storage("update student", err)
}
