package repository

import (
	"context"

	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/halaqat/model"
	"halaqat_backend/internals/helpers/apperror"
)

const withCountSQL = `SELECT h.*, COUNT(s.id) AS student_count
	FROM halaqat h
	LEFT JOIN students s ON s.halaqa_id = h.id`

/* ====================== READ ====================== */

// List returns every circle with its member count, ordered by name.
func List(ctx context.Context, db *gorm.DB) ([]model.HalaqaWithCount, error) {
	var rows []model.HalaqaWithCount
	err := db.WithContext(ctx).
		Raw(withCountSQL + ` GROUP BY h.id ORDER BY h.name`).
		Scan(&rows).Error
	return rows, apperror.Storage("list halaqat", err)
}

// ListByTeacher returns the circles taught by a teacher (joined by id).
func ListByTeacher(ctx context.Context, db *gorm.DB, teacherID int64) ([]model.HalaqaWithCount, error) {
	var rows []model.HalaqaWithCount
	err := db.WithContext(ctx).
		Raw(withCountSQL+` WHERE h.teacher_id = ? GROUP BY h.id ORDER BY h.name`, teacherID).
		Scan(&rows).Error
	return rows, apperror.Storage("list halaqat by teacher", err)
}

// Options feeds <select> boxes.
func Options(ctx context.Context, db *gorm.DB) ([]model.HalaqaOption, error) {
	var rows []model.HalaqaOption
	err := db.WithContext(ctx).
		Model(&model.Halaqa{}).
		Select("id", "name").
		Order("name").
		Scan(&rows).Error
	return rows, apperror.Storage("list halaqa options", err)
}

func Get(ctx context.Context, db *gorm.DB, id int64) (*model.Halaqa, error) {
	var h model.Halaqa
	if err := db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, apperror.Storage("get halaqa", err)
	}
	return &h, nil
}

func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.Halaqa{}).Count(&n).Error
	return n, apperror.Storage("count halaqat", err)
}

/* ====================== WRITE ====================== */

func Create(ctx context.Context, db *gorm.DB, h *model.Halaqa) (int64, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveTeacher(tx, h); err != nil {
			return err
		}
		return tx.Create(h).Error
	})
	if err != nil {
		return 0, apperror.Storage("create halaqa", err)
	}
	return h.ID, nil
}

var updatable = []string{
	"name", "type", "teacher_id", "teacher_name", "location",
	"max_capacity", "schedule_days", "start_time", "end_time",
}

// Update overwrites every editable column; ErrNotFound when id is unknown.
func Update(ctx context.Context, db *gorm.DB, id int64, h *model.Halaqa) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Halaqa{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := resolveTeacher(tx, h); err != nil {
			return err
		}
		return tx.Model(&model.Halaqa{}).
			Where("id = ?", id).
			Select(updatable).
			Updates(h).Error
	})
	return apperror.Storage("update halaqa", err)
}

// resolveTeacher fills the teacher's display name from the id, or the id
// from a bare name. Unknown teachers are kept as given.
func resolveTeacher(tx *gorm.DB, h *model.Halaqa) error {
	switch {
	case h.TeacherID != nil:
		var names []string
		if err := tx.Table("teachers").Where("id = ?", *h.TeacherID).Limit(1).Pluck("name", &names).Error; err != nil {
			return err
		}
		if len(names) == 1 {
			h.TeacherName = &names[0]
		}
	case h.TeacherName != nil:
		var ids []int64
		if err := tx.Table("teachers").Where("name = ?", *h.TeacherName).Order("id").Limit(1).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 1 {
			h.TeacherID = &ids[0]
		}
	}
	return nil
}
