package dto

import (
	"strconv"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/halaqat/model"
	helper "halaqat_backend/internals/helpers"
)

// HalaqaForm is the add/edit form as posted by the browser.
type HalaqaForm struct {
	Name         string `form:"name" validate:"notblank,max=255"`
	Type         string `form:"type" validate:"max=255"`
	TeacherID    string `form:"teacher_id"`
	TeacherName  string `form:"teacher_name" validate:"max=255"`
	Location     string `form:"location" validate:"max=255"`
	MaxCapacity  string `form:"max_capacity"`
	ScheduleDays string `form:"schedule_days" validate:"max=255"`
	StartTime    string `form:"start_time"`
	EndTime      string `form:"end_time"`
}

// ToModel coerces the form; a blank capacity becomes 30.
func (f HalaqaForm) ToModel() (*model.Halaqa, error) {
	capacity, err := helper.IntOr("max_capacity", f.MaxCapacity, constants.DefaultHalaqaCapacity)
	if err != nil {
		return nil, err
	}
	teacherID, err := helper.OptionalID("teacher_id", f.TeacherID)
	if err != nil {
		return nil, err
	}
	start, err := helper.OptionalClock("start_time", f.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := helper.OptionalClock("end_time", f.EndTime)
	if err != nil {
		return nil, err
	}

	return &model.Halaqa{
		Name:         helper.OrDefault(f.Name, ""),
		Type:         helper.NilIfEmpty(f.Type),
		TeacherID:    teacherID,
		TeacherName:  helper.NilIfEmpty(f.TeacherName),
		Location:     helper.NilIfEmpty(f.Location),
		MaxCapacity:  capacity,
		ScheduleDays: helper.NilIfEmpty(f.ScheduleDays),
		StartTime:    start,
		EndTime:      end,
	}, nil
}

// FromModel prefills the edit form.
func FromModel(h *model.Halaqa) HalaqaForm {
	f := HalaqaForm{
		Name:         h.Name,
		Type:         deref(h.Type),
		TeacherName:  deref(h.TeacherName),
		Location:     deref(h.Location),
		MaxCapacity:  strconv.Itoa(h.MaxCapacity),
		ScheduleDays: deref(h.ScheduleDays),
	}
	if h.TeacherID != nil {
		f.TeacherID = strconv.FormatInt(*h.TeacherID, 10)
	}
	if h.StartTime != nil {
		f.StartTime = h.StartTime.String()[:5]
	}
	if h.EndTime != nil {
		f.EndTime = h.EndTime.String()[:5]
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
