package dto

import (
	"strconv"
	"time"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/teachers/model"
	helper "halaqat_backend/internals/helpers"
)

type TeacherForm struct {
	Name            string `form:"name" validate:"notblank,max=255"`
	Gender          string `form:"gender" validate:"max=20"`
	Phone           string `form:"phone" validate:"max=50"`
	Email           string `form:"email" validate:"omitempty,email"`
	Qualification   string `form:"qualification" validate:"max=255"`
	Specialization  string `form:"specialization" validate:"max=255"`
	ExperienceYears string `form:"experience_years"`
	Salary          string `form:"salary"`
	Status          string `form:"status" validate:"max=50"`
	HireDate        string `form:"hire_date"`
	Notes           string `form:"notes"`
}

// ToModel coerces the form: experience 0, salary unset, status active and
// hire date today when left blank.
func (f TeacherForm) ToModel(now time.Time) (*model.Teacher, error) {
	exp, err := helper.IntOr("experience_years", f.ExperienceYears, 0)
	if err != nil {
		return nil, err
	}
	salary, err := helper.OptionalDecimal("salary", f.Salary)
	if err != nil {
		return nil, err
	}
	today := helper.Today(now)
	hired, err := helper.DateOr("hire_date", f.HireDate, &today)
	if err != nil {
		return nil, err
	}

	return &model.Teacher{
		Name:            helper.OrDefault(f.Name, ""),
		Gender:          helper.NilIfEmpty(f.Gender),
		Phone:           helper.NilIfEmpty(f.Phone),
		Email:           helper.NilIfEmpty(f.Email),
		Qualification:   helper.NilIfEmpty(f.Qualification),
		Specialization:  helper.NilIfEmpty(f.Specialization),
		ExperienceYears: exp,
		Salary:          salary,
		Status:          helper.OrDefault(f.Status, constants.StatusActive),
		HireDate:        hired,
		Notes:           helper.NilIfEmpty(f.Notes),
	}, nil
}

func FromModel(t *model.Teacher) TeacherForm {
	f := TeacherForm{
		Name:            t.Name,
		Gender:          deref(t.Gender),
		Phone:           deref(t.Phone),
		Email:           deref(t.Email),
		Qualification:   deref(t.Qualification),
		Specialization:  deref(t.Specialization),
		ExperienceYears: strconv.Itoa(t.ExperienceYears),
		Status:          t.Status,
		HireDate:        helper.FormatDate(t.HireDate),
		Notes:           deref(t.Notes),
	}
	if t.Salary.Valid {
		f.Salary = t.Salary.Decimal.StringFixed(2)
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
