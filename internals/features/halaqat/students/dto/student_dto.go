package dto

import (
	"strconv"
	"time"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/students/model"
	helper "halaqat_backend/internals/helpers"
)

type StudentForm struct {
	Name              string `form:"name" validate:"notblank,max=255"`
	Age               string `form:"age"`
	Gender            string `form:"gender" validate:"omitempty,max=20"`
	Phone             string `form:"phone" validate:"max=50"`
	Email             string `form:"email" validate:"omitempty,email"`
	GuardianName      string `form:"guardian_name" validate:"max=255"`
	GuardianPhone     string `form:"guardian_phone" validate:"max=50"`
	HalaqaID          string `form:"halaqa_id"`
	MemorizationLevel string `form:"memorization_level" validate:"max=255"`
	EnrollmentDate    string `form:"enrollment_date"`
	Status            string `form:"status" validate:"max=50"`
}

// ToModel coerces the form. Blank circle means unassigned, blank level
// means beginner, blank enrollment date means today.
func (f StudentForm) ToModel(now time.Time) (*model.Student, error) {
	age, err := helper.OptionalInt("age", f.Age)
	if err != nil {
		return nil, err
	}
	halaqaID, err := helper.OptionalID("halaqa_id", f.HalaqaID)
	if err != nil {
		return nil, err
	}
	today := helper.Today(now)
	enrolled, err := helper.DateOr("enrollment_date", f.EnrollmentDate, &today)
	if err != nil {
		return nil, err
	}
	level := helper.OrDefault(f.MemorizationLevel, constants.DefaultMemorizationLevel)

	return &model.Student{
		Name:              helper.OrDefault(f.Name, ""),
		Age:               age,
		Gender:            helper.NilIfEmpty(f.Gender),
		Phone:             helper.NilIfEmpty(f.Phone),
		Email:             helper.NilIfEmpty(f.Email),
		GuardianName:      helper.NilIfEmpty(f.GuardianName),
		GuardianPhone:     helper.NilIfEmpty(f.GuardianPhone),
		HalaqaID:          halaqaID,
		MemorizationLevel: &level,
		EnrollmentDate:    enrolled,
		Status:            helper.OrDefault(f.Status, constants.StatusActive),
	}, nil
}

func FromModel(s *model.Student) StudentForm {
	f := StudentForm{
		Name:              s.Name,
		Gender:            deref(s.Gender),
		Phone:             deref(s.Phone),
		Email:             deref(s.Email),
		GuardianName:      deref(s.GuardianName),
		GuardianPhone:     deref(s.GuardianPhone),
		MemorizationLevel: deref(s.MemorizationLevel),
		EnrollmentDate:    helper.FormatDate(s.EnrollmentDate),
		Status:            s.Status,
	}
	if s.Age != nil {
		f.Age = strconv.Itoa(*s.Age)
	}
	if s.HalaqaID != nil {
		f.HalaqaID = strconv.FormatInt(*s.HalaqaID, 10)
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
