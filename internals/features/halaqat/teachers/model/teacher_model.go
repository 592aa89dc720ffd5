package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Teacher struct {
	ID              int64               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string              `gorm:"column:name;not null" json:"name"`
	Gender          *string             `gorm:"column:gender" json:"gender,omitempty"`
	Phone           *string             `gorm:"column:phone" json:"phone,omitempty"`
	Email           *string             `gorm:"column:email" json:"email,omitempty"`
	Qualification   *string             `gorm:"column:qualification" json:"qualification,omitempty"`
	Specialization  *string             `gorm:"column:specialization" json:"specialization,omitempty"`
	ExperienceYears int                 `gorm:"column:experience_years" json:"experience_years"`
	Salary          decimal.NullDecimal `gorm:"column:salary" json:"salary"`
	Status          string              `gorm:"column:status" json:"status"`
	HireDate        *datatypes.Date     `gorm:"column:hire_date" json:"hire_date,omitempty"`
	Notes           *string             `gorm:"column:notes" json:"notes,omitempty"`
	CreatedDate     time.Time           `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// TeacherWithLoad adds how many circles and students a teacher carries.
type TeacherWithLoad struct {
	Teacher
	HalaqatCount  int64 `gorm:"column:halaqat_count" json:"halaqat_count"`
	TotalStudents int64 `gorm:"column:total_students" json:"total_students"`
}

type TeacherStats struct {
	Total  int64 `gorm:"column:total" json:"total"`
	Active int64 `gorm:"column:active" json:"active"`
	Male   int64 `gorm:"column:male" json:"male"`
	Female int64 `gorm:"column:female" json:"female"`
}

type TeacherOption struct {
	ID   int64  `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}
