package model

import (
	"time"

	"gorm.io/datatypes"
)

// Student belongs to at most one circle; HalaqaID is not checked against halaqat.
type Student struct {
	ID                int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name              string          `gorm:"column:name;not null" json:"name"`
	Age               *int            `gorm:"column:age" json:"age,omitempty"`
	Gender            *string         `gorm:"column:gender" json:"gender,omitempty"`
	Phone             *string         `gorm:"column:phone" json:"phone,omitempty"`
	Email             *string         `gorm:"column:email" json:"email,omitempty"`
	GuardianName      *string         `gorm:"column:guardian_name" json:"guardian_name,omitempty"`
	GuardianPhone     *string         `gorm:"column:guardian_phone" json:"guardian_phone,omitempty"`
	HalaqaID          *int64          `gorm:"column:halaqa_id" json:"halaqa_id,omitempty"`
	MemorizationLevel *string         `gorm:"column:memorization_level" json:"memorization_level,omitempty"`
	EnrollmentDate    *datatypes.Date `gorm:"column:enrollment_date" json:"enrollment_date,omitempty"`
	Status            string          `gorm:"column:status" json:"status"`
	CreatedDate       time.Time       `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Student) TableName() string {
	return "students"
}

// StudentWithHalaqa carries the owning circle's name for list pages.
type StudentWithHalaqa struct {
	Student
	HalaqaName *string `gorm:"column:halaqa_name" json:"halaqa_name,omitempty"`
}
