package model

import (
	"time"

	"gorm.io/datatypes"
)

// Halaqa is a scheduled teaching circle. TeacherID is the join key;
// TeacherName is kept for display and for rows that predate the id.
type Halaqa struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"column:name;not null" json:"name"`
	Type         *string         `gorm:"column:type" json:"type,omitempty"`
	TeacherID    *int64          `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	TeacherName  *string         `gorm:"column:teacher_name" json:"teacher_name,omitempty"`
	Location     *string         `gorm:"column:location" json:"location,omitempty"`
	MaxCapacity  int             `gorm:"column:max_capacity" json:"max_capacity"`
	ScheduleDays *string         `gorm:"column:schedule_days" json:"schedule_days,omitempty"`
	StartTime    *datatypes.Time `gorm:"column:start_time" json:"start_time,omitempty"`
	EndTime      *datatypes.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	CreatedDate  time.Time       `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Halaqa) TableName() string {
	return "halaqat"
}

// HalaqaWithCount is a circle plus its live member count.
type HalaqaWithCount struct {
	Halaqa
	StudentCount int64 `gorm:"column:student_count" json:"student_count"`
}

type HalaqaOption struct {
	ID   int64  `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}
