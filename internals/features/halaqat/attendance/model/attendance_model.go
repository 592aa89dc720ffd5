package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceRecord is unique per (student, date).
type AttendanceRecord struct {
	ID                   int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID            int64          `gorm:"column:student_id;not null" json:"student_id"`
	HalaqaID             *int64         `gorm:"column:halaqa_id" json:"halaqa_id,omitempty"`
	AttendanceDate       datatypes.Date `gorm:"column:attendance_date;not null" json:"attendance_date"`
	Status               string         `gorm:"column:status;not null" json:"status"`
	MemorizationProgress *string        `gorm:"column:memorization_progress" json:"memorization_progress,omitempty"`
	Performance          *string        `gorm:"column:performance" json:"performance,omitempty"`
	Notes                *string        `gorm:"column:notes" json:"notes,omitempty"`
	CreatedDate          time.Time      `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}
