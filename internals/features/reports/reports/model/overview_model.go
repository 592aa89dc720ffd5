package model

import "github.com/shopspring/decimal"

// Overview holds the headline counts shared by the dashboard and report pages.
type Overview struct {
	TotalStudents  int64           `json:"total_students"`
	MaleCount      int64           `json:"male_count"`
	FemaleCount    int64           `json:"female_count"`
	TotalHalaqat   int64           `json:"total_halaqat"`
	TotalTeachers  int64           `json:"total_teachers"`
	TotalDonations decimal.Decimal `json:"total_donations"`
}

// Placeholder figures shown until attendance history feeds the report pages.
const (
	EstimatedAttendanceRate = 85
	PagesPerStudent         = 25
)

var WeeklyAttendanceSample = []int{85, 78, 82, 90, 88, 75, 80}

// TodayAttendance estimates today's head count at the fixed attendance rate.
func (o Overview) TodayAttendance() int64 {
	return o.TotalStudents * EstimatedAttendanceRate / 100
}

func (o Overview) TotalMemorized() int64 {
	return o.TotalStudents * PagesPerStudent
}
