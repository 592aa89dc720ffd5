package model

// Report is the JSON shape returned by /generate_ai_report and posted back
// to /export_report_pdf. Which sections are present depends on Type.
type Report struct {
	Type        string `json:"type"`
	TimePeriod  string `json:"time_period,omitempty"`
	HalaqaID    string `json:"halaqa_id,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`

	// weekly / monthly
	Period          string   `json:"period,omitempty"`
	HalaqaName      string   `json:"halaqa_name,omitempty"`
	Summary         *Summary `json:"summary,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`

	// performance
	HalaqatAnalysis []CircleAnalysis `json:"halaqat_analysis,omitempty"`
	OverallRating   string           `json:"overall_rating,omitempty"`

	// allocation
	TotalAmount        float64      `json:"total_amount,omitempty"`
	PerHalaqa          float64      `json:"per_halaqa,omitempty"`
	AllocationStrategy string       `json:"allocation_strategy,omitempty"`
	Allocations        []Allocation `json:"allocations,omitempty"`

	AIAnalysis string `json:"ai_analysis,omitempty"`

	// unsupported kind
	Message        string   `json:"message,omitempty"`
	AvailableTypes []string `json:"available_types,omitempty"`
}

type Summary struct {
	TotalStudents  int64   `json:"total_students"`
	TotalHalaqat   int64   `json:"total_halaqat"`
	TotalDonations float64 `json:"total_donations"`
	AttendanceRate int     `json:"attendance_rate"`
}

type CircleAnalysis struct {
	HalaqaName        string   `json:"halaqa_name"`
	StudentCount      int64    `json:"student_count"`
	PerformanceRating string   `json:"performance_rating"`
	Recommendations   []string `json:"recommendations"`
}

type Allocation struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// CircleLoad is one circle's member count, as ranked by the performance report.
type CircleLoad struct {
	ID           int64  `gorm:"column:id"`
	Name         string `gorm:"column:name"`
	StudentCount int64  `gorm:"column:student_count"`
}
