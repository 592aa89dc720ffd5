package constants

// Stored labels. The database keeps the Arabic values the UI shows.
const (
	StatusActive    = "نشط"
	StatusInactive  = "غير نشط"
	StatusCompleted = "مكتمل"
	StatusPlanned   = "مخطط"

	GenderMale   = "ذكر"
	GenderFemale = "أنثى"

	AttendancePresent = "حاضر"
	AttendanceAbsent  = "غائب"
	AttendanceLate    = "متأخر"

	DefaultMemorizationLevel = "مبتدئ"
	DefaultDonationPurpose   = "تبرع عام"
	DefaultCampaignAuthor    = "النظام"

	DefaultHalaqaCapacity = 30
	AllHalaqatLabel       = "جميع الحلقات"
)

// Flash categories understood by the layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)
