package service

import (
	"fmt"
	"strings"
	"time"

	"halaqat_backend/internals/features/reports/reports/model"
)

var rule = strings.Repeat("=", 50)

func or(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ExportFilename names the downloaded text report after the minute it was made.
func ExportFilename(now time.Time) string {
	return "report_" + now.Format("20060102_1504") + ".txt"
}

// RenderText lays a generated report out as a plain-text document. Only the
// sections the report carries are written.
func RenderText(r model.Report, now time.Time) string {
	var b strings.Builder
	section := func(title string) {
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", rule, title, rule)
	}

	fmt.Fprintf(&b, "\n📋 %s\n%s\n\n", or(r.Title, "تقرير"), rule)
	fmt.Fprintf(&b, "📅 تاريخ التوليد: %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "📊 نوع التقرير: %s\n", or(r.Type, "غير محدد"))
	fmt.Fprintf(&b, "🏫 الحلقة: %s\n", or(r.HalaqaName, "غير محدد"))
	fmt.Fprintf(&b, "📆 الفترة: %s\n", or(r.Period, "غير محدد"))

	section("📈 الملخص:")
	if s := r.Summary; s != nil {
		fmt.Fprintf(&b, "\n👥 عدد الطلاب: %d\n", s.TotalStudents)
		fmt.Fprintf(&b, "🏫 عدد الحلقات: %d\n", s.TotalHalaqat)
		fmt.Fprintf(&b, "💰 إجمالي التبرعات: %.2f ريال\n", s.TotalDonations)
		fmt.Fprintf(&b, "📊 معدل الحضور: %d%%\n", s.AttendanceRate)
	}

	if r.AIAnalysis != "" {
		section("🤖 التحليل الذكي:")
		b.WriteString(r.AIAnalysis + "\n")
	}
	if r.Strengths != nil {
		section("💪 نقاط القوة:")
		for i, s := range r.Strengths {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	if r.Recommendations != nil {
		section("📋 التوصيات:")
		for i, s := range r.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	if r.HalaqatAnalysis != nil {
		section("📊 تحليل الحلقات:")
		for _, a := range r.HalaqatAnalysis {
			fmt.Fprintf(&b, "\n🏫 %s:\n", or(a.HalaqaName, "حلقة"))
			fmt.Fprintf(&b, "   👥 عدد الطلاب: %d\n", a.StudentCount)
			fmt.Fprintf(&b, "   ⭐ التقييم: %s\n", or(a.PerformanceRating, "جيد"))
			fmt.Fprintf(&b, "   📋 التوصيات: %s\n\n", strings.Join(a.Recommendations, ", "))
		}
	}
	if r.Allocations != nil {
		section("💰 خطة توزيع التبرعات:")
		fmt.Fprintf(&b, "💵 المبلغ الإجمالي: %.2f ريال\n\n", r.TotalAmount)
		for _, a := range r.Allocations {
			fmt.Fprintf(&b, "• %s: %.2f ريال (%d%%)\n", a.Category, a.Amount, a.Percentage)
		}
	}

	fmt.Fprintf(&b, "\n\n%s\n", rule)
	b.WriteString("📝 ملاحظة: هذا تقرير تم توليده تلقائياً بواسطة نظام إدارة الحلقات القرآنية\n")
	b.WriteString("🕌 جزاكم الله خيراً\n")
	b.WriteString(rule + "\n")
	return b.String()
}
