package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"halaqat_backend/internals/features/reports/reports/model"
)

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "report_20240201_0830.txt", ExportFilename(time.Date(2024, 2, 1, 8, 30, 59, 0, time.UTC)))
}

func TestRenderTextPeriodic(t *testing.T) {
	r := model.Report{
		Type:       "weekly",
		Title:      "التقرير الأسبوعي - جميع الحلقات",
		HalaqaName: "جميع الحلقات",
		Period:     "الأسبوع الحالي",
		Summary: &model.Summary{
			TotalStudents: 3, TotalHalaqat: 2, TotalDonations: 300, AttendanceRate: 85,
		},
		AIAnalysis:      "تحليل",
		Strengths:       []string{"أ", "ب"},
		Recommendations: []string{"ج"},
	}
	out := RenderText(r, fixedNow)

	assert.Contains(t, out, "📋 التقرير الأسبوعي - جميع الحلقات\n"+strings.Repeat("=", 50))
	assert.Contains(t, out, "📅 تاريخ التوليد: 2024-02-01 08:30")
	assert.Contains(t, out, "💰 إجمالي التبرعات: 300.00 ريال")
	assert.Contains(t, out, "📊 معدل الحضور: 85%")
	assert.Contains(t, out, "1. أ\n2. ب\n")
	assert.Contains(t, out, "📋 التوصيات:")
	assert.NotContains(t, out, "خطة توزيع التبرعات")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 50)+"\n"))
}

func TestRenderTextAllocationAndDefaults(t *testing.T) {
	r := model.Report{
		TotalAmount: 300,
		Allocations: []model.Allocation{{Category: "طوارئ", Amount: 15, Percentage: 10}},
		HalaqatAnalysis: []model.CircleAnalysis{
			{HalaqaName: "حلقة", StudentCount: 4, PerformanceRating: "جيد", Recommendations: []string{"x", "y"}},
		},
	}
	out := RenderText(r, fixedNow)

	assert.Contains(t, out, "📋 تقرير\n")
	assert.Contains(t, out, "📊 نوع التقرير: غير محدد")
	assert.Contains(t, out, "💵 المبلغ الإجمالي: 300.00 ريال")
	assert.Contains(t, out, "• طوارئ: 15.00 ريال (10%)")
	assert.Contains(t, out, "   📋 التوصيات: x, y")
	assert.NotContains(t, out, "👥 عدد الطلاب: 0\n🏫")
}
