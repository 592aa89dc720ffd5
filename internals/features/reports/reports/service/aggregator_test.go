package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "halaqat_backend/internals/databases"
)

var fixedNow = time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)

func newAggregator(t *testing.T, seed ...string) (*Aggregator, *gorm.DB) {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	for _, q := range seed {
		require.NoError(t, st.DB.Exec(q).Error, q)
	}
	a := NewAggregator(NewGormSource(st.DB))
	a.Now = func() time.Time { return fixedNow }
	return a, st.DB
}

// Three students over two circles and 300 donated.
var basicSeed = []string{
	`INSERT INTO halaqat (id, name) VALUES (1, 'حلقة الفجر'), (2, 'حلقة العصر')`,
	`INSERT INTO students (name, halaqa_id) VALUES ('A', 1), ('B', 1), ('C', 2)`,
	`INSERT INTO donations (donor_name, amount) VALUES ('x', 100), ('y', 200)`,
}

func TestAllocationSplitsPerCircle(t *testing.T) {
	a, _ := newAggregator(t, basicSeed...)

	r, err := a.Generate(context.Background(), Request{Kind: KindAllocation})
	require.NoError(t, err)

	assert.Equal(t, "completed", r.Status)
	assert.Equal(t, "خطة توزيع التبرعات الذكية", r.Title)
	assert.InDelta(t, 300, r.TotalAmount, 1e-9)
	assert.InDelta(t, 150, r.PerHalaqa, 1e-9)
	require.Len(t, r.Allocations, 4)

	want := []float64{60, 45, 30, 15}
	var sum float64
	for i, al := range r.Allocations {
		assert.InDelta(t, want[i], al.Amount, 1e-9, al.Category)
		sum += al.Amount
	}
	assert.InDelta(t, r.PerHalaqa, sum, 1e-9)
	assert.Equal(t, []int{40, 30, 20, 10}, []int{
		r.Allocations[0].Percentage, r.Allocations[1].Percentage,
		r.Allocations[2].Percentage, r.Allocations[3].Percentage,
	})
}

func TestAllocationPlaceholders(t *testing.T) {
	a, _ := newAggregator(t)

	r, err := a.Generate(context.Background(), Request{Kind: KindAllocation})
	require.NoError(t, err)
	assert.InDelta(t, 5000, r.TotalAmount, 1e-9)
	assert.InDelta(t, 5000, r.PerHalaqa, 1e-9)
	assert.InDelta(t, 2000, r.Allocations[0].Amount, 1e-9)
}

func TestPeriodicReport(t *testing.T) {
	a, _ := newAggregator(t, basicSeed...)
	ctx := context.Background()

	r, err := a.Generate(ctx, Request{Kind: KindWeekly, TimePeriod: "current_week"})
	require.NoError(t, err)
	assert.Equal(t, "التقرير الأسبوعي - جميع الحلقات", r.Title)
	assert.Equal(t, "الأسبوع الحالي", r.Period)
	assert.Equal(t, "all", r.HalaqaID)
	assert.Equal(t, "2024-02-01 08:30:00", r.GeneratedAt)
	require.NotNil(t, r.Summary)
	assert.EqualValues(t, 3, r.Summary.TotalStudents)
	assert.EqualValues(t, 2, r.Summary.TotalHalaqat)
	assert.InDelta(t, 300, r.Summary.TotalDonations, 1e-9)
	assert.Equal(t, 85, r.Summary.AttendanceRate)
	assert.Len(t, r.Strengths, 3)
	assert.Len(t, r.Recommendations, 3)

	one := int64(1)
	r, err = a.Generate(ctx, Request{Kind: KindMonthly, TimePeriod: "custom", HalaqaID: &one})
	require.NoError(t, err)
	assert.Equal(t, "التقرير الشهري - حلقة الفجر", r.Title)
	assert.Equal(t, "custom", r.Period)
	assert.Equal(t, "1", r.HalaqaID)
	assert.EqualValues(t, 2, r.Summary.TotalStudents)
	assert.EqualValues(t, 1, r.Summary.TotalHalaqat)

	missing := int64(99)
	r, err = a.Generate(ctx, Request{Kind: KindWeekly, HalaqaID: &missing})
	require.NoError(t, err)
	assert.Equal(t, "حلقة رقم 99", r.HalaqaName)
	assert.EqualValues(t, 0, r.Summary.TotalStudents)
}

func TestPerformanceRanking(t *testing.T) {
	seed := []string{`INSERT INTO halaqat (id, name) VALUES (1, 'صغيرة'), (2, 'كبيرة'), (3, 'فارغة')`}
	for i := 0; i < 12; i++ {
		seed = append(seed, fmt.Sprintf(`INSERT INTO students (name, halaqa_id) VALUES ('s%d', 2)`, i))
	}
	seed = append(seed, `INSERT INTO students (name, halaqa_id) VALUES ('t', 1)`)
	a, _ := newAggregator(t, seed...)
	ctx := context.Background()

	r, err := a.Generate(ctx, Request{Kind: KindPerformance})
	require.NoError(t, err)
	assert.Equal(t, "تقرير أداء الحلقات - جميع الحلقات", r.Title)
	require.Len(t, r.HalaqatAnalysis, 3)
	assert.Equal(t, "كبيرة", r.HalaqatAnalysis[0].HalaqaName)
	assert.EqualValues(t, 12, r.HalaqatAnalysis[0].StudentCount)
	assert.Equal(t, "ممتاز", r.HalaqatAnalysis[0].PerformanceRating)
	assert.Equal(t, "صغيرة", r.HalaqatAnalysis[1].HalaqaName)
	assert.Equal(t, "جيد", r.HalaqatAnalysis[1].PerformanceRating)
	assert.EqualValues(t, 0, r.HalaqatAnalysis[2].StudentCount)
	assert.Equal(t, "ممتاز", r.OverallRating)

	one := int64(1)
	r, err = a.Generate(ctx, Request{Kind: KindPerformance, HalaqaID: &one})
	require.NoError(t, err)
	assert.Equal(t, "تقرير أداء الحلقات - صغيرة", r.Title)
	require.Len(t, r.HalaqatAnalysis, 1)
}

func TestPerformanceKeepsTopFive(t *testing.T) {
	seed := []string{}
	for i := 1; i <= 7; i++ {
		seed = append(seed, fmt.Sprintf(`INSERT INTO halaqat (id, name) VALUES (%d, 'h%d')`, i, i))
	}
	a, _ := newAggregator(t, seed...)

	r, err := a.Generate(context.Background(), Request{Kind: KindPerformance})
	require.NoError(t, err)
	assert.Len(t, r.HalaqatAnalysis, 5)
}

func TestUnsupportedKind(t *testing.T) {
	a, _ := newAggregator(t)

	r, err := a.Generate(context.Background(), Request{Kind: "yearly"})
	require.NoError(t, err)
	assert.Equal(t, "error", r.Status)
	assert.Equal(t, `نوع التقرير "yearly" غير مدعوم`, r.Message)
	assert.Equal(t, []string{"weekly", "performance", "allocation"}, r.AvailableTypes)
}

func TestGenerateDoesNotWrite(t *testing.T) {
	a, db := newAggregator(t, basicSeed...)
	ctx := context.Background()

	count := func() (n int64) {
		require.NoError(t, db.Raw(`SELECT (SELECT COUNT(*) FROM students) + (SELECT COUNT(*) FROM halaqat) + (SELECT COUNT(*) FROM donations)`).Row().Scan(&n))
		return n
	}
	before := count()
	for _, k := range []string{KindWeekly, KindMonthly, KindPerformance, KindAllocation, "nope"} {
		_, err := a.Generate(ctx, Request{Kind: k})
		require.NoError(t, err)
	}
	assert.Equal(t, before, count())
}
