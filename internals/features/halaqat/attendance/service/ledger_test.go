package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	database "halaqat_backend/internals/databases"
	"halaqat_backend/internals/features/halaqat/attendance/model"
	"halaqat_backend/internals/helpers/apperror"
)

func newLedger(t *testing.T) (*Ledger, *database.Storage) {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewLedger(st.DB), st
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func id(n int64) *int64 { return &n }

func seedStudents(t *testing.T, st *database.Storage, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, st.DB.Exec(`INSERT INTO students (name, halaqa_id) VALUES (?, 1)`, n).Error)
	}
}

func countFor(t *testing.T, st *database.Storage, d datatypes.Date) int64 {
	t.Helper()
	var n int64
	require.NoError(t, st.DB.Model(&model.AttendanceRecord{}).Where("attendance_date = ?", d).Count(&n).Error)
	return n
}

func TestMarkRejectsEmptyRollCall(t *testing.T) {
	l, _ := newLedger(t)

	n, err := l.Mark(context.Background(), day(2024, 1, 1), nil)

	assert.Zero(t, n)
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ErrNothingToRecord, ve.Message)
}

func TestMarkSkipsEntriesWithoutStudent(t *testing.T) {
	l, st := newLedger(t)
	seedStudents(t, st, "أحمد")
	ctx := context.Background()
	d := day(2024, 1, 1)

	n, err := l.Mark(ctx, d, []Entry{
		{StudentID: id(1), Status: "حاضر"},
		{StudentID: nil, Status: "غائب"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := l.Get(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, map[int64]Mark{1: {Status: "حاضر", Notes: ""}}, got)
}

func TestMarkReplacesWholeDay(t *testing.T) {
	l, st := newLedger(t)
	seedStudents(t, st, "أ", "ب", "ج")
	ctx := context.Background()
	d := day(2024, 2, 10)
	other := day(2024, 2, 11)

	_, err := l.Mark(ctx, other, []Entry{{StudentID: id(1), Status: "حاضر"}})
	require.NoError(t, err)

	_, err = l.Mark(ctx, d, []Entry{
		{StudentID: id(1), Status: "حاضر"},
		{StudentID: id(2), Status: "غائب"},
		{StudentID: id(3), Status: "متأخر"},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, countFor(t, st, d))

	n, err := l.Mark(ctx, d, []Entry{{StudentID: id(2), Status: "حاضر", Notes: "تصحيح"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, countFor(t, st, d))

	got, err := l.Get(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, map[int64]Mark{2: {Status: "حاضر", Notes: "تصحيح"}}, got)

	// other days untouched
	assert.EqualValues(t, 1, countFor(t, st, other))
}

func TestMarkDefaultsAndDuplicates(t *testing.T) {
	l, st := newLedger(t)
	seedStudents(t, st, "أ")
	ctx := context.Background()
	d := day(2024, 3, 1)

	n, err := l.Mark(ctx, d, []Entry{
		{StudentID: id(1), Status: "حاضر"},
		{StudentID: id(1), Status: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := l.Get(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "غائب", got[1].Status)

	var rec model.AttendanceRecord
	require.NoError(t, st.DB.First(&rec).Error)
	require.NotNil(t, rec.HalaqaID)
	assert.EqualValues(t, 1, *rec.HalaqaID)
}

func TestMarkAcceptsUnknownStudent(t *testing.T) {
	l, st := newLedger(t)
	d := day(2024, 3, 2)

	n, err := l.Mark(context.Background(), d, []Entry{{StudentID: id(99), Status: "حاضر"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, countFor(t, st, d))
}

func TestSummary(t *testing.T) {
	l, st := newLedger(t)
	seedStudents(t, st, "أ", "ب", "ج", "د")
	ctx := context.Background()
	d := day(2024, 4, 1)

	s, err := l.Summary(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, DaySummary{TotalStudents: 4, Absent: 4}, s)

	_, err = l.Mark(ctx, d, []Entry{
		{StudentID: id(1), Status: "حاضر"},
		{StudentID: id(2), Status: "حاضر"},
		{StudentID: id(3), Status: "متأخر"},
	})
	require.NoError(t, err)

	s, err = l.Summary(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, DaySummary{TotalStudents: 4, Present: 2, Absent: 1, Recorded: 3}, s)
}

func TestConcurrentMarksReplaceAtomically(t *testing.T) {
	l, st := newLedger(t)
	seedStudents(t, st, "1", "2", "3", "4", "5", "6", "7", "8")
	ctx := context.Background()
	d := day(2024, 5, 5)

	var wg sync.WaitGroup
	for w := 1; w <= 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			entries := make([]Entry, 0, w)
			for s := 1; s <= w; s++ {
				entries = append(entries, Entry{StudentID: id(int64(s)), Status: "حاضر", Notes: fmt.Sprintf("batch-%d", w)})
			}
			_, err := l.Mark(ctx, d, entries)
			assert.NoError(t, err)
		}(w)
	}
	wg.Wait()

	got, err := l.Get(ctx, d)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	batch := got[1].Notes
	assert.Equal(t, fmt.Sprintf("batch-%d", len(got)), batch)
	for _, m := range got {
		assert.Equal(t, batch, m.Notes)
	}
	assert.Empty(t, l.locks.m)
}
