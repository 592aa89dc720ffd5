package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	"halaqat_backend/internals/features/halaqat/attendance/model"
	"halaqat_backend/internals/helpers/apperror"
)

// ErrNothingToRecord is returned by Mark for an empty roll call.
const ErrNothingToRecord = "لا توجد بيانات حضور لتسجيلها"

// Entry is one line of a submitted roll call. StudentID nil means skip.
type Entry struct {
	StudentID *int64
	Status    string
	Notes     string
}

// Mark is what the UI needs to prefill one student's row.
type Mark struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type DaySummary struct {
	TotalStudents int64 `json:"total_students"`
	Present       int64 `json:"present"`
	Absent        int64 `json:"absent"`
	Recorded      int64 `json:"recorded"`
}

// Ledger owns the attendance table. Resubmitting a date replaces the whole
// day; writes for the same date are serialized in-process and each
// replacement runs in one transaction.
type Ledger struct {
	DB    *gorm.DB
	locks dateLocks
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

func dateKey(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

func normalize(d datatypes.Date) datatypes.Date {
	y, m, day := time.Time(d).Date()
	return datatypes.Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// Mark replaces every record for date with entries and returns how many rows
// were written. Entries without a student are skipped; a student listed twice
// keeps its last entry.
func (l *Ledger) Mark(ctx context.Context, date datatypes.Date, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, apperror.NewValidationError(ErrNothingToRecord)
	}
	date = normalize(date)

	order := make([]int64, 0, len(entries))
	byStudent := make(map[int64]Entry, len(entries))
	for _, e := range entries {
		if e.StudentID == nil {
			continue
		}
		if _, seen := byStudent[*e.StudentID]; !seen {
			order = append(order, *e.StudentID)
		}
		byStudent[*e.StudentID] = e
	}

	unlock := l.locks.lock(dateKey(date))
	defer unlock()

	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_date = ?", date).Delete(&model.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if len(order) == 0 {
			return nil
		}

		circles, err := circlesOf(tx, order)
		if err != nil {
			return err
		}

		records := make([]model.AttendanceRecord, 0, len(order))
		for _, id := range order {
			e := byStudent[id]
			status := strings.TrimSpace(e.Status)
			if status == "" {
				status = constants.AttendanceAbsent
			}
			notes := e.Notes
			records = append(records, model.AttendanceRecord{
				StudentID:      id,
				HalaqaID:       circles[id],
				AttendanceDate: date,
				Status:         status,
				Notes:          &notes,
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return 0, apperror.Storage("mark attendance", err)
	}
	return len(order), nil
}

// circlesOf snapshots each student's current circle onto the record.
func circlesOf(tx *gorm.DB, ids []int64) (map[int64]*int64, error) {
	var rows []struct {
		ID       int64
		HalaqaID *int64
	}
	if err := tx.Table("students").Select("id", "halaqa_id").Where("id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]*int64, len(rows))
	for _, r := range rows {
		out[r.ID] = r.HalaqaID
	}
	return out, nil
}

// Get returns the recorded marks for date keyed by student id.
func (l *Ledger) Get(ctx context.Context, date datatypes.Date) (map[int64]Mark, error) {
	var rows []model.AttendanceRecord
	err := l.DB.WithContext(ctx).
		Where("attendance_date = ?", normalize(date)).
		Order("student_id").
		Find(&rows).Error
	if err != nil {
		return nil, apperror.Storage("get attendance", err)
	}
	out := make(map[int64]Mark, len(rows))
	for _, r := range rows {
		m := Mark{Status: r.Status}
		if r.Notes != nil {
			m.Notes = *r.Notes
		}
		out[r.StudentID] = m
	}
	return out, nil
}

// Summary counts the day's roll call. With no records at all, every student
// counts as absent.
func (l *Ledger) Summary(ctx context.Context, date datatypes.Date) (DaySummary, error) {
	db := l.DB.WithContext(ctx)
	var s DaySummary

	if err := db.Table("students").Count(&s.TotalStudents).Error; err != nil {
		return DaySummary{}, apperror.Storage("attendance summary", err)
	}
	var day struct {
		Recorded int64
		Present  int64
		Absent   int64
	}
	err := db.Raw(`SELECT COUNT(*) AS recorded,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance WHERE attendance_date = ?`,
		constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceLate, normalize(date),
	).Scan(&day).Error
	if err != nil {
		return DaySummary{}, apperror.Storage("attendance summary", err)
	}
	s.Recorded, s.Present, s.Absent = day.Recorded, day.Present, day.Absent
	if s.Recorded == 0 {
		s.Absent = s.TotalStudents
	}
	return s, nil
}

/* ====================== per-date lock ====================== */

type dateLock struct {
	mu   sync.Mutex
	refs int
}

type dateLocks struct {
	mu sync.Mutex
	m  map[string]*dateLock
}

func (d *dateLocks) lock(key string) func() {
	d.mu.Lock()
	if d.m == nil {
		d.m = make(map[string]*dateLock)
	}
	l, ok := d.m[key]
	if !ok {
		l = &dateLock{}
		d.m[key] = l
	}
	l.refs++
	d.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		d.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(d.m, key)
		}
		d.mu.Unlock()
	}
}
