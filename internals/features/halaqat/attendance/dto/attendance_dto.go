package dto

import (
	"math"
	"strconv"
	"strings"

	"halaqat_backend/internals/features/halaqat/attendance/service"
)

// StudentRef accepts 7, 7.0, "7" or null. Anything that is not a positive
// whole number decodes as missing, and missing entries are skipped by the ledger.
type StudentRef struct {
	ID    int64
	Valid bool
}

func (r *StudentRef) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	id, ok := parseID(strings.TrimSpace(s))
	if !ok {
		*r = StudentRef{}
		return nil
	}
	*r = StudentRef{ID: id, Valid: true}
	return nil
}

func parseID(s string) (int64, bool) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, id > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 || f >= math.MaxInt64 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

type AttendanceEntry struct {
	StudentID StudentRef `json:"student_id"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
}

// MarkAttendanceRequest is the body of POST /mark_attendance.
type MarkAttendanceRequest struct {
	Date       string            `json:"date"`
	Attendance []AttendanceEntry `json:"attendance"`
}

func (r MarkAttendanceRequest) Entries() []service.Entry {
	out := make([]service.Entry, 0, len(r.Attendance))
	for _, a := range r.Attendance {
		e := service.Entry{Status: a.Status, Notes: a.Notes}
		if a.StudentID.Valid {
			id := a.StudentID.ID
			e.StudentID = &id
		}
		out = append(out, e)
	}
	return out
}
