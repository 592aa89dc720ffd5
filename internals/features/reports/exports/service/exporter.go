package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"halaqat_backend/internals/helpers/apperror"
)

// utf8BOM lets spreadsheet apps detect UTF-8 and show Arabic correctly.
const utf8BOM = "\xEF\xBB\xBF"

const rowLimit = 1000

var ErrUnknownKind = errors.New("unknown export type")

type dataset struct {
	headers []string
	query   string
	limited bool
}

var datasets = map[string]dataset{
	"students": {
		headers: []string{"الاسم", "العمر", "الجنس", "الهاتف", "البريد الإلكتروني",
			"اسم الولي", "هاتف الولي", "الحلقة", "تاريخ الانضمام", "مستوى الحفظ"},
		query: `SELECT s.name, s.age, s.gender, s.phone, s.email,
				s.guardian_name, s.guardian_phone, h.name AS halaqa_name,
				s.enrollment_date, s.memorization_level
			FROM students s
			LEFT JOIN halaqat h ON s.halaqa_id = h.id
			ORDER BY s.name`,
	},
	"halaqat": {
		headers: []string{"اسم الحلقة", "النوع", "المعلم", "المكان", "السعة القصوى",
			"أيام الدراسة", "وقت البداية", "وقت النهاية", "عدد الطلاب"},
		query: `SELECT h.name, h.type, h.teacher_name, h.location, h.max_capacity,
				h.schedule_days, h.start_time, h.end_time, COUNT(s.id) AS student_count
			FROM halaqat h
			LEFT JOIN students s ON h.id = s.halaqa_id
			GROUP BY h.id, h.name, h.type, h.teacher_name, h.location, h.max_capacity,
				h.schedule_days, h.start_time, h.end_time
			ORDER BY h.name`,
	},
	"attendance": {
		headers: []string{"التاريخ", "اسم الطالب", "الحلقة", "حالة الحضور", "ملاحظات"},
		query: `SELECT a.attendance_date, s.name, h.name AS halaqa_name, a.status, a.notes
			FROM attendance a
			JOIN students s ON a.student_id = s.id
			LEFT JOIN halaqat h ON s.halaqa_id = h.id
			ORDER BY a.attendance_date DESC, s.name
			LIMIT ?`,
		limited: true,
	},
	"donations": {
		headers: []string{"اسم المتبرع", "المبلغ", "تاريخ التبرع", "الغرض", "ملاحظات"},
		query: `SELECT donor_name, amount, donation_date, purpose, notes
			FROM donations
			ORDER BY donation_date DESC, id DESC
			LIMIT ?`,
		limited: true,
	},
}

// Kind is an exportable dataset as offered on the reports page.
type Kind struct {
	Name  string
	Label string
}

// Kinds lists the exportable datasets in display order.
func Kinds() []Kind {
	return []Kind{
		{Name: "students", Label: "الطلاب"},
		{Name: "halaqat", Label: "الحلقات"},
		{Name: "attendance", Label: "الحضور"},
		{Name: "donations", Label: "التبرعات"},
	}
}

func Supported(kind string) bool {
	_, ok := datasets[kind]
	return ok
}

// Filename is <kind>_YYYYMMDD_HHMMSS.csv.
func Filename(kind string, now time.Time) string {
	return kind + "_" + now.Format("20060102_150405") + ".csv"
}

type Exporter struct {
	X *sqlx.DB
}

func NewExporter(x *sqlx.DB) *Exporter {
	return &Exporter{X: x}
}

// Write streams one dataset as CSV with a BOM and a localized header row.
func (e *Exporter) Write(ctx context.Context, kind string, w io.Writer) error {
	ds, ok := datasets[kind]
	if !ok {
		return errors.Wrap(ErrUnknownKind, kind)
	}

	var args []interface{}
	if ds.limited {
		args = append(args, rowLimit)
	}
	rows, err := e.X.QueryxContext(ctx, e.X.Rebind(ds.query), args...)
	if err != nil {
		return apperror.Storage("export "+kind, err)
	}
	defer rows.Close()

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.headers); err != nil {
		return err
	}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return apperror.Storage("export "+kind, err)
		}
		record := make([]string, len(vals))
		for i, v := range vals {
			record[i] = cell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return apperror.Storage("export "+kind, err)
	}
	cw.Flush()
	return cw.Error()
}

func cell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}
