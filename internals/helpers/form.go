package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"halaqat_backend/internals/helpers/apperror"
)

const DateLayout = "2006-01-02"

// Form values arrive as strings. Blank means "use the default", anything
// else that does not parse is a validation error.

func IntOr(field, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(field, "must be a whole number")
	}
	return n, nil
}

func OptionalInt(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid(field, "must be a whole number")
	}
	return &n, nil
}

// OptionalID parses a foreign key; "", "0" and "all" mean none.
func OptionalID(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil, invalid(field, "must be a valid id")
	}
	return &n, nil
}

func DecimalOr(field, raw string, def decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalid(field, "must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, invalid(field, "must be 0 or greater")
	}
	return d, nil
}

func OptionalDecimal(field, raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := DecimalOr(field, raw, decimal.Zero)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// DateOr parses YYYY-MM-DD, returning def for blank input.
func DateOr(field, raw string, def *datatypes.Date) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, invalid(field, "must be a date (YYYY-MM-DD)")
	}
	d := datatypes.Date(t)
	return &d, nil
}

// OptionalClock parses HH:MM or HH:MM:SS.
func OptionalClock(field, raw string) (*datatypes.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			c := datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
			return &c, nil
		}
	}
	return nil, invalid(field, "must be a time (HH:MM)")
}

// Today returns the calendar date of now in UTC-midnight form.
func Today(now time.Time) datatypes.Date {
	y, m, d := now.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(DateLayout)
}

func OrDefault(raw, def string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return def
}

func NilIfEmpty(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

func invalid(field, msg string) error {
	return apperror.NewValidationError(field+" "+msg, apperror.FieldError{Field: field, Error: field + " " + msg})
}
