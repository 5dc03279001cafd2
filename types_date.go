package atlas

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// readDateFormat is more permissive and accepts single-digit month/day.
const readDateFormat = "2006-1-2"

// Date represents a date with day-level granularity.
//
// Contact recency only needs whole days, and a civil date keeps the
// "days elapsed" arithmetic exact.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// DateOf truncates a time to its civil date.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// time returns the canonical time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date formatted according to layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

// DaysUntil returns the number of whole days from d to x. Negative when x is
// before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// ParseDate parses a Date from a string. It accepts ISO-8601 dates, a
// permissive variant like "2026-7-1", and full RFC3339 timestamps (which
// exported data files carry).
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "today" {
		return Today(), nil
	}
	if on, err := time.Parse(readDateFormat, str); err == nil {
		return NewDate(on.Date()), nil
	}
	if on, err := time.Parse(time.RFC3339, str); err == nil {
		return NewDate(on.Date()), nil
	}
	// Browser exports serialize dates with fractional seconds.
	if on, err := time.Parse("2006-01-02T15:04:05.000Z07:00", str); err == nil {
		return NewDate(on.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q, want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON decodes a date from a JSON string, accepting the same formats
// as ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

// MarshalJSON encodes the date as an ISO-8601 string. The zero date encodes
// as the empty string so unset dates survive a roundtrip.
func (d Date) MarshalJSON() ([]byte, error) {
	str := ""
	if !d.IsZero() {
		str = d.String()
	}
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
