// Package date provides a calendar date (day granularity, no time of
// day) and a chronological history of dated values, the building
// blocks for aligning independently sourced daily series.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the canonical string representation, ISO-8601.
const DateFormat = "2006-01-02"

// readDateFormat is permissive on read (allows single-digit month/day).
const readDateFormat = "2006-1-2"

// readDMYFormat reads the day-month-year form used by the mfapi NAV feed.
const readDMYFormat = "2-1-2006"

// Date represents a calendar date with day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for that day (midnight UTC).
// Canonical values are directly comparable.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Unix returns the epoch seconds of the date at midnight UTC.
func (d Date) Unix() int64 { return d.time().Unix() }

// String formats the date in its canonical format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from an ISO-8601 string. It is lenient and
// accepts forms like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseDMY parses a Date in day-month-year order ("21-08-2025"), the
// form used by the fund NAV provider.
func ParseDMY(str string) (Date, error) {
	on, err := time.Parse(readDMYFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDMYFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON unmarshals a date from a JSON string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON marshals the date as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains reports whether the range contains the given date.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
