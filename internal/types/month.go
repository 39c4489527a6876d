// Package types implements special types for pocketplan.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalText implements the encoding.TextMarshaler interface.
// The output is the result of m.String(), which also makes Month
// usable as a JSON object key.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The month is expected to be a string in a format accepted by ParseMonth.
// From the parsed string, everything is ignored except the year and month.
func (m *Month) UnmarshalText(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// MonthOf returns the Month in which a time occurs in that time's location.
//
// The result is always normalized to UTC so that Month values are
// comparable and usable as map keys regardless of the input location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a string and returns the Month value it represents.
//
// Accepted formats are "2006-01", "2006-01-02" and RFC3339 timestamps.
func ParseMonth(s string) (Month, error) {
	// This allows to parse strings that contain a full date
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}", s)
	if err != nil {
		return Month{}, err
	}

	pattern := "2006-01"
	if match {
		pattern = "2006-01-02"

		if strings.Contains(s, "T") {
			pattern = "2006-01-02T15:04:05Z07:00"
		}
	}

	t, err := time.Parse(pattern, s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Year() == time.Time(n).Year() && time.Time(m).Month() == time.Time(n).Month()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// MonthsUntil returns the number of calendar months from m to n.
//
// It is 0 when both represent the same month and negative when n is
// before m.
func (m Month) MonthsUntil(n Month) int {
	mt, nt := time.Time(m), time.Time(n)
	return (nt.Year()-mt.Year())*12 + int(nt.Month()) - int(mt.Month())
}
