package domain

import (
	"errors"
	"fmt"
	"time"
)

// dayFormat is the wire format for calendar dates.
const dayFormat = "2006-01-02"

// ErrInvalidDay is returned when a day string cannot be parsed.
var ErrInvalidDay = errors.New("invalid calendar day")

// Day represents a calendar date at day granularity, with no time-of-day
// component. Scheduling and analytics perform all date arithmetic on Day
// values so that a single reference "today" stays consistent across one
// derivation pass.
//
// Internally a Day is stored as midnight UTC, which makes Day values
// comparable with == and usable as map keys.
type Day struct {
	t time.Time
}

// NewDay creates a Day from a year, month, and day-of-month.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day of the given instant, as observed in the
// instant's location. The time-of-day is discarded.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return NewDay(year, month, day)
}

// ParseDay parses a "2006-01-02" formatted string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return DayOf(t), nil
}

// AddDays returns the day n calendar days after d. Negative n moves backward.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
// The result is negative when other is before d.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Before reports whether d is before other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d is after other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time { return d.t }

// String returns the day in "2006-01-02" format.
func (d Day) String() string { return d.t.Format(dayFormat) }

// MarshalJSON encodes the day as a quoted "2006-01-02" string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "2006-01-02" string.
func (d *Day) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDay, string(data))
	}
	parsed, err := ParseDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
