package domain

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date without a time-of-day or timezone. All report
// bucketing and streak arithmetic goes through this type so that day
// boundaries always follow the local calendar, never UTC offset math.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// ParseLocalDate parses a YYYY-MM-DD label back into a LocalDate.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d LocalDate) AddDays(n int) LocalDate {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week (Sunday = 0).
func (d LocalDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// StartOfDay returns midnight of d in the given location.
func (d LocalDate) StartOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// EndOfDay returns 23:59:59.999 of d in the given location.
func (d LocalDate) EndOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// Equal reports whether d and other are the same calendar date.
func (d LocalDate) Equal(other LocalDate) bool {
	return d == other
}

// Before reports whether d is an earlier calendar date than other.
func (d LocalDate) Before(other LocalDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is a later calendar date than other.
func (d LocalDate) After(other LocalDate) bool {
	return other.Before(d)
}

// FirstOfMonth returns the first day of d's month.
func (d LocalDate) FirstOfMonth() LocalDate {
	return LocalDate{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the number of calendar days in d's month.
func (d LocalDate) DaysInMonth() int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
