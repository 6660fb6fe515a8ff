package generic

import (
	"math"
	"time"
)

// =============================================================================
// TIME POINT - Calendar date (no time-of-day)
// =============================================================================

// TimePoint is a calendar date. The settlement rules operate exclusively on
// dates, so no time zone or daylight-saving handling applies: every
// TimePoint is midnight UTC.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTimePoint parses a "YYYY-MM-DD" date string.
func ParseTimePoint(s string) (TimePoint, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{Time: t.UTC()}, nil
}

func Today() TimePoint {
	now := time.Now()
	return NewTimePoint(now.Year(), now.Month(), now.Day())
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint   { return TimePoint{Time: tp.normalize().AddDate(0, 0, n)} }
func (tp TimePoint) AddMonths(n int) TimePoint { return TimePoint{Time: tp.normalize().AddDate(0, n, 0)} }
func (tp TimePoint) AddYears(n int) TimePoint  { return TimePoint{Time: tp.normalize().AddDate(n, 0, 0)} }

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.Time.Format("2006-01-02")
}

// =============================================================================
// CALENDAR UTILITIES
// =============================================================================

// DaysBetween returns the absolute whole-day count between two dates,
// insensitive to which date is earlier. The sub-day residue is rounded,
// matching the reference day-count rule.
func DaysBetween(a, b TimePoint) int {
	hours := b.normalize().Sub(a.normalize()).Hours()
	return int(math.Abs(math.Round(hours / 24)))
}

// StartOfMonth returns the first day of the month containing tp.
func StartOfMonth(tp TimePoint) TimePoint {
	return NewTimePoint(tp.Year(), tp.Month(), 1)
}

// EndOfMonth returns the last day of the month containing tp.
func EndOfMonth(tp TimePoint) TimePoint {
	return NewTimePoint(tp.Year(), tp.Month(), 1).AddMonths(1).AddDays(-1)
}

// CommercialDay normalizes a day-of-month to the 30-day commercial
// calendar: a 31st counts as the 30th. Used by the balance-of-salary and
// notice-discount day counts.
func CommercialDay(day int) int {
	if day == 31 {
		return 30
	}
	return day
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b TimePoint) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
