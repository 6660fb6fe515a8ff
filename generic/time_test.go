package generic_test

import (
	"testing"
	"time"

	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

// =============================================================================
// DAY COUNT TESTS
// =============================================================================

func TestDaysBetween_SimpleSpan(t *testing.T) {
	// GIVEN: Two dates ten days apart
	// WHEN: Counting days between them
	// THEN: The count is ten, regardless of argument order

	a := date(2025, time.March, 1)
	b := date(2025, time.March, 11)

	if got := generic.DaysBetween(a, b); got != 10 {
		t.Errorf("DaysBetween(a, b) = %d, want 10", got)
	}
	if got := generic.DaysBetween(b, a); got != 10 {
		t.Errorf("DaysBetween(b, a) = %d, want 10", got)
	}
}

func TestDaysBetween_SameDay(t *testing.T) {
	a := date(2025, time.March, 1)
	if got := generic.DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween(a, a) = %d, want 0", got)
	}
}

func TestDaysBetween_LeapYear(t *testing.T) {
	// GIVEN: A span crossing February of a leap year
	// THEN: February 29 is included in the count

	a := date(2024, time.February, 1)
	b := date(2024, time.March, 1)
	if got := generic.DaysBetween(a, b); got != 29 {
		t.Errorf("DaysBetween over leap February = %d, want 29", got)
	}
}

func TestDaysBetween_TwoYearTenure(t *testing.T) {
	// A two-year employment spanning one leap year is 731 days.
	a := date(2023, time.December, 3)
	b := date(2025, time.December, 3)
	if got := generic.DaysBetween(a, b); got != 731 {
		t.Errorf("DaysBetween = %d, want 731", got)
	}
}

// =============================================================================
// CALENDAR UTILITY TESTS
// =============================================================================

func TestCommercialDay(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 1},
		{15, 15},
		{30, 30},
		{31, 30}, // the 31st collapses onto the commercial 30th
	}
	for _, c := range cases {
		if got := generic.CommercialDay(c.day); got != c.want {
			t.Errorf("CommercialDay(%d) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestStartOfMonth(t *testing.T) {
	got := generic.StartOfMonth(date(2025, time.December, 17))
	if !got.Equal(date(2025, time.December, 1)) {
		t.Errorf("StartOfMonth = %s, want 2025-12-01", got)
	}
}

func TestEndOfMonth(t *testing.T) {
	cases := []struct {
		in   generic.TimePoint
		want generic.TimePoint
	}{
		{date(2025, time.January, 10), date(2025, time.January, 31)},
		{date(2024, time.February, 5), date(2024, time.February, 29)},
		{date(2025, time.February, 5), date(2025, time.February, 28)},
		{date(2025, time.April, 30), date(2025, time.April, 30)},
	}
	for _, c := range cases {
		if got := generic.EndOfMonth(c.in); !got.Equal(c.want) {
			t.Errorf("EndOfMonth(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	if !generic.SameMonth(date(2025, time.March, 1), date(2025, time.March, 31)) {
		t.Error("dates in the same month should match")
	}
	if generic.SameMonth(date(2024, time.March, 1), date(2025, time.March, 1)) {
		t.Error("same month of different years should not match")
	}
}

// =============================================================================
// PARSING AND ARITHMETIC TESTS
// =============================================================================

func TestParseTimePoint(t *testing.T) {
	tp, err := generic.ParseTimePoint("2025-12-03")
	if err != nil {
		t.Fatalf("ParseTimePoint: %v", err)
	}
	if tp.Year() != 2025 || tp.Month() != time.December || tp.Day() != 3 {
		t.Errorf("parsed %s, want 2025-12-03", tp)
	}

	if _, err := generic.ParseTimePoint("03/12/2025"); err == nil {
		t.Error("expected error for non-ISO date format")
	}
}

func TestAddMonths_EndOfMonthClamping(t *testing.T) {
	// time.AddDate normalizes: Jan 31 + 1 month rolls into March.
	// The proration walks always anchor on day <= 28 or the month start,
	// so normalization never affects them; this pins the behavior down.
	got := date(2025, time.January, 31).AddMonths(1)
	if !got.Equal(date(2025, time.March, 3)) {
		t.Errorf("Jan 31 + 1 month = %s, want 2025-03-03 (normalized)", got)
	}
}

func TestAddDays_NoticeProjection(t *testing.T) {
	// GIVEN: A termination on December 3 with a 36-day notice
	// THEN: The projection lands on January 8 of the next year
	got := date(2025, time.December, 3).AddDays(36)
	if !got.Equal(date(2026, time.January, 8)) {
		t.Errorf("projection = %s, want 2026-01-08", got)
	}
}
