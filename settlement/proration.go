/*
proration.go - Avos (twelfths) proration algorithms

PURPOSE:
  Computes how many of 12 monthly increments ("avos") have been earned for
  the 13th salary and for proportional vacation. One avo is worth
  TotalMonthlyPay/12.

THE TWO ALGORITHMS ARE NOT THE SAME:
  13th salary uses a calendar-day-count test: a month counts iff at least
  15 in-window days fall in it (commercial calendar, first month
  30-day+1, last month capped at 30). Across a year boundary the count
  collapses to the simplified termination-year rule: zero-based month
  index of the termination, plus one when the termination day is >= 15.

  Vacation uses a rolling day-difference test anchored on the acquisition
  date: a month-step counts iff DaysBetween(step boundary, cursor) >= 14.

  The 14-vs-15 threshold difference and the cross-year simplification are
  part of the ruleset, not accidents; both must be preserved.

PROJECTION:
  For an employer-initiated, indemnified notice, both algorithms are
  re-run with the window end pushed to termination + notice days; the
  clamped difference against the actual avos is the indemnified
  supplement (see aggregator.go).

SEE ALSO:
  - notice.go: Produces the projection end date
  - aggregator.go: Turns avos into money lines
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

// maxAvos caps every proration at twelve twelfths.
const maxAvos = 12

// =============================================================================
// 13TH SALARY
// =============================================================================

// ThirteenthAvos counts the 13th-salary twelfths for the window
// [hire, end]. When hire and end share a calendar year the full
// month-by-month commercial-day walk applies; otherwise the simplified
// termination-year rule does.
func ThirteenthAvos(hire, end generic.TimePoint) int {
	if hire.Year() == end.Year() {
		return thirteenthAvosSameYear(hire, end)
	}

	// Cross-year: count months of the termination year only.
	avos := int(end.Month()) - 1
	if end.Day() >= 15 {
		avos++
	}
	if avos > maxAvos {
		avos = maxAvos
	}
	return avos
}

func thirteenthAvosSameYear(start, end generic.TimePoint) int {
	avos := 0
	current := generic.StartOfMonth(start)

	for current.BeforeOrEqual(end) {
		days := 30 // interior months count as a full commercial month

		if generic.SameMonth(current, start) {
			days = 30 - start.Day() + 1
			if start.Day() == 31 {
				days = 0
			}
		}
		if generic.SameMonth(current, end) {
			days = end.Day()
			if end.Day() == 31 {
				days = 30
			}
		}

		if days >= 15 {
			avos++
		}
		current = current.AddMonths(1)
	}

	if avos > maxAvos {
		avos = maxAvos
	}
	return avos
}

// =============================================================================
// VACATION
// =============================================================================

// VacationAccrualStart returns the start of the open acquisition period:
// the last hire-date anniversary that does not exceed the termination
// date.
func VacationAccrualStart(hire, termination generic.TimePoint) generic.TimePoint {
	start := hire
	for start.AddYears(1).BeforeOrEqual(termination) {
		start = start.AddYears(1)
	}
	return start
}

// VacationAvos counts the vacation twelfths earned in [start, end) using
// the rolling 14-day test. The cursor advances one calendar month per
// step; the last partial step counts iff at least 14 days of it fall
// before the window end.
func VacationAvos(start, end generic.TimePoint) int {
	avos := 0
	cursor := start

	for cursor.Before(end) {
		boundary := cursor.AddMonths(1)
		if boundary.After(end) {
			boundary = end
		}
		if generic.DaysBetween(boundary, cursor) >= 14 {
			avos++
		}
		cursor = cursor.AddMonths(1)
	}

	if avos > maxAvos {
		avos = maxAvos
	}
	return avos
}

// =============================================================================
// INDEMNIFIED PROJECTION
// =============================================================================

// extraAvos clamps a projected-minus-actual difference at zero. Moving
// the window end later never decreases avos, but the cross-year
// simplification can make a projection into January look smaller than the
// actual count; the supplement is never negative.
func extraAvos(projected, actual int) int {
	if projected <= actual {
		return 0
	}
	return projected - actual
}
