package settlement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

// =============================================================================
// 13TH SALARY - SAME-YEAR WALK
// =============================================================================

func TestThirteenthAvos_SameYear_FullYear(t *testing.T) {
	// GIVEN: Hired January 1, terminated December 31 of the same year
	// THEN: Every month reaches the 15-day threshold, twelve avos

	got := settlement.ThirteenthAvos(date(2025, time.January, 1), date(2025, time.December, 31))
	assert.Equal(t, 12, got)
}

func TestThirteenthAvos_SameYear_ShortFirstAndLastMonths(t *testing.T) {
	// GIVEN: Hired January 10, terminated December 3
	// WHEN: Counting avos
	// THEN: January has 21 in-window days (counts), December has 3
	//       (doesn't), the ten interior months count: 11 avos

	got := settlement.ThirteenthAvos(date(2025, time.January, 10), date(2025, time.December, 3))
	assert.Equal(t, 11, got)
}

func TestThirteenthAvos_SameYear_HiredOn31st(t *testing.T) {
	// A hire on the 31st contributes zero days to its month on the
	// commercial calendar, so that month never counts.
	got := settlement.ThirteenthAvos(date(2025, time.January, 31), date(2025, time.March, 20))
	assert.Equal(t, 2, got, "only February and March should count")
}

func TestThirteenthAvos_SameYear_TerminatedOn31st(t *testing.T) {
	// A termination on the 31st counts as 30 days in its month.
	got := settlement.ThirteenthAvos(date(2025, time.October, 1), date(2025, time.October, 31))
	assert.Equal(t, 1, got)
}

func TestThirteenthAvos_SameYear_FifteenDayThreshold(t *testing.T) {
	// Fourteen in-window days do not earn the avo; fifteen do.
	assert.Equal(t, 0, settlement.ThirteenthAvos(date(2025, time.June, 1), date(2025, time.June, 14)))
	assert.Equal(t, 1, settlement.ThirteenthAvos(date(2025, time.June, 1), date(2025, time.June, 15)))
}

// =============================================================================
// 13TH SALARY - CROSS-YEAR RULE
// =============================================================================

func TestThirteenthAvos_CrossYear_CountsTerminationYearOnly(t *testing.T) {
	// GIVEN: Two full years of tenure ending December 3
	// WHEN: Counting avos across the year boundary
	// THEN: Only the termination year counts: eleven complete months,
	//       and December's 3 days stay under the threshold

	got := settlement.ThirteenthAvos(date(2023, time.December, 3), date(2025, time.December, 3))
	assert.Equal(t, 11, got)
}

func TestThirteenthAvos_CrossYear_TerminationDayAtThreshold(t *testing.T) {
	got := settlement.ThirteenthAvos(date(2023, time.December, 3), date(2025, time.December, 15))
	assert.Equal(t, 12, got, "day 15 earns the termination month")

	got = settlement.ThirteenthAvos(date(2023, time.December, 3), date(2025, time.December, 14))
	assert.Equal(t, 11, got, "day 14 does not")
}

func TestThirteenthAvos_CrossYear_January(t *testing.T) {
	// A January termination before the 15th earns nothing for the year.
	got := settlement.ThirteenthAvos(date(2023, time.December, 3), date(2026, time.January, 8))
	assert.Equal(t, 0, got)
}

func TestThirteenthAvos_NeverExceedsTwelve(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for _, day := range []int{1, 14, 15, 28} {
			got := settlement.ThirteenthAvos(date(2020, time.March, 10), date(2025, month, day))
			assert.LessOrEqual(t, got, 12, "month %s day %d", month, day)
			assert.GreaterOrEqual(t, got, 0, "month %s day %d", month, day)
		}
	}
}

// =============================================================================
// VACATION ACCRUAL
// =============================================================================

func TestVacationAccrualStart_LastAnniversary(t *testing.T) {
	// GIVEN: Hired March 15, 2024, terminated August 20, 2025
	// THEN: The open acquisition period starts at the 2025 anniversary

	start := settlement.VacationAccrualStart(date(2024, time.March, 15), date(2025, time.August, 20))
	assert.True(t, start.Equal(date(2025, time.March, 15)), "start = %s", start)
}

func TestVacationAccrualStart_UnderOneYear(t *testing.T) {
	hire := date(2025, time.February, 1)
	start := settlement.VacationAccrualStart(hire, date(2025, time.November, 30))
	assert.True(t, start.Equal(hire), "under a year the period starts at hire")
}

func TestVacationAccrualStart_TerminationOnAnniversary(t *testing.T) {
	// Terminating exactly on an anniversary closes the period that day:
	// the open period starts at the termination and holds zero avos.
	start := settlement.VacationAccrualStart(date(2023, time.December, 3), date(2025, time.December, 3))
	assert.True(t, start.Equal(date(2025, time.December, 3)), "start = %s", start)
	assert.Equal(t, 0, settlement.VacationAvos(start, date(2025, time.December, 3)))
}

func TestVacationAvos_FullPeriod(t *testing.T) {
	// Twelve full month-steps between consecutive anniversaries.
	got := settlement.VacationAvos(date(2024, time.December, 3), date(2025, time.December, 3))
	assert.Equal(t, 12, got)
}

func TestVacationAvos_PartialPeriod(t *testing.T) {
	// GIVEN: Five full months plus a 5-day tail
	// THEN: The tail stays under the 14-day threshold: five avos

	got := settlement.VacationAvos(date(2025, time.March, 15), date(2025, time.August, 20))
	assert.Equal(t, 5, got)
}

func TestVacationAvos_FourteenDayThreshold(t *testing.T) {
	// The vacation test is >= 14 days, one lower than the 13th-salary
	// threshold. The asymmetry is part of the ruleset.
	start := date(2025, time.January, 1)

	assert.Equal(t, 1, settlement.VacationAvos(start, date(2025, time.January, 15)), "14 days earn the avo")
	assert.Equal(t, 0, settlement.VacationAvos(start, date(2025, time.January, 14)), "13 days do not")
}

func TestVacationAvos_CapsAtTwelve(t *testing.T) {
	// A window longer than a year still yields at most twelve avos.
	got := settlement.VacationAvos(date(2023, time.January, 1), date(2025, time.June, 1))
	assert.Equal(t, 12, got)
}

func TestVacationAvos_MonotonicInEndDate(t *testing.T) {
	start := date(2025, time.January, 10)
	prev := 0
	for d := 0; d <= 400; d += 7 {
		got := settlement.VacationAvos(start, start.AddDays(d))
		assert.GreaterOrEqual(t, got, prev, "avos decreased at +%d days", d)
		prev = got
	}
}
