/*
notice.go - Aviso prévio (notice period) rules

PURPOSE:
  Computes the notice-period day count, the earning/deduction split, and
  the projection date used by the indemnified proration supplement.

DAY COUNT:
  Base notice is 30 days. The Lei 12.506 seniority bonus - 3 days per full
  year of tenure, bonus capped at 60 days - applies only when the employer
  initiates the termination. An employee resignation is always exactly 30
  days regardless of tenure and modality.

VALUE MATRIX (reason x modality):
  Employer + Indemnified   earning  = daily x totalDays
  Employer + Worked        earning  = daily x (totalDays - 30), only the
                           bonus days are paid; the base 30 were worked
                           and already sit inside the balance of salary
  Employee + Indemnified   deduction = daily x 30 (forfeited notice)
  Employee + Worked        nothing

  The matrix is dispatched through an enum-keyed table so the four cases
  stay exhaustive and testable in isolation.

PROJECTION:
  termination + totalDays, produced only for employer-initiated
  terminations. For a resignation the projection equals the termination
  date and no indemnified supplement can arise.

SEE ALSO:
  - proration.go: Consumes the projection date
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

const (
	baseNoticeDays    = 30
	bonusDaysPerYear  = 3
	maxBonusDays      = 60
	daysPerTenureYear = 365.25
)

// =============================================================================
// NOTICE RESULT
// =============================================================================

// Notice is the resolved notice period for one employment.
type Notice struct {
	Days       int
	Pay        generic.Money // earning (employer-initiated cases)
	Charge     generic.Money // deduction (forfeited employee notice)
	Projection generic.TimePoint
}

// =============================================================================
// DAY COUNT
// =============================================================================

// NoticeDays returns the total notice length in days.
func NoticeDays(emp Employment) int {
	if emp.Reason != EmployerDismissal {
		return baseNoticeDays
	}

	tenureDays := generic.DaysBetween(emp.TerminationDate, emp.HireDate)
	fullYears := int(float64(tenureDays) / daysPerTenureYear)

	bonus := fullYears * bonusDaysPerYear
	if bonus > maxBonusDays {
		bonus = maxBonusDays
	}
	return baseNoticeDays + bonus
}

// =============================================================================
// VALUE DISPATCH TABLE
// =============================================================================

type noticeCase struct {
	reason   TerminationReason
	modality NoticeModality
}

// noticeValue resolves each reason x modality case to its pay/charge
// amounts given the daily rate and the total notice days.
var noticeValue = map[noticeCase]func(daily generic.Money, days int) (pay, charge generic.Money){
	{EmployerDismissal, NoticeIndemnified}: func(daily generic.Money, days int) (generic.Money, generic.Money) {
		return daily.MulInt(days), generic.ZeroMoney()
	},
	{EmployerDismissal, NoticeWorked}: func(daily generic.Money, days int) (generic.Money, generic.Money) {
		indemnified := days - baseNoticeDays
		if indemnified <= 0 {
			return generic.ZeroMoney(), generic.ZeroMoney()
		}
		return daily.MulInt(indemnified), generic.ZeroMoney()
	},
	{EmployeeResignation, NoticeIndemnified}: func(daily generic.Money, _ int) (generic.Money, generic.Money) {
		// The charge is always exactly 30 days, never bonus-extended.
		return generic.ZeroMoney(), daily.MulInt(baseNoticeDays)
	},
	{EmployeeResignation, NoticeWorked}: func(generic.Money, int) (generic.Money, generic.Money) {
		return generic.ZeroMoney(), generic.ZeroMoney()
	},
}

// ComputeNotice resolves the full notice period for the employment.
func ComputeNotice(emp Employment) Notice {
	days := NoticeDays(emp)
	daily := emp.TotalMonthlyPay().DivInt(baseNoticeDays)

	pay, charge := generic.ZeroMoney(), generic.ZeroMoney()
	if resolve, ok := noticeValue[noticeCase{emp.Reason, emp.NoticeModality}]; ok {
		pay, charge = resolve(daily, days)
	}

	// Projection exists only for employer-initiated terminations.
	projection := emp.TerminationDate
	if emp.Reason == EmployerDismissal {
		projection = emp.TerminationDate.AddDays(days)
	}

	return Notice{Days: days, Pay: pay, Charge: charge, Projection: projection}
}
