/*
ledger.go - FGTS deposit ledger

PURPOSE:
  Holds the employer's monthly FGTS deposit history for the employment,
  or a single manual balance override. The ledger feeds exactly one
  number into the settlement: the balance used as the 40%-penalty base.

OVERRIDE RULE:
  When ManualTotal is set it supersedes the monthly entries entirely.
  This mirrors the ruleset's "informed total balance" option: an employee
  statement from the fund trumps a month-by-month reconstruction.

TEMPLATE:
  NewTemplate builds the month sequence a caller is expected to fill:
  every calendar month from the hire month up to, but excluding, the
  termination month. FillFromMinimumWage is the convenience fill that
  assumes the employee earned the minimum wage the whole time (8% of the
  wage effective in each month).

SEE ALSO:
  - fund.go: Deposit/penalty computation consuming BalanceForPenalty
  - rates.go: Minimum-wage history used by FillFromMinimumWage
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// FUND LEDGER
// =============================================================================

// MonthlyDeposit is one month of FGTS history. Month is the first day of
// the calendar month it covers.
type MonthlyDeposit struct {
	Month  generic.TimePoint
	Amount generic.Money
}

// FundLedger is the severance-fund deposit history for one employment.
type FundLedger struct {
	// ManualTotal, when non-nil, supersedes Deposits for the penalty base.
	ManualTotal *generic.Money

	// Deposits covers every month from the hire month up to (excluding)
	// the termination month, in order.
	Deposits []MonthlyDeposit
}

// NewTemplate builds a zero-valued ledger covering the hire month up to,
// but excluding, the termination month.
func NewTemplate(hire, termination generic.TimePoint) FundLedger {
	var deposits []MonthlyDeposit

	current := generic.StartOfMonth(hire)
	end := generic.StartOfMonth(termination).AddMonths(-1)

	for current.BeforeOrEqual(end) {
		deposits = append(deposits, MonthlyDeposit{Month: current, Amount: generic.ZeroMoney()})
		current = current.AddMonths(1)
	}
	return FundLedger{Deposits: deposits}
}

// FillFromMinimumWage sets every month to 8% of the minimum wage effective
// that month and clears any manual override.
func (l *FundLedger) FillFromMinimumWage(wages generic.EffectiveTable) {
	for i := range l.Deposits {
		l.Deposits[i].Amount = wages.At(l.Deposits[i].Month).Mul(depositRate)
	}
	l.ManualTotal = nil
}

// BalanceForPenalty returns the fund balance used as the 40%-penalty base:
// the manual override when present, otherwise the sum of monthly entries.
func (l FundLedger) BalanceForPenalty() generic.Money {
	if l.ManualTotal != nil {
		return *l.ManualTotal
	}
	total := generic.ZeroMoney()
	for _, d := range l.Deposits {
		total = total.Add(d.Amount)
	}
	return total
}
