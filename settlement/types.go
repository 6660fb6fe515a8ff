/*
Package settlement implements the Brazilian employment-termination
settlement ("rescisão trabalhista") calculation engine.

PURPOSE:
  Given a hire date, termination date, termination reason, base pay, and a
  few elections (notice modality, expired vacation periods), derive every
  earnings and deduction line required by the ruleset and aggregate them
  into net and gross payout figures.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employment: The immutable input record for one calculation
  - AdjustmentEntry: User-supplied manual earning/deduction lines
  - Settlement: The fully-enumerated, strongly-typed result

DESIGN PRINCIPLES:
  1. Purity: a Settlement is a function of (Employment, FundLedger,
     adjustments) with no hidden state; identical inputs yield identical
     outputs
  2. Explicit enums: the termination reason x notice modality matrix is
     driven by tagged variants, never stringly-typed branches
  3. Separation: manual adjustments live beside computed lines, never
     inside them, so recalculation can't discard user entries

SEE ALSO:
  - aggregator.go: The orchestration that produces a Settlement
  - proration.go: Avos (twelfths) algorithms
  - notice.go: Aviso prévio rules
  - tax.go: INSS and IRRF schedules
  - fund.go: FGTS deposit and penalty
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// EMPLOYMENT - Immutable calculation input
// =============================================================================

// TerminationReason identifies who initiated the termination. The reason
// drives the seniority bonus, the notice value split, the indemnified
// projection, and the FGTS penalty.
type TerminationReason string

const (
	// EmployerDismissal is a dismissal without cause initiated by the
	// employer ("dispensa sem justa causa").
	EmployerDismissal TerminationReason = "employer_dismissal"

	// EmployeeResignation is a resignation initiated by the employee
	// ("pedido de demissão").
	EmployeeResignation TerminationReason = "employee_resignation"
)

// NoticeModality distinguishes a worked notice period from one paid
// (or charged) in lieu.
type NoticeModality string

const (
	NoticeWorked      NoticeModality = "worked"
	NoticeIndemnified NoticeModality = "indemnified"
)

// Employment is the input contract for one settlement calculation.
// Callers validate it before invocation: TerminationDate >= HireDate and
// non-negative money figures. The engine does not re-check.
type Employment struct {
	HireDate        generic.TimePoint
	TerminationDate generic.TimePoint
	Reason          TerminationReason
	NoticeModality  NoticeModality

	BaseSalary generic.Money
	HazardPay  generic.Money // adicional de insalubridade

	// ExpiredVacationPeriods counts full acquisition periods whose
	// vacation was never taken.
	ExpiredVacationPeriods int
}

// TotalMonthlyPay is the figure every proration multiplies: base salary
// plus the hazard-pay add-on.
func (e Employment) TotalMonthlyPay() generic.Money {
	return e.BaseSalary.Add(e.HazardPay)
}

// =============================================================================
// ADJUSTMENT ENTRY - Manual earning/deduction lines
// =============================================================================

type AdjustmentKind string

const (
	AdjustmentEarning   AdjustmentKind = "earning"
	AdjustmentDeduction AdjustmentKind = "deduction"
)

// AdjustmentEntry is a user-added line (overtime, advances, ...). Entries
// are applied to the net total only: they never feed tax or fund bases.
type AdjustmentEntry struct {
	Description string
	Amount      generic.Money // positive
	Kind        AdjustmentKind
}

// =============================================================================
// SETTLEMENT - Calculation output
// =============================================================================

// Settlement is the complete result of one calculation. Every field is
// computed exactly once; the struct is produced fresh per calculation and
// never mutated in place.
type Settlement struct {
	Reason   TerminationReason
	Modality NoticeModality

	// Balance of salary
	WorkedDays    int // commercial day-of-month of termination (31 -> 30)
	SalaryBalance generic.Money

	// Notice period (aviso prévio)
	NoticeDays       int
	NoticePay        generic.Money // earning, employer-paid notice days
	NoticeCharge     generic.Money // deduction, forfeited employee notice
	NoticeProjection generic.TimePoint

	// 13th salary
	ThirteenthAvos        int
	ThirteenthSalary      generic.Money
	ThirteenthIndemnified generic.Money // supplement from the notice projection

	// Vacation
	ExpiredVacation           generic.Money
	ExpiredVacationBonus      generic.Money // the statutory one-third
	DoubledVacationPeriods    int
	DoubledVacation           generic.Money
	DoubledVacationBonus      generic.Money
	VacationAvos              int
	ProportionalVacation      generic.Money
	ProportionalVacationBonus generic.Money
	IndemnifiedVacation       generic.Money
	IndemnifiedVacationBonus  generic.Money

	// Deductions
	SocialSecurity generic.Money // INSS, both taxable events summed
	IncomeTax      generic.Money // IRRF, both taxable events summed

	// Severance fund (FGTS)
	FundLedgerBalance      generic.Money
	FundRescissionDeposit  generic.Money
	FundIndemnifiedDeposit generic.Money
	FundPenalty            generic.Money // the 40% penalty
	FundPayableTotal       generic.Money

	// Manual adjustments, summed by kind
	ManualEarnings   generic.Money
	ManualDeductions generic.Money

	// Totals
	TotalEarnings   generic.Money // automatic earnings only
	TotalDeductions generic.Money // automatic deductions only
	NetSettlement   generic.Money
	GrandTotal      generic.Money // net + fund payable
}
