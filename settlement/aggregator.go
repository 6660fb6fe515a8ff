/*
aggregator.go - Settlement orchestration

PURPOSE:
  The pure aggregation that turns (Employment, FundLedger, adjustments)
  into one Settlement. No field is computed more than once, nothing is
  cached between calls, and identical inputs yield bit-identical output.

ORDERING:
  1. Notice period (days, pay/charge, projection date)
  2. Balance of salary (commercial day count)
  3. 13th-salary proration
  4. Vacation lines (expired, doubled, proportional)
  5. Indemnified supplements from the notice projection
  6. FGTS block
  7. INSS on the two taxable bases, then IRRF on each base net of its
     own INSS
  8. Totals; manual adjustments fold in at the very end so they never
     feed a tax or fund base

SEE ALSO:
  - types.go: Input and output records
  - tax.go: The two deduction schedules
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator computes settlements against one set of tax tables. It holds
// no per-calculation state and is safe for concurrent use.
type Calculator struct {
	Tables TaxTables
}

// NewCalculator returns a calculator on the default 2026 tables.
func NewCalculator() *Calculator {
	return &Calculator{Tables: Rates2026}
}

// Calculate is a convenience for one-off calculations on the default
// tables.
func Calculate(emp Employment, ledger FundLedger, adjustments []AdjustmentEntry) Settlement {
	return NewCalculator().Calculate(emp, ledger, adjustments)
}

// Calculate produces the settlement for the employment. The caller has
// already validated the input contract (termination >= hire, non-negative
// money figures).
func (c *Calculator) Calculate(emp Employment, ledger FundLedger, adjustments []AdjustmentEntry) Settlement {
	pay := emp.TotalMonthlyPay()
	daily := pay.DivInt(baseNoticeDays)
	avoValue := pay.Div(avosDivisor)

	// Notice period.
	notice := ComputeNotice(emp)

	// Balance of salary: commercial day-of-month of the termination.
	workedDays := generic.CommercialDay(emp.TerminationDate.Day())
	salaryBalance := daily.MulInt(workedDays)

	// 13th salary.
	avos13 := ThirteenthAvos(emp.HireDate, emp.TerminationDate)
	thirteenth := avoValue.MulInt(avos13)

	// Vacation: expired periods, the doubled share (one doubling per two
	// expired periods), and the proportional accrual.
	expired := pay.MulInt(emp.ExpiredVacationPeriods)
	expiredBonus := expired.Div(vacationBonusDivisor)

	doubledPeriods := emp.ExpiredVacationPeriods / 2
	doubled := pay.MulInt(doubledPeriods)
	doubledBonus := doubled.Div(vacationBonusDivisor)

	vacationStart := VacationAccrualStart(emp.HireDate, emp.TerminationDate)
	vacationAvos := VacationAvos(vacationStart, emp.TerminationDate)
	proportional := avoValue.MulInt(vacationAvos)
	proportionalBonus := proportional.Div(vacationBonusDivisor)

	// Indemnified supplements: rerun both prorations with the window end
	// pushed to the notice projection. Employer-initiated, indemnified
	// notice only; every other case forces the supplements to zero.
	thirteenthIndemnified := generic.ZeroMoney()
	vacationIndemnified := generic.ZeroMoney()
	vacationIndemnifiedBonus := generic.ZeroMoney()

	if emp.Reason == EmployerDismissal && emp.NoticeModality == NoticeIndemnified {
		projected13 := ThirteenthAvos(emp.HireDate, notice.Projection)
		if extra := extraAvos(projected13, avos13); extra > 0 {
			thirteenthIndemnified = avoValue.MulInt(extra)
		}

		projectedVacation := VacationAvos(vacationStart, notice.Projection)
		if extra := extraAvos(projectedVacation, vacationAvos); extra > 0 {
			vacationIndemnified = avoValue.MulInt(extra)
			vacationIndemnifiedBonus = vacationIndemnified.Div(vacationBonusDivisor)
		}
	}

	// Severance fund.
	fund := ComputeFund(emp.Reason, ledger, salaryBalance, thirteenth, notice.Pay, thirteenthIndemnified)

	// INSS: two taxable events, never a merged base.
	thirteenthBase := thirteenth.Add(thirteenthIndemnified)
	inssSalary := c.Tables.SocialSecurity(salaryBalance)
	inssThirteenth := c.Tables.SocialSecurity(thirteenthBase)

	// IRRF: each base net of its own INSS share.
	irrfSalary := c.Tables.IncomeTax(salaryBalance.Sub(inssSalary).ClampZero())
	irrfThirteenth := c.Tables.IncomeTax(thirteenthBase.Sub(inssThirteenth).ClampZero())

	socialSecurity := inssSalary.Add(inssThirteenth)
	incomeTax := irrfSalary.Add(irrfThirteenth)

	// Totals. Manual adjustments are summed by kind and applied to the
	// net figure only.
	totalEarnings := salaryBalance.
		Add(notice.Pay).
		Add(thirteenth).
		Add(expired).Add(expiredBonus).
		Add(doubled).Add(doubledBonus).
		Add(proportional).Add(proportionalBonus).
		Add(thirteenthIndemnified).
		Add(vacationIndemnified).Add(vacationIndemnifiedBonus)

	totalDeductions := socialSecurity.Add(incomeTax).Add(notice.Charge)

	manualEarnings := generic.ZeroMoney()
	manualDeductions := generic.ZeroMoney()
	for _, adj := range adjustments {
		switch adj.Kind {
		case AdjustmentEarning:
			manualEarnings = manualEarnings.Add(adj.Amount)
		case AdjustmentDeduction:
			manualDeductions = manualDeductions.Add(adj.Amount)
		}
	}

	net := totalEarnings.Add(manualEarnings).Sub(totalDeductions.Add(manualDeductions))
	grand := net.Add(fund.PayableTotal)

	return Settlement{
		Reason:   emp.Reason,
		Modality: emp.NoticeModality,

		WorkedDays:    workedDays,
		SalaryBalance: salaryBalance,

		NoticeDays:       notice.Days,
		NoticePay:        notice.Pay,
		NoticeCharge:     notice.Charge,
		NoticeProjection: notice.Projection,

		ThirteenthAvos:        avos13,
		ThirteenthSalary:      thirteenth,
		ThirteenthIndemnified: thirteenthIndemnified,

		ExpiredVacation:           expired,
		ExpiredVacationBonus:      expiredBonus,
		DoubledVacationPeriods:    doubledPeriods,
		DoubledVacation:           doubled,
		DoubledVacationBonus:      doubledBonus,
		VacationAvos:              vacationAvos,
		ProportionalVacation:      proportional,
		ProportionalVacationBonus: proportionalBonus,
		IndemnifiedVacation:       vacationIndemnified,
		IndemnifiedVacationBonus:  vacationIndemnifiedBonus,

		SocialSecurity: socialSecurity,
		IncomeTax:      incomeTax,

		FundLedgerBalance:      fund.LedgerBalance,
		FundRescissionDeposit:  fund.RescissionDeposit,
		FundIndemnifiedDeposit: fund.IndemnifiedDeposit,
		FundPenalty:            fund.Penalty,
		FundPayableTotal:       fund.PayableTotal,

		ManualEarnings:   manualEarnings,
		ManualDeductions: manualDeductions,

		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		NetSettlement:   net,
		GrandTotal:      grand,
	}
}
