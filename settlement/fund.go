/*
fund.go - FGTS rescission deposit and penalty

PURPOSE:
  Computes the severance-fund figures of the settlement: the 8%
  rescission deposit over the severance earnings, the 8% deposit over the
  indemnified 13th supplement, the 40% penalty, and the payable total.

PENALTY BASE:
  ledger balance (manual override or monthly sum)
  + 8% x (balance of salary + 13th proportional + positive notice pay)
  + 8% x indemnified-13th supplement

REASON DEPENDENCE:
  The 40% penalty and the payable fund total exist only for an
  employer-initiated dismissal. On a resignation both are zero - the
  monthly deposits remain on account but are not part of this
  settlement's payout.

SEE ALSO:
  - ledger.go: BalanceForPenalty
  - aggregator.go: Supplies the earning lines the deposits are based on
*/
package settlement

import (
	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// FUND RESULT
// =============================================================================

// Fund is the computed severance-fund block of a settlement.
type Fund struct {
	LedgerBalance      generic.Money
	RescissionDeposit  generic.Money // 8% over the severance earnings
	IndemnifiedDeposit generic.Money // 8% over the indemnified 13th
	PenaltyBase        generic.Money
	Penalty            generic.Money
	PayableTotal       generic.Money
}

// ComputeFund derives the fund block from the ledger and the already
// computed earning lines.
func ComputeFund(reason TerminationReason, ledger FundLedger, salaryBalance, thirteenth, noticePay, thirteenthIndemnified generic.Money) Fund {
	balance := ledger.BalanceForPenalty()

	depositBase := salaryBalance.Add(thirteenth)
	if noticePay.IsPositive() {
		depositBase = depositBase.Add(noticePay)
	}
	rescission := depositBase.Mul(depositRate)
	indemnified := thirteenthIndemnified.Mul(depositRate)

	penaltyBase := balance.Add(rescission).Add(indemnified)

	penalty := generic.ZeroMoney()
	payable := generic.ZeroMoney()
	if reason == EmployerDismissal {
		penalty = penaltyBase.Mul(penaltyRate)
		payable = penaltyBase.Add(penalty)
	}

	return Fund{
		LedgerBalance:      balance,
		RescissionDeposit:  rescission,
		IndemnifiedDeposit: indemnified,
		PenaltyBase:        penaltyBase,
		Penalty:            penalty,
		PayableTotal:       payable,
	}
}
