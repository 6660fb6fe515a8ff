/*
brackets.go - Progressive bracket schedules

PURPOSE:
  Table-driven progressive schedules replacing branch-heavy bracket
  arithmetic. Two shapes exist in Brazilian payroll withholding and both
  are modeled here:

  MarginalTable:
    Each band taxes only the slice of the base that falls inside it, and
    the band contributions accumulate. The result is a continuous,
    non-decreasing function of the base. (INSS shape.)

  DeductionTable:
    The whole base is taxed at the bracket rate and a fixed bracket
    constant is subtracted. Equivalent to marginal accumulation when the
    constants are derived from the band edges. (IRRF shape.)

INVARIANTS:
  - Bands are ordered by ascending UpTo
  - A non-positive base always yields zero
  - The top band is unbounded (TopRate/TopDeduct), so schedules are total
    functions of their domain

SEE ALSO:
  - lookup.go: Effective-dated value tables
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MARGINAL TABLE - Accumulating bands (INSS shape)
// =============================================================================

type MarginalBand struct {
	UpTo decimal.Decimal // inclusive upper bound of the band
	Rate decimal.Decimal
}

type MarginalTable struct {
	// Ceiling caps the taxable base before any band applies. Zero means
	// no ceiling.
	Ceiling decimal.Decimal

	// Bands in ascending UpTo order.
	Bands []MarginalBand

	// TopRate applies to the excess over the last band.
	TopRate decimal.Decimal
}

// Tax computes the accumulated marginal contribution for the base.
// The result is unrounded; callers apply the schedule's rounding rule.
func (t MarginalTable) Tax(base decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if t.Ceiling.IsPositive() && base.GreaterThan(t.Ceiling) {
		base = t.Ceiling
	}

	total := decimal.Zero
	floor := decimal.Zero
	for _, band := range t.Bands {
		if base.LessThanOrEqual(band.UpTo) {
			return total.Add(base.Sub(floor).Mul(band.Rate))
		}
		total = total.Add(band.UpTo.Sub(floor).Mul(band.Rate))
		floor = band.UpTo
	}
	return total.Add(base.Sub(floor).Mul(t.TopRate))
}

// =============================================================================
// DEDUCTION TABLE - Rate minus bracket constant (IRRF shape)
// =============================================================================

type DeductionBand struct {
	UpTo   decimal.Decimal // inclusive upper bound of the bracket
	Rate   decimal.Decimal
	Deduct decimal.Decimal // fixed subtraction for the bracket
}

type DeductionTable struct {
	// Bands in ascending UpTo order.
	Bands []DeductionBand

	// TopRate/TopDeduct apply above the last band.
	TopRate   decimal.Decimal
	TopDeduct decimal.Decimal
}

// Tax computes base*rate - deduct for the bracket containing the base,
// clamped at zero. The result is unrounded.
func (t DeductionTable) Tax(base decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	rate, deduct := t.TopRate, t.TopDeduct
	for _, band := range t.Bands {
		if base.LessThanOrEqual(band.UpTo) {
			rate, deduct = band.Rate, band.Deduct
			break
		}
	}

	tax := base.Mul(rate).Sub(deduct)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}
