/*
tax.go - INSS and IRRF withholding schedules

PURPOSE:
  Applies the two progressive deduction schedules to a taxable base.

INSS (social security):
  Marginal accumulating bands over a ceiling-clamped base. Continuous and
  non-decreasing in the base. Rounded to 2 decimal places, half-up.

IRRF (income tax) with the 2026 relief rule:
  1. Raw progressive tax from the bracket table (rate x base - bracket
     constant), clamped at zero
  2. Base <= full-relief ceiling (5000.00): tax is forced to exactly zero
  3. Base <= partial ceiling (7350.00): subtract
     max(0, intercept - slope x base)
  4. Above that: no relief
  5. Final = max(0, raw - relief), rounded to 2 decimal places

SEPARATE TAXABLE EVENTS:
  Both schedules run twice per settlement - once on the balance-of-salary
  base and once on the combined 13th base - because the ruleset treats the
  13th salary as its own taxable event. The two income-tax figures are
  summed, never computed on a merged base. See aggregator.go.

SEE ALSO:
  - rates.go: The 2026 tables and relief constants
  - factory: JSON rate configs for year-versioned tables
*/
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// TAX TABLES
// =============================================================================

// ReliefRule is the 2026 IRRF reduction/exemption rule.
type ReliefRule struct {
	FullCeiling    decimal.Decimal // full exemption at or below this base
	PartialCeiling decimal.Decimal // linear reduction up to this base
	Intercept      decimal.Decimal
	Slope          decimal.Decimal
}

// TaxTables bundles one year's withholding schedules. The zero value is
// unusable; use Rates2026 or factory.ParseRateConfig.
type TaxTables struct {
	INSS   generic.MarginalTable
	IRRF   generic.DeductionTable
	Relief ReliefRule
}

// SocialSecurity computes the INSS deduction for the base. Non-positive
// bases yield zero.
func (t TaxTables) SocialSecurity(base generic.Money) generic.Money {
	if !base.IsPositive() {
		return generic.ZeroMoney()
	}
	return generic.Money{Value: t.INSS.Tax(base.Value)}.Round2()
}

// IncomeTax computes the IRRF withholding for the base, applying the
// relief rule. Non-positive bases yield zero.
func (t TaxTables) IncomeTax(base generic.Money) generic.Money {
	if !base.IsPositive() {
		return generic.ZeroMoney()
	}

	raw := t.IRRF.Tax(base.Value)

	// Full exemption band: forced to zero regardless of the raw figure.
	if base.Value.LessThanOrEqual(t.Relief.FullCeiling) {
		return generic.ZeroMoney()
	}

	relief := decimal.Zero
	if base.Value.LessThanOrEqual(t.Relief.PartialCeiling) {
		relief = t.Relief.Intercept.Sub(t.Relief.Slope.Mul(base.Value))
		if relief.IsNegative() {
			relief = decimal.Zero
		}
	}

	final := raw.Sub(relief)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return generic.Money{Value: final}.Round2()
}
