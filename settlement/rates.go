/*
rates.go - Static reference rate data

PURPOSE:
  The 2026 withholding tables and the minimum-wage history. These are
  immutable constants keyed by effective date or bracket ceiling - read
  only, never mutated at runtime. Year-versioned replacements can be
  loaded through factory.ParseRateConfig and the sqlite rate store.

SOURCES:
  INSS bands and ceiling:   2026 table (band 1 anchored at the 1621.00
                            minimum wage)
  IRRF brackets:            standard progressive table, 2025/2026 base
  Relief constants:         2026 reduction rule (full relief to 5000.00,
                            linear reduction to 7350.00)
  Minimum-wage history:     effective-dated national values back to 2000

SEE ALSO:
  - tax.go: The schedules consuming these tables
  - ledger.go: FillFromMinimumWage consuming the wage history
*/
package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/severance-engine/generic"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// 2026 WITHHOLDING TABLES
// =============================================================================

// Rates2026 is the default TaxTables for calculations.
var Rates2026 = TaxTables{
	INSS: generic.MarginalTable{
		Ceiling: dec("8157.41"),
		Bands: []generic.MarginalBand{
			{UpTo: dec("1621.00"), Rate: dec("0.075")},
			{UpTo: dec("2793.88"), Rate: dec("0.09")},
			{UpTo: dec("4190.83"), Rate: dec("0.12")},
		},
		TopRate: dec("0.14"),
	},
	IRRF: generic.DeductionTable{
		Bands: []generic.DeductionBand{
			{UpTo: dec("2259.20"), Rate: decimal.Zero, Deduct: decimal.Zero},
			{UpTo: dec("2826.65"), Rate: dec("0.075"), Deduct: dec("169.44")},
			{UpTo: dec("3751.05"), Rate: dec("0.15"), Deduct: dec("381.44")},
			{UpTo: dec("4664.68"), Rate: dec("0.225"), Deduct: dec("662.77")},
		},
		TopRate:   dec("0.275"),
		TopDeduct: dec("896.00"),
	},
	Relief: ReliefRule{
		FullCeiling:    dec("5000.00"),
		PartialCeiling: dec("7350.00"),
		Intercept:      dec("978.62"),
		Slope:          dec("0.133145"),
	},
}

// =============================================================================
// FUND AND VACATION CONSTANTS
// =============================================================================

// depositRate is the monthly FGTS deposit rate (8% of pay).
var depositRate = dec("0.08")

// penaltyRate is the employer-dismissal FGTS penalty (40% of the base).
var penaltyRate = dec("0.40")

// vacationBonusDivisor derives the statutory one-third vacation bonus.
var vacationBonusDivisor = dec("3")

// avosDivisor splits monthly pay into twelfths.
var avosDivisor = dec("12")

// =============================================================================
// MINIMUM WAGE HISTORY
// =============================================================================

func wage(year int, month time.Month, value string) generic.DatedValue {
	return generic.DatedValue{
		EffectiveAt: generic.NewTimePoint(year, month, 1),
		Value:       generic.MustParseMoney(value),
	}
}

// MinimumWages is the national minimum-wage history, used by the
// report layer's convenience fill. Queries predating the oldest entry
// fall back to the oldest value.
var MinimumWages = generic.NewEffectiveTable([]generic.DatedValue{
	wage(2026, time.January, "1621.00"),
	wage(2025, time.January, "1518.00"),
	wage(2024, time.January, "1412.00"),
	wage(2023, time.May, "1320.00"),
	wage(2023, time.January, "1302.00"),
	wage(2022, time.January, "1212.00"),
	wage(2021, time.January, "1100.00"),
	wage(2020, time.February, "1045.00"),
	wage(2020, time.January, "1039.00"),
	wage(2019, time.January, "998.00"),
	wage(2018, time.January, "954.00"),
	wage(2017, time.January, "937.00"),
	wage(2016, time.January, "880.00"),
	wage(2015, time.January, "788.00"),
	wage(2014, time.January, "724.00"),
	wage(2013, time.January, "678.00"),
	wage(2012, time.January, "622.00"),
	wage(2011, time.March, "545.00"),
	wage(2011, time.January, "540.00"),
	wage(2010, time.January, "510.00"),
	wage(2009, time.February, "465.00"),
	wage(2008, time.March, "415.00"),
	wage(2007, time.April, "380.00"),
	wage(2006, time.April, "350.00"),
	wage(2005, time.May, "300.00"),
	wage(2004, time.May, "260.00"),
	wage(2003, time.June, "240.00"),
	wage(2002, time.June, "200.00"),
	wage(2001, time.June, "180.00"),
	wage(2000, time.June, "151.00"),
})

// EffectiveMinimumWage returns the wage in force on the given date.
func EffectiveMinimumWage(date generic.TimePoint) generic.Money {
	return MinimumWages.At(date)
}
