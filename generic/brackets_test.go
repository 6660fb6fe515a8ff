package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/severance-engine/generic"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testMarginal mirrors the 2026 social-security shape.
func testMarginal() generic.MarginalTable {
	return generic.MarginalTable{
		Ceiling: dec("8157.41"),
		Bands: []generic.MarginalBand{
			{UpTo: dec("1621.00"), Rate: dec("0.075")},
			{UpTo: dec("2793.88"), Rate: dec("0.09")},
			{UpTo: dec("4190.83"), Rate: dec("0.12")},
		},
		TopRate: dec("0.14"),
	}
}

// testDeduction mirrors the 2026 income-tax shape.
func testDeduction() generic.DeductionTable {
	return generic.DeductionTable{
		Bands: []generic.DeductionBand{
			{UpTo: dec("2259.20"), Rate: decimal.Zero, Deduct: decimal.Zero},
			{UpTo: dec("2826.65"), Rate: dec("0.075"), Deduct: dec("169.44")},
			{UpTo: dec("3751.05"), Rate: dec("0.15"), Deduct: dec("381.44")},
			{UpTo: dec("4664.68"), Rate: dec("0.225"), Deduct: dec("662.77")},
		},
		TopRate:   dec("0.275"),
		TopDeduct: dec("896.00"),
	}
}

// =============================================================================
// MARGINAL TABLE TESTS
// =============================================================================

func TestMarginalTable_NonPositiveBase(t *testing.T) {
	table := testMarginal()
	if got := table.Tax(decimal.Zero); !got.IsZero() {
		t.Errorf("Tax(0) = %s, want 0", got)
	}
	if got := table.Tax(dec("-100")); !got.IsZero() {
		t.Errorf("Tax(-100) = %s, want 0", got)
	}
}

func TestMarginalTable_FirstBand(t *testing.T) {
	// GIVEN: A base exactly at the first band edge
	// THEN: The whole base is taxed at the first rate
	table := testMarginal()
	got := table.Tax(dec("1621.00"))
	want := dec("121.575") // 1621.00 * 0.075
	if !got.Equal(want) {
		t.Errorf("Tax(1621.00) = %s, want %s", got, want)
	}
}

func TestMarginalTable_AccumulatesAcrossBands(t *testing.T) {
	// 121.575 + (2793.88-1621)*0.09 + (3000-2793.88)*0.12
	table := testMarginal()
	got := table.Tax(dec("3000"))
	want := dec("251.8686")
	if !got.Equal(want) {
		t.Errorf("Tax(3000) = %s, want %s", got, want)
	}
}

func TestMarginalTable_ContinuousAtBandEdges(t *testing.T) {
	// GIVEN: Bases one cent either side of each band edge
	// THEN: The tax never jumps by more than a cent's worth of the rates
	table := testMarginal()
	edges := []string{"1621.00", "2793.88", "4190.83"}

	for _, edge := range edges {
		e := dec(edge)
		below := table.Tax(e.Sub(dec("0.01")))
		above := table.Tax(e.Add(dec("0.01")))
		jump := above.Sub(below)
		if jump.GreaterThan(dec("0.01")) {
			t.Errorf("discontinuity at %s: below=%s above=%s", edge, below, above)
		}
		if jump.IsNegative() {
			t.Errorf("tax decreased across edge %s", edge)
		}
	}
}

func TestMarginalTable_CeilingClampsBase(t *testing.T) {
	// GIVEN: A base far above the contribution ceiling
	// THEN: The tax equals the tax at the ceiling exactly
	table := testMarginal()
	atCeiling := table.Tax(dec("8157.41"))
	aboveCeiling := table.Tax(dec("50000"))
	if !atCeiling.Equal(aboveCeiling) {
		t.Errorf("Tax above ceiling = %s, want %s", aboveCeiling, atCeiling)
	}

	// 121.575 + 105.5592 + 167.634 + 555.3212
	want := dec("950.0894")
	if !atCeiling.Equal(want) {
		t.Errorf("Tax(ceiling) = %s, want %s", atCeiling, want)
	}
}

func TestMarginalTable_NoCeiling(t *testing.T) {
	// Ceiling zero means unbounded: the top rate keeps applying.
	table := testMarginal()
	table.Ceiling = decimal.Zero

	capped := testMarginal().Tax(dec("50000"))
	uncapped := table.Tax(dec("50000"))
	if !uncapped.GreaterThan(capped) {
		t.Errorf("uncapped tax %s should exceed capped %s", uncapped, capped)
	}
}

// =============================================================================
// DEDUCTION TABLE TESTS
// =============================================================================

func TestDeductionTable_ExemptBracket(t *testing.T) {
	table := testDeduction()
	if got := table.Tax(dec("2259.20")); !got.IsZero() {
		t.Errorf("Tax(2259.20) = %s, want 0", got)
	}
	if got := table.Tax(decimal.Zero); !got.IsZero() {
		t.Errorf("Tax(0) = %s, want 0", got)
	}
}

func TestDeductionTable_RateMinusConstant(t *testing.T) {
	// 2500 * 0.075 - 169.44 = 18.06
	table := testDeduction()
	got := table.Tax(dec("2500"))
	want := dec("18.06")
	if !got.Equal(want) {
		t.Errorf("Tax(2500) = %s, want %s", got, want)
	}
}

func TestDeductionTable_TopBracket(t *testing.T) {
	// 10000 * 0.275 - 896.00 = 1854.00
	table := testDeduction()
	got := table.Tax(dec("10000"))
	want := dec("1854.00")
	if !got.Equal(want) {
		t.Errorf("Tax(10000) = %s, want %s", got, want)
	}
}

func TestDeductionTable_ClampsNegativeResult(t *testing.T) {
	// A table whose constant exceeds rate*base for small bases must
	// clamp at zero rather than refund.
	table := generic.DeductionTable{
		Bands:     nil,
		TopRate:   dec("0.10"),
		TopDeduct: dec("500"),
	}
	if got := table.Tax(dec("1000")); !got.IsZero() {
		t.Errorf("Tax = %s, want clamped 0", got)
	}
}
