package settlement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
)

// =============================================================================
// LEDGER TESTS
// =============================================================================

func TestNewTemplate_MonthRange(t *testing.T) {
	// GIVEN: Hired mid-January, terminated mid-April
	// WHEN: Building the deposit template
	// THEN: January, February and March appear; the termination month
	//       is excluded

	ledger := settlement.NewTemplate(date(2025, time.January, 15), date(2025, time.April, 10))
	require.Len(t, ledger.Deposits, 3)

	assert.True(t, ledger.Deposits[0].Month.Equal(date(2025, time.January, 1)))
	assert.True(t, ledger.Deposits[2].Month.Equal(date(2025, time.March, 1)))
	for _, d := range ledger.Deposits {
		assert.True(t, d.Amount.IsZero())
	}
}

func TestNewTemplate_HireAndTerminationSameMonth(t *testing.T) {
	ledger := settlement.NewTemplate(date(2025, time.June, 1), date(2025, time.June, 28))
	assert.Empty(t, ledger.Deposits)
}

func TestFillFromMinimumWage(t *testing.T) {
	// GIVEN: A template straddling the 2023 -> 2024 wage change
	// WHEN: Filling from the wage history
	// THEN: Each month gets 8% of the wage effective that month and any
	//       manual override is cleared

	ledger := settlement.NewTemplate(date(2023, time.December, 5), date(2024, time.February, 20))
	manual := generic.NewMoney(9999)
	ledger.ManualTotal = &manual

	ledger.FillFromMinimumWage(settlement.MinimumWages)

	require.Len(t, ledger.Deposits, 2)
	assert.Equal(t, "105.60", ledger.Deposits[0].Amount.StringFixed(), "8%% of 1320.00")
	assert.Equal(t, "112.96", ledger.Deposits[1].Amount.StringFixed(), "8%% of 1412.00")
	assert.Nil(t, ledger.ManualTotal)
}

func TestBalanceForPenalty_ManualOverrideWins(t *testing.T) {
	ledger := settlement.NewTemplate(date(2025, time.January, 1), date(2025, time.June, 1))
	for i := range ledger.Deposits {
		ledger.Deposits[i].Amount = generic.NewMoney(100)
	}
	manual := generic.NewMoney(9999)
	ledger.ManualTotal = &manual

	assert.Equal(t, "9999.00", ledger.BalanceForPenalty().StringFixed())
}

func TestBalanceForPenalty_SumsDeposits(t *testing.T) {
	ledger := settlement.FundLedger{
		Deposits: []settlement.MonthlyDeposit{
			{Month: date(2025, time.January, 1), Amount: generic.NewMoney(120.50)},
			{Month: date(2025, time.February, 1), Amount: generic.NewMoney(120.50)},
			{Month: date(2025, time.March, 1), Amount: generic.NewMoney(130)},
		},
	}
	assert.Equal(t, "371.00", ledger.BalanceForPenalty().StringFixed())
}

func TestBalanceForPenalty_EmptyLedger(t *testing.T) {
	assert.True(t, settlement.FundLedger{}.BalanceForPenalty().IsZero())
}

// =============================================================================
// FUND COMPUTATION TESTS
// =============================================================================

func TestComputeFund_EmployerDismissal(t *testing.T) {
	// GIVEN: A 10000 ledger balance and the three earning lines
	// WHEN: Computing the fund block for an employer dismissal
	// THEN: deposit base 300+2750+3600 = 6650 -> 532.00 rescission,
	//       20.00 indemnified, penalty base 10552, penalty 4220.80,
	//       payable 14772.80

	manual := generic.NewMoney(10000)
	ledger := settlement.FundLedger{ManualTotal: &manual}

	fund := settlement.ComputeFund(
		settlement.EmployerDismissal,
		ledger,
		generic.NewMoney(300),  // salary balance
		generic.NewMoney(2750), // 13th
		generic.NewMoney(3600), // notice pay
		generic.NewMoney(250),  // indemnified 13th
	)

	assert.Equal(t, "10000.00", fund.LedgerBalance.StringFixed())
	assert.Equal(t, "532.00", fund.RescissionDeposit.StringFixed())
	assert.Equal(t, "20.00", fund.IndemnifiedDeposit.StringFixed())
	assert.Equal(t, "10552.00", fund.PenaltyBase.StringFixed())
	assert.Equal(t, "4220.80", fund.Penalty.StringFixed())
	assert.Equal(t, "14772.80", fund.PayableTotal.StringFixed())
}

func TestComputeFund_ResignationHasNoPenaltyOrPayout(t *testing.T) {
	// GIVEN: The same ledger and earning lines, but a resignation
	// THEN: Deposits are still computed, penalty and payable are zero -
	//       the balance stays on account, outside this settlement

	manual := generic.NewMoney(10000)
	ledger := settlement.FundLedger{ManualTotal: &manual}

	fund := settlement.ComputeFund(
		settlement.EmployeeResignation,
		ledger,
		generic.NewMoney(300),
		generic.NewMoney(2750),
		generic.ZeroMoney(),
		generic.ZeroMoney(),
	)

	assert.Equal(t, "10000.00", fund.LedgerBalance.StringFixed())
	assert.Equal(t, "244.00", fund.RescissionDeposit.StringFixed(), "8%% of 300+2750")
	assert.True(t, fund.Penalty.IsZero())
	assert.True(t, fund.PayableTotal.IsZero())
}

func TestComputeFund_NonPositiveNoticePayExcluded(t *testing.T) {
	// A zero notice pay (worked notice, resignation) never enters the
	// rescission deposit base.
	fund := settlement.ComputeFund(
		settlement.EmployerDismissal,
		settlement.FundLedger{},
		generic.NewMoney(1000),
		generic.NewMoney(500),
		generic.ZeroMoney(),
		generic.ZeroMoney(),
	)
	assert.Equal(t, "120.00", fund.RescissionDeposit.StringFixed(), "8%% of 1500")
}
