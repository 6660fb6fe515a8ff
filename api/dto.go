/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY REPRESENTATION:
  Request money comes in as JSON numbers. Response money goes out rounded
  to 2 decimal places - internal lines stay unrounded (see
  settlement/tax.go for the only in-engine rounding).

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/rates.go: RateConfigJSON, reused verbatim for rate uploads
*/
package api

import (
	"fmt"

	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SettlementRequest is the input contract for one calculation.
type SettlementRequest struct {
	HireDate               string  `json:"hire_date"`        // YYYY-MM-DD
	TerminationDate        string  `json:"termination_date"` // YYYY-MM-DD
	Reason                 string  `json:"reason"`           // employer_dismissal | employee_resignation
	NoticeModality         string  `json:"notice_modality"`  // worked | indemnified
	BaseSalary             float64 `json:"base_salary"`
	HazardPay              float64 `json:"hazard_pay"`
	ExpiredVacationPeriods int     `json:"expired_vacation_periods"`

	FundLedger  FundLedgerDTO   `json:"fund_ledger"`
	Adjustments []AdjustmentDTO `json:"adjustments"`
}

// FundLedgerDTO carries the FGTS history. ManualTotal, when present,
// supersedes the deposits.
type FundLedgerDTO struct {
	ManualTotal *float64            `json:"manual_total,omitempty"`
	Deposits    []MonthlyDepositDTO `json:"deposits,omitempty"`
}

type MonthlyDepositDTO struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

type AdjustmentDTO struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"` // earning | deduction
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SettlementDTO is the full settlement statement.
type SettlementDTO struct {
	ID         string `json:"id"`
	ComputedAt string `json:"computed_at"`
	Reason     string `json:"reason"`
	Modality   string `json:"notice_modality"`

	WorkedDays    int     `json:"worked_days"`
	SalaryBalance float64 `json:"salary_balance"`

	NoticeDays       int     `json:"notice_days"`
	NoticePay        float64 `json:"notice_pay"`
	NoticeCharge     float64 `json:"notice_charge"`
	NoticeProjection string  `json:"notice_projection"`

	ThirteenthAvos        int     `json:"thirteenth_avos"`
	ThirteenthSalary      float64 `json:"thirteenth_salary"`
	ThirteenthIndemnified float64 `json:"thirteenth_indemnified"`

	ExpiredVacation           float64 `json:"expired_vacation"`
	ExpiredVacationBonus      float64 `json:"expired_vacation_bonus"`
	DoubledVacationPeriods    int     `json:"doubled_vacation_periods"`
	DoubledVacation           float64 `json:"doubled_vacation"`
	DoubledVacationBonus      float64 `json:"doubled_vacation_bonus"`
	VacationAvos              int     `json:"vacation_avos"`
	ProportionalVacation      float64 `json:"proportional_vacation"`
	ProportionalVacationBonus float64 `json:"proportional_vacation_bonus"`
	IndemnifiedVacation       float64 `json:"indemnified_vacation"`
	IndemnifiedVacationBonus  float64 `json:"indemnified_vacation_bonus"`

	SocialSecurity float64 `json:"social_security"`
	IncomeTax      float64 `json:"income_tax"`

	FundLedgerBalance      float64 `json:"fund_ledger_balance"`
	FundRescissionDeposit  float64 `json:"fund_rescission_deposit"`
	FundIndemnifiedDeposit float64 `json:"fund_indemnified_deposit"`
	FundPenalty            float64 `json:"fund_penalty"`
	FundPayableTotal       float64 `json:"fund_payable_total"`

	ManualEarnings   float64 `json:"manual_earnings"`
	ManualDeductions float64 `json:"manual_deductions"`

	TotalEarnings   float64 `json:"total_earnings"`
	TotalDeductions float64 `json:"total_deductions"`
	NetSettlement   float64 `json:"net_settlement"`
	GrandTotal      float64 `json:"grand_total"`
}

// MinimumWageDTO is one effective-dated wage value.
type MinimumWageDTO struct {
	EffectiveAt string  `json:"effective_at"`
	Value       float64 `json:"value"`
}

// LedgerTemplateDTO is the FGTS month sequence for a hire/termination
// pair, optionally prefilled from the minimum wage.
type LedgerTemplateDTO struct {
	Months []MonthlyDepositDTO `json:"months"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func display(m generic.Money) float64 {
	return m.Round2().Float64()
}

func settlementToDTO(id, computedAt string, s settlement.Settlement) SettlementDTO {
	return SettlementDTO{
		ID:         id,
		ComputedAt: computedAt,
		Reason:     string(s.Reason),
		Modality:   string(s.Modality),

		WorkedDays:    s.WorkedDays,
		SalaryBalance: display(s.SalaryBalance),

		NoticeDays:       s.NoticeDays,
		NoticePay:        display(s.NoticePay),
		NoticeCharge:     display(s.NoticeCharge),
		NoticeProjection: s.NoticeProjection.String(),

		ThirteenthAvos:        s.ThirteenthAvos,
		ThirteenthSalary:      display(s.ThirteenthSalary),
		ThirteenthIndemnified: display(s.ThirteenthIndemnified),

		ExpiredVacation:           display(s.ExpiredVacation),
		ExpiredVacationBonus:      display(s.ExpiredVacationBonus),
		DoubledVacationPeriods:    s.DoubledVacationPeriods,
		DoubledVacation:           display(s.DoubledVacation),
		DoubledVacationBonus:      display(s.DoubledVacationBonus),
		VacationAvos:              s.VacationAvos,
		ProportionalVacation:      display(s.ProportionalVacation),
		ProportionalVacationBonus: display(s.ProportionalVacationBonus),
		IndemnifiedVacation:       display(s.IndemnifiedVacation),
		IndemnifiedVacationBonus:  display(s.IndemnifiedVacationBonus),

		SocialSecurity: display(s.SocialSecurity),
		IncomeTax:      display(s.IncomeTax),

		FundLedgerBalance:      display(s.FundLedgerBalance),
		FundRescissionDeposit:  display(s.FundRescissionDeposit),
		FundIndemnifiedDeposit: display(s.FundIndemnifiedDeposit),
		FundPenalty:            display(s.FundPenalty),
		FundPayableTotal:       display(s.FundPayableTotal),

		ManualEarnings:   display(s.ManualEarnings),
		ManualDeductions: display(s.ManualDeductions),

		TotalEarnings:   display(s.TotalEarnings),
		TotalDeductions: display(s.TotalDeductions),
		NetSettlement:   display(s.NetSettlement),
		GrandTotal:      display(s.GrandTotal),
	}
}

// toEmployment validates and converts the request to the engine's input
// contract. Validation lives here because the engine requires callers to
// hand it well-formed input.
func (r SettlementRequest) toEmployment() (settlement.Employment, error) {
	hire, err := generic.ParseTimePoint(r.HireDate)
	if err != nil {
		return settlement.Employment{}, fmt.Errorf("invalid hire_date: %w", err)
	}
	termination, err := generic.ParseTimePoint(r.TerminationDate)
	if err != nil {
		return settlement.Employment{}, fmt.Errorf("invalid termination_date: %w", err)
	}
	if termination.Before(hire) {
		return settlement.Employment{}, fmt.Errorf("termination_date precedes hire_date")
	}

	var reason settlement.TerminationReason
	switch r.Reason {
	case string(settlement.EmployerDismissal):
		reason = settlement.EmployerDismissal
	case string(settlement.EmployeeResignation):
		reason = settlement.EmployeeResignation
	default:
		return settlement.Employment{}, fmt.Errorf("invalid reason %q", r.Reason)
	}

	var modality settlement.NoticeModality
	switch r.NoticeModality {
	case string(settlement.NoticeWorked):
		modality = settlement.NoticeWorked
	case string(settlement.NoticeIndemnified):
		modality = settlement.NoticeIndemnified
	default:
		return settlement.Employment{}, fmt.Errorf("invalid notice_modality %q", r.NoticeModality)
	}

	if r.BaseSalary < 0 || r.HazardPay < 0 {
		return settlement.Employment{}, fmt.Errorf("salary figures must be non-negative")
	}
	if r.ExpiredVacationPeriods < 0 {
		return settlement.Employment{}, fmt.Errorf("expired_vacation_periods must be non-negative")
	}

	return settlement.Employment{
		HireDate:               hire,
		TerminationDate:        termination,
		Reason:                 reason,
		NoticeModality:         modality,
		BaseSalary:             generic.NewMoney(r.BaseSalary),
		HazardPay:              generic.NewMoney(r.HazardPay),
		ExpiredVacationPeriods: r.ExpiredVacationPeriods,
	}, nil
}

func (d FundLedgerDTO) toLedger() (settlement.FundLedger, error) {
	ledger := settlement.FundLedger{}

	if d.ManualTotal != nil {
		if *d.ManualTotal < 0 {
			return ledger, fmt.Errorf("manual_total must be non-negative")
		}
		total := generic.NewMoney(*d.ManualTotal)
		ledger.ManualTotal = &total
	}

	for _, dep := range d.Deposits {
		month, err := generic.ParseTimePoint(dep.Month + "-01")
		if err != nil {
			return ledger, fmt.Errorf("invalid ledger month %q", dep.Month)
		}
		if dep.Amount < 0 {
			return ledger, fmt.Errorf("ledger amount for %s must be non-negative", dep.Month)
		}
		ledger.Deposits = append(ledger.Deposits, settlement.MonthlyDeposit{
			Month:  month,
			Amount: generic.NewMoney(dep.Amount),
		})
	}
	return ledger, nil
}

func toAdjustments(dtos []AdjustmentDTO) ([]settlement.AdjustmentEntry, error) {
	var out []settlement.AdjustmentEntry
	for _, a := range dtos {
		if a.Amount <= 0 {
			return nil, fmt.Errorf("adjustment %q must have a positive amount", a.Description)
		}
		var kind settlement.AdjustmentKind
		switch a.Kind {
		case string(settlement.AdjustmentEarning):
			kind = settlement.AdjustmentEarning
		case string(settlement.AdjustmentDeduction):
			kind = settlement.AdjustmentDeduction
		default:
			return nil, fmt.Errorf("invalid adjustment kind %q", a.Kind)
		}
		out = append(out, settlement.AdjustmentEntry{
			Description: a.Description,
			Amount:      generic.NewMoney(a.Amount),
			Kind:        kind,
		})
	}
	return out, nil
}
