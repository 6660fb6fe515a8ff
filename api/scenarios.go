/*
scenarios.go - Demo scenarios

PURPOSE:
  Canned settlement inputs for demos and quick manual verification. Each
  scenario is a complete SettlementRequest; listing them returns the
  inputs together with the computed results so a client can render a
  worked example without composing a request.

SEE ALSO:
  - handlers.go: ListScenarios
*/
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Scenario is one canned demo input.
type Scenario struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Request     SettlementRequest `json:"request"`
}

// ScenarioResultDTO pairs a scenario with its computed settlement.
type ScenarioResultDTO struct {
	Scenario
	Result SettlementDTO `json:"result"`
}

var scenarios = []Scenario{
	{
		ID:          "dismissal-indemnified",
		Name:        "Dismissal, indemnified notice",
		Description: "Two full years of tenure, employer-initiated, notice paid in lieu.",
		Request: SettlementRequest{
			HireDate:        "2023-12-03",
			TerminationDate: "2025-12-03",
			Reason:          "employer_dismissal",
			NoticeModality:  "indemnified",
			BaseSalary:      2500,
		},
	},
	{
		ID:          "resignation-worked",
		Name:        "Resignation, worked notice",
		Description: "Employee resigns and works the 30-day notice.",
		Request: SettlementRequest{
			HireDate:        "2024-03-15",
			TerminationDate: "2025-08-20",
			Reason:          "employee_resignation",
			NoticeModality:  "worked",
			BaseSalary:      3200,
		},
	},
	{
		ID:          "dismissal-expired-vacations",
		Name:        "Dismissal with expired vacations",
		Description: "Long tenure with hazard pay, two expired vacation periods (one doubled).",
		Request: SettlementRequest{
			HireDate:               "2018-02-01",
			TerminationDate:        "2025-10-10",
			Reason:                 "employer_dismissal",
			NoticeModality:         "worked",
			BaseSalary:             4100,
			HazardPay:              410,
			ExpiredVacationPeriods: 2,
		},
	},
}

// ListScenarios returns every demo scenario with its computed result.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	out := make([]ScenarioResultDTO, 0, len(scenarios))
	for _, sc := range scenarios {
		emp, err := sc.Request.toEmployment()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Bad scenario "+sc.ID, err)
			return
		}
		ledger, err := sc.Request.FundLedger.toLedger()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Bad scenario "+sc.ID, err)
			return
		}

		result := h.calc.Calculate(emp, ledger, nil)
		out = append(out, ScenarioResultDTO{
			Scenario: sc,
			Result:   settlementToDTO(uuid.NewString(), time.Now().UTC().Format(time.RFC3339), result),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
