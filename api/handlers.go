/*
handlers.go - HTTP API handlers for the settlement engine

PURPOSE:
  Exposes the settlement engine via REST. Handles HTTP request/response,
  JSON serialization, and delegates every computation to the settlement
  package.

ENDPOINTS:
  Settlements:
    POST   /api/settlements                 Calculate a settlement

  Rates:
    GET    /api/rates/minimum-wage?date=    Effective minimum wage
    GET    /api/rates/minimum-wage/history  Full wage history
    POST   /api/rates/config                Upload a year's rate tables

  Ledger:
    GET    /api/ledger/template             FGTS month template
           ?hire=&termination=&fill=minimum-wage

  Scenarios:
    GET    /api/scenarios                   Demo inputs with results

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (the engine requires pre-validated input)
  3. Call the calculator
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 500: Internal errors (store failures)

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/warp/severance-engine/factory"
	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
	"github.com/warp/severance-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	calc     *settlement.Calculator
	wages    generic.EffectiveTable
	rateYear int
}

// NewHandler creates a handler on the given store with the compiled-in
// defaults; LoadRates swaps in the stored tables.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:    store,
		calc:     settlement.NewCalculator(),
		wages:    settlement.MinimumWages,
		rateYear: 2026,
	}
}

// LoadRates loads the latest rate config and the wage history from the
// store into the handler.
func (h *Handler) LoadRates(ctx context.Context) error {
	year, configJSON, err := h.Store.LatestRateConfig(ctx)
	if err != nil {
		return err
	}
	tables, err := factory.ParseRateConfig(configJSON)
	if err != nil {
		return fmt.Errorf("stored rate config for %d: %w", year, err)
	}
	wages, err := h.Store.MinimumWages(ctx)
	if err != nil {
		return err
	}

	h.calc = &settlement.Calculator{Tables: *tables}
	h.wages = wages
	h.rateYear = year
	return nil
}

// =============================================================================
// SETTLEMENT HANDLERS
// =============================================================================

// CalculateSettlement runs one settlement calculation.
func (h *Handler) CalculateSettlement(w http.ResponseWriter, r *http.Request) {
	var req SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := req.toEmployment()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employment input", err)
		return
	}
	ledger, err := req.FundLedger.toLedger()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid fund ledger", err)
		return
	}
	adjustments, err := toAdjustments(req.Adjustments)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid adjustments", err)
		return
	}

	result := h.calc.Calculate(emp, ledger, adjustments)
	dto := settlementToDTO(uuid.NewString(), time.Now().UTC().Format(time.RFC3339), result)
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// RATE HANDLERS
// =============================================================================

// GetMinimumWage returns the wage effective on the query date (today when
// absent).
func (h *Handler) GetMinimumWage(w http.ResponseWriter, r *http.Request) {
	date := generic.Today()
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := generic.ParseTimePoint(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date", err)
			return
		}
		date = parsed
	}

	writeJSON(w, http.StatusOK, MinimumWageDTO{
		EffectiveAt: date.String(),
		Value:       h.wages.At(date).Round2().Float64(),
	})
}

// MinimumWageHistory returns the full wage table, newest first.
func (h *Handler) MinimumWageHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.wages.Entries()
	dtos := make([]MinimumWageDTO, len(entries))
	for i, e := range entries {
		dtos[i] = MinimumWageDTO{
			EffectiveAt: e.EffectiveAt.String(),
			Value:       e.Value.Round2().Float64(),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// UploadRateConfig stores a new year's rate tables and activates them
// when they are the newest.
func (h *Handler) UploadRateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg factory.RateConfigJSON
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rate config", err)
		return
	}
	if cfg.Year <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid rate config", fmt.Errorf("year is required"))
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode config", err)
		return
	}
	if _, err := factory.ParseRateConfig(string(raw)); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rate config", err)
		return
	}
	if err := h.Store.SaveRateConfig(r.Context(), cfg.Year, string(raw)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save config", err)
		return
	}
	if err := h.LoadRates(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload rates", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"active_year": h.rateYear})
}

// =============================================================================
// LEDGER HANDLERS
// =============================================================================

// LedgerTemplate returns the FGTS month sequence for a hire/termination
// pair. With fill=minimum-wage every month is prefilled with 8% of the
// wage effective that month.
func (h *Handler) LedgerTemplate(w http.ResponseWriter, r *http.Request) {
	hire, err := generic.ParseTimePoint(r.URL.Query().Get("hire"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hire date", err)
		return
	}
	termination, err := generic.ParseTimePoint(r.URL.Query().Get("termination"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid termination date", err)
		return
	}
	if termination.Before(hire) {
		writeError(w, http.StatusBadRequest, "Invalid range", fmt.Errorf("termination precedes hire"))
		return
	}

	ledger := settlement.NewTemplate(hire, termination)
	if r.URL.Query().Get("fill") == "minimum-wage" {
		ledger.FillFromMinimumWage(h.wages)
	}

	months := make([]MonthlyDepositDTO, len(ledger.Deposits))
	for i, d := range ledger.Deposits {
		months[i] = MonthlyDepositDTO{
			Month:  d.Month.Time.Format("2006-01"),
			Amount: d.Amount.Round2().Float64(),
		}
	}
	writeJSON(w, http.StatusOK, LedgerTemplateDTO{Months: months})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
