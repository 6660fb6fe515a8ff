/*
Package factory provides JSON to Go rate-table conversion.

PURPOSE:
  Converts JSON rate configurations into settlement.TaxTables. This
  enables rate updates without code changes - when a new year's INSS and
  IRRF tables are published, operators load a JSON config instead of
  waiting for a release.

WHY JSON?
  - Non-developers can update tables
  - Database storage of year-versioned configs (see store/sqlite)
  - Version control for rate definitions

JSON SCHEMA:
  {
    "year": 2026,
    "social_security": {
      "ceiling": 8157.41,
      "bands": [
        {"up_to": 1621.00, "rate": 0.075},
        {"up_to": 2793.88, "rate": 0.09},
        {"up_to": 4190.83, "rate": 0.12}
      ],
      "top_rate": 0.14
    },
    "income_tax": {
      "bands": [
        {"up_to": 2259.20, "rate": 0, "deduct": 0},
        {"up_to": 2826.65, "rate": 0.075, "deduct": 169.44},
        {"up_to": 3751.05, "rate": 0.15, "deduct": 381.44},
        {"up_to": 4664.68, "rate": 0.225, "deduct": 662.77}
      ],
      "top_rate": 0.275,
      "top_deduct": 896.00,
      "relief": {
        "full_ceiling": 5000.00,
        "partial_ceiling": 7350.00,
        "intercept": 978.62,
        "slope": 0.133145
      }
    }
  }

USAGE:
  tables, err := factory.ParseRateConfig(jsonStr)
  calc := &settlement.Calculator{Tables: *tables}

SEE ALSO:
  - settlement/rates.go: The compiled-in 2026 defaults
  - store/sqlite: Persists configs by year
*/
package factory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RateConfigJSON is the JSON representation of one year's rate tables.
type RateConfigJSON struct {
	Year           int                `json:"year"`
	SocialSecurity SocialSecurityJSON `json:"social_security"`
	IncomeTax      IncomeTaxJSON      `json:"income_tax"`
}

type SocialSecurityJSON struct {
	Ceiling float64            `json:"ceiling"`
	Bands   []MarginalBandJSON `json:"bands"`
	TopRate float64            `json:"top_rate"`
}

type MarginalBandJSON struct {
	UpTo float64 `json:"up_to"`
	Rate float64 `json:"rate"`
}

type IncomeTaxJSON struct {
	Bands     []DeductionBandJSON `json:"bands"`
	TopRate   float64             `json:"top_rate"`
	TopDeduct float64             `json:"top_deduct"`
	Relief    ReliefJSON          `json:"relief"`
}

type DeductionBandJSON struct {
	UpTo   float64 `json:"up_to"`
	Rate   float64 `json:"rate"`
	Deduct float64 `json:"deduct"`
}

type ReliefJSON struct {
	FullCeiling    float64 `json:"full_ceiling"`
	PartialCeiling float64 `json:"partial_ceiling"`
	Intercept      float64 `json:"intercept"`
	Slope          float64 `json:"slope"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseRateConfig converts a JSON rate configuration into TaxTables.
func ParseRateConfig(jsonStr string) (*settlement.TaxTables, error) {
	var cfg RateConfigJSON
	if err := json.Unmarshal([]byte(jsonStr), &cfg); err != nil {
		return nil, fmt.Errorf("invalid rate config JSON: %w", err)
	}
	return buildTables(cfg)
}

func buildTables(cfg RateConfigJSON) (*settlement.TaxTables, error) {
	if len(cfg.SocialSecurity.Bands) == 0 {
		return nil, fmt.Errorf("social security table needs at least one band")
	}
	if len(cfg.IncomeTax.Bands) == 0 {
		return nil, fmt.Errorf("income tax table needs at least one band")
	}

	inss := generic.MarginalTable{
		Ceiling: decimal.NewFromFloat(cfg.SocialSecurity.Ceiling),
		TopRate: decimal.NewFromFloat(cfg.SocialSecurity.TopRate),
	}
	for _, b := range cfg.SocialSecurity.Bands {
		inss.Bands = append(inss.Bands, generic.MarginalBand{
			UpTo: decimal.NewFromFloat(b.UpTo),
			Rate: decimal.NewFromFloat(b.Rate),
		})
	}
	sort.Slice(inss.Bands, func(i, j int) bool {
		return inss.Bands[i].UpTo.LessThan(inss.Bands[j].UpTo)
	})

	irrf := generic.DeductionTable{
		TopRate:   decimal.NewFromFloat(cfg.IncomeTax.TopRate),
		TopDeduct: decimal.NewFromFloat(cfg.IncomeTax.TopDeduct),
	}
	for _, b := range cfg.IncomeTax.Bands {
		irrf.Bands = append(irrf.Bands, generic.DeductionBand{
			UpTo:   decimal.NewFromFloat(b.UpTo),
			Rate:   decimal.NewFromFloat(b.Rate),
			Deduct: decimal.NewFromFloat(b.Deduct),
		})
	}
	sort.Slice(irrf.Bands, func(i, j int) bool {
		return irrf.Bands[i].UpTo.LessThan(irrf.Bands[j].UpTo)
	})

	return &settlement.TaxTables{
		INSS: inss,
		IRRF: irrf,
		Relief: settlement.ReliefRule{
			FullCeiling:    decimal.NewFromFloat(cfg.IncomeTax.Relief.FullCeiling),
			PartialCeiling: decimal.NewFromFloat(cfg.IncomeTax.Relief.PartialCeiling),
			Intercept:      decimal.NewFromFloat(cfg.IncomeTax.Relief.Intercept),
			Slope:          decimal.NewFromFloat(cfg.IncomeTax.Relief.Slope),
		},
	}, nil
}

// DefaultRateConfigJSON returns the 2026 tables as a JSON config, used to
// seed the rate store.
func DefaultRateConfigJSON() string {
	cfg := RateConfigJSON{
		Year: 2026,
		SocialSecurity: SocialSecurityJSON{
			Ceiling: 8157.41,
			Bands: []MarginalBandJSON{
				{UpTo: 1621.00, Rate: 0.075},
				{UpTo: 2793.88, Rate: 0.09},
				{UpTo: 4190.83, Rate: 0.12},
			},
			TopRate: 0.14,
		},
		IncomeTax: IncomeTaxJSON{
			Bands: []DeductionBandJSON{
				{UpTo: 2259.20, Rate: 0, Deduct: 0},
				{UpTo: 2826.65, Rate: 0.075, Deduct: 169.44},
				{UpTo: 3751.05, Rate: 0.15, Deduct: 381.44},
				{UpTo: 4664.68, Rate: 0.225, Deduct: 662.77},
			},
			TopRate:   0.275,
			TopDeduct: 896.00,
			Relief: ReliefJSON{
				FullCeiling:    5000.00,
				PartialCeiling: 7350.00,
				Intercept:      978.62,
				Slope:          0.133145,
			},
		},
	}
	out, _ := json.Marshal(cfg)
	return string(out)
}
