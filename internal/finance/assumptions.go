// Package finance turns an equipment configuration into project cost,
// incentives, savings, payback, ROI, and NPV. It offers a closed-form local
// estimate and a live path against the external quote service that degrades
// to the estimate on any failure.
package finance

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Assumptions holds every tunable constant in the financial model. Defaults
// match 2024 commercial market medians; a deployment may override them from a
// YAML file without recompiling.
type Assumptions struct {
	BatteryCostPerKWh  float64 `yaml:"battery_cost_per_kwh"`
	SolarCostPerWatt   float64 `yaml:"solar_cost_per_watt"`
	WindCostPerWatt    float64 `yaml:"wind_cost_per_watt"`
	GeneratorCostPerKW float64 `yaml:"generator_cost_per_kw"`

	InstallationFraction float64 `yaml:"installation_fraction"`
	ITCRate              float64 `yaml:"itc_rate"`

	PeakShaveEffectiveness float64 `yaml:"peak_shave_effectiveness"`
	SolarYieldKWhPerKW     float64 `yaml:"solar_yield_kwh_per_kw"`
	TOUSpreadPerKWh        float64 `yaml:"tou_spread_per_kwh"`

	DiscountRate  float64 `yaml:"discount_rate"`
	AnalysisYears int     `yaml:"analysis_years"`
	MaxPayback    float64 `yaml:"max_payback_years"`
}

// DefaultAssumptions returns the baseline assumption set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		BatteryCostPerKWh:      150,
		SolarCostPerWatt:       1.20,
		WindCostPerWatt:        1.50,
		GeneratorCostPerKW:     700,
		InstallationFraction:   0.25,
		ITCRate:                0.30,
		PeakShaveEffectiveness: 0.70,
		SolarYieldKWhPerKW:     1500,
		TOUSpreadPerKWh:        0.05,
		DiscountRate:           0.08,
		AnalysisYears:          25,
		MaxPayback:             25,
	}
}

// LoadAssumptions reads an assumption override file. Fields left zero in the
// file keep their defaults, so a partial override is valid.
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, eris.Wrap(err, "finance: read assumptions file")
	}

	var override Assumptions
	if err := yaml.Unmarshal(data, &override); err != nil {
		return a, eris.Wrap(err, "finance: parse assumptions file")
	}

	merge := func(dst *float64, src float64) {
		if src > 0 {
			*dst = src
		}
	}
	merge(&a.BatteryCostPerKWh, override.BatteryCostPerKWh)
	merge(&a.SolarCostPerWatt, override.SolarCostPerWatt)
	merge(&a.WindCostPerWatt, override.WindCostPerWatt)
	merge(&a.GeneratorCostPerKW, override.GeneratorCostPerKW)
	merge(&a.InstallationFraction, override.InstallationFraction)
	merge(&a.ITCRate, override.ITCRate)
	merge(&a.PeakShaveEffectiveness, override.PeakShaveEffectiveness)
	merge(&a.SolarYieldKWhPerKW, override.SolarYieldKWhPerKW)
	merge(&a.TOUSpreadPerKWh, override.TOUSpreadPerKWh)
	merge(&a.DiscountRate, override.DiscountRate)
	merge(&a.MaxPayback, override.MaxPayback)
	if override.AnalysisYears > 0 {
		a.AnalysisYears = override.AnalysisYears
	}

	return a, nil
}

// Sources names the assumption behind each major number. Exposing this map in
// every result is a hard requirement of the model, not cosmetics.
func (a Assumptions) Sources() map[string]string {
	return map[string]string{
		"battery_cost":          fmt.Sprintf("assumption: $%.0f/kWh installed battery hardware", a.BatteryCostPerKWh),
		"solar_cost":            fmt.Sprintf("assumption: $%.2f/W installed solar PV", a.SolarCostPerWatt),
		"wind_cost":             fmt.Sprintf("assumption: $%.2f/W installed distributed wind", a.WindCostPerWatt),
		"generator_cost":        fmt.Sprintf("assumption: $%.0f/kW installed standby generator", a.GeneratorCostPerKW),
		"installation_cost":     fmt.Sprintf("assumption: %.0f%% of equipment cost", a.InstallationFraction*100),
		"incentives":            fmt.Sprintf("assumption: %.0f%% federal investment tax credit on gross cost", a.ITCRate*100),
		"peak_shaving_savings":  fmt.Sprintf("assumption: %.0f%% demand-charge offset effectiveness", a.PeakShaveEffectiveness*100),
		"solar_savings":         fmt.Sprintf("assumption: %.0f kWh/kW/yr production at the blended retail rate", a.SolarYieldKWhPerKW),
		"tou_arbitrage_savings": fmt.Sprintf("assumption: $%.2f/kWh average daily arbitrage spread", a.TOUSpreadPerKWh),
		"npv":                   fmt.Sprintf("assumption: %.0f%% discount rate over %d years, flat nominal savings", a.DiscountRate*100, a.AnalysisYears),
		"payback":               fmt.Sprintf("assumption: capped at %.0f years", a.MaxPayback),
	}
}
