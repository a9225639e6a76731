package sizing

import (
	"fmt"
	"math"
)

// Result holds the sized battery system along with the factors that produced
// it, so downstream consumers can show their work.
type Result struct {
	BatteryKW  int     `json:"battery_kw"`
	BatteryKWh int     `json:"battery_kwh"`
	UsableKWh  float64 `json:"usable_kwh"`

	PeakDemandKW  float64 `json:"peak_demand_kw"`
	DurationHours float64 `json:"duration_hours"`
	Application   string  `json:"application"`

	PowerRatio         float64 `json:"power_ratio"`
	DepthOfDischarge   float64 `json:"depth_of_discharge"`
	StaticEfficiency   float64 `json:"static_efficiency"`
	CycleEfficiency    float64 `json:"cycle_efficiency"`
	CombinedEfficiency float64 `json:"combined_efficiency"`

	Formula string `json:"formula"`
}

// Size computes battery power and nameplate capacity for the given peak
// demand, discharge duration, and application.
//
// The calculation:
//  1. batteryKW = round(peakDemandKW × ratio), ratio from the application table
//  2. usableKWh = batteryKW × durationHours — energy delivered to the load
//  3. batteryKWh = round(usableKWh / (DoD × static × cycle)) — nameplate
//     capacity purchased to deliver that usable energy after losses
//
// Inputs are assumed positive by the caller; zero inputs produce a degenerate
// zero result rather than an error. Unknown applications fall back to
// DefaultPowerRatio.
func Size(peakDemandKW, durationHours float64, application string) Result {
	ratio := GetPowerRatio(application)
	combined := CombinedEfficiency()

	batteryKW := int(math.Round(peakDemandKW * ratio))
	usableKWh := float64(batteryKW) * durationHours
	batteryKWh := int(math.Round(usableKWh / combined))

	return Result{
		BatteryKW:          batteryKW,
		BatteryKWh:         batteryKWh,
		UsableKWh:          usableKWh,
		PeakDemandKW:       peakDemandKW,
		DurationHours:      durationHours,
		Application:        NormalizeApplication(application),
		PowerRatio:         ratio,
		DepthOfDischarge:   DepthOfDischarge,
		StaticEfficiency:   StaticEfficiency,
		CycleEfficiency:    CycleEfficiency,
		CombinedEfficiency: combined,
		Formula: fmt.Sprintf(
			"%d kW = round(%.0f kW peak × %.2f); %d kWh = round(%d kW × %.1f h / %.4f)",
			batteryKW, peakDemandKW, ratio, batteryKWh, batteryKW, durationHours, combined,
		),
	}
}

// Resize recomputes a sizing for a new discharge duration. Power is re-derived
// from the original peak-demand/application pair and does not change; only
// capacity scales with duration. Duration is the single user-tunable dial once
// an application and peak demand are fixed.
func Resize(prev Result, durationHours float64) Result {
	return Size(prev.PeakDemandKW, durationHours, prev.Application)
}
