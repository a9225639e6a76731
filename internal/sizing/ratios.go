// Package sizing computes battery energy storage system (BESS) power and
// capacity from a facility's peak demand, the desired discharge duration,
// and the primary application the system is being deployed for.
package sizing

import "strings"

// PowerRatios maps a BESS application to the fraction of facility peak demand
// the battery inverter should be sized for.
//
// A peak-shaving system only needs to clip the top of the load curve, so it
// runs well under peak. A grid-independence system must carry the entire
// facility, so it is sized at the full peak.
var PowerRatios = map[string]float64{
	"peak-shaving":         0.4,
	"load-shifting":        0.6,
	"tou-arbitrage":        0.5,
	"backup":               0.7,
	"grid-independence":    1.0,
	"frequency-regulation": 0.3,
	"demand-response":      0.45,
	"microgrid":            0.9,
}

// DefaultPowerRatio is used when an application is not listed in PowerRatios.
const DefaultPowerRatio = 0.5

const (
	// DepthOfDischarge is the usable fraction of nameplate capacity per cycle.
	// Discharging past this accelerates degradation on LFP chemistry.
	DepthOfDischarge = 0.90

	// StaticEfficiency covers inverter and balance-of-system conversion losses.
	StaticEfficiency = 0.90

	// CycleEfficiency is the battery's round-trip charge/discharge efficiency.
	CycleEfficiency = 0.95
)

// CombinedEfficiency returns the product of the three loss factors applied
// when converting usable energy to nameplate capacity (~0.7695 with defaults).
func CombinedEfficiency() float64 {
	return DepthOfDischarge * StaticEfficiency * CycleEfficiency
}

// NormalizeApplication canonicalizes an application key: lower-case with
// underscores and spaces collapsed to hyphens, so "Peak_Shaving" and
// "peak shaving" both resolve to "peak-shaving".
func NormalizeApplication(application string) string {
	key := strings.ToLower(strings.TrimSpace(application))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	for strings.Contains(key, "--") {
		key = strings.ReplaceAll(key, "--", "-")
	}
	return key
}

// GetPowerRatio returns the power ratio for the given application.
// Lookup order: normalized key, raw key, then DefaultPowerRatio. The lookup
// chain is part of the sizing contract; reordering it changes which ratio an
// edge-case spelling resolves to.
func GetPowerRatio(application string) float64 {
	if ratio, ok := PowerRatios[NormalizeApplication(application)]; ok {
		return ratio
	}
	if ratio, ok := PowerRatios[application]; ok {
		return ratio
	}
	return DefaultPowerRatio
}
