// Package scenario composes the sizing and finance calculators into three
// named equipment scenarios and ranks and diffs the results.
package scenario

// Type identifies one of the three fixed scenario profiles.
type Type string

const (
	// TypeEssentials is the battery-only entry configuration.
	TypeEssentials Type = "essentials"
	// TypeBalanced adds solar and a standby generator. It is always the
	// recommended scenario.
	TypeBalanced Type = "balanced"
	// TypeMaxSavings is the full grid-independence build-out.
	TypeMaxSavings Type = "max-savings"
)

// generatorRuntimeHours is the standby runtime credited to scenarios that
// include a generator, on top of battery duration. Assumes an on-site fuel
// supply sized for two days.
const generatorRuntimeHours = 48.0

// profile is one row of the fixed scenario table. Ratios multiply peak
// demand; none of this is user-configurable.
type profile struct {
	Type          Type
	DisplayName   string
	Tagline       string
	Icon          string
	Application   string
	DurationHours float64

	SolarRatio     float64
	WindRatio      float64
	GeneratorRatio float64

	IsRecommended bool
	Highlights    []string
	Reasoning     string
}

// profiles is the fixed generation order: essentials, balanced, max-savings.
var profiles = [3]profile{
	{
		Type:          TypeEssentials,
		DisplayName:   "Essentials",
		Tagline:       "Battery-only demand management",
		Icon:          "battery",
		Application:   "peak-shaving",
		DurationHours: 4,
		Highlights: []string{
			"Lowest upfront investment",
			"Cuts demand charges from day one",
			"Smallest footprint, fastest install",
		},
		Reasoning: "A standalone battery sized for peak shaving captures demand-charge savings with minimal capital and site disruption.",
	},
	{
		Type:           TypeBalanced,
		DisplayName:    "Balanced",
		Tagline:        "Battery, solar, and standby generation",
		Icon:           "scale",
		Application:    "backup",
		DurationHours:  4,
		SolarRatio:     0.50,
		GeneratorRatio: 0.27,
		IsRecommended:  true,
		Highlights: []string{
			"Best savings-to-investment ratio",
			"On-site solar offsets daytime usage",
			"Generator extends outage coverage for days",
		},
		Reasoning: "Pairing the battery with right-sized solar and a standby generator balances payback, daily savings, and outage resilience.",
	},
	{
		Type:           TypeMaxSavings,
		DisplayName:    "Max Savings",
		Tagline:        "Full grid-independence build-out",
		Icon:           "bolt",
		Application:    "grid-independence",
		DurationHours:  6,
		SolarRatio:     0.80,
		WindRatio:      0.10,
		GeneratorRatio: 0.36,
		Highlights: []string{
			"Largest long-run savings and NPV",
			"Near-complete independence from utility pricing",
			"Six-hour battery plus solar, wind, and generator",
		},
		Reasoning: "Maximizing on-site generation and storage trades a larger investment for the deepest long-term savings and near-full grid independence.",
	},
}
