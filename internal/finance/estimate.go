package finance

import "math"

// Provenance tags which path produced a Result.
type Provenance string

const (
	// ProvenanceEstimated marks the local closed-form estimate.
	ProvenanceEstimated Provenance = "estimated"
	// ProvenanceLive marks figures from the external quote service.
	ProvenanceLive Provenance = "live"
)

// Equipment is the hardware configuration being priced. All sizes are >= 0.
type Equipment struct {
	BatteryKW   float64 `json:"battery_kw" validate:"gte=0"`
	BatteryKWh  float64 `json:"battery_kwh" validate:"gte=0"`
	SolarKW     float64 `json:"solar_kw" validate:"gte=0"`
	WindKW      float64 `json:"wind_kw" validate:"gte=0"`
	GeneratorKW float64 `json:"generator_kw" validate:"gte=0"`
}

// RateContext carries the utility economics the savings model needs.
type RateContext struct {
	State             string  `json:"state"`
	ElectricityRate   float64 `json:"electricity_rate" validate:"gte=0"`
	DemandChargePerKW float64 `json:"demand_charge_per_kw" validate:"gte=0"`
}

// Result is the complete financial outcome for one equipment configuration.
type Result struct {
	BatteryCost      float64 `json:"battery_cost"`
	SolarCost        float64 `json:"solar_cost"`
	WindCost         float64 `json:"wind_cost"`
	GeneratorCost    float64 `json:"generator_cost"`
	InstallationCost float64 `json:"installation_cost"`
	GrossCost        float64 `json:"gross_cost"`
	Incentives       float64 `json:"incentives"`
	NetInvestment    float64 `json:"net_investment"`

	PeakShavingSavings  float64 `json:"peak_shaving_savings"`
	SolarSavings        float64 `json:"solar_savings"`
	TOUArbitrageSavings float64 `json:"tou_arbitrage_savings"`
	AnnualSavings       float64 `json:"annual_savings"`

	PaybackYears float64 `json:"payback_years"`
	ROI25Year    float64 `json:"roi_25_year"`
	NPV25Year    float64 `json:"npv_25_year"`

	Provenance Provenance        `json:"provenance"`
	Sources    map[string]string `json:"sources"`
}

// Estimate computes the closed-form financial outcome with default
// assumptions. It is pure and never fails: degenerate inputs produce
// degenerate but structurally complete output.
func Estimate(eq Equipment, rates RateContext) Result {
	return EstimateWith(DefaultAssumptions(), eq, rates)
}

// EstimateWith computes the closed-form financial outcome under a specific
// assumption set.
//
// The model:
//  1. Equipment costs from per-unit assumptions.
//  2. Installation at a fixed fraction of equipment cost.
//  3. Flat ITC on gross; net investment is gross minus incentives.
//  4. Savings from demand-charge peak shaving, solar production, and daily
//     TOU arbitrage.
//  5. Payback (capped), simple ROI, and discounted NPV over the horizon.
func EstimateWith(a Assumptions, eq Equipment, rates RateContext) Result {
	batteryCost := eq.BatteryKWh * a.BatteryCostPerKWh
	solarCost := eq.SolarKW * 1000 * a.SolarCostPerWatt
	windCost := eq.WindKW * 1000 * a.WindCostPerWatt
	generatorCost := eq.GeneratorKW * a.GeneratorCostPerKW

	equipmentCost := batteryCost + solarCost + windCost + generatorCost
	installationCost := a.InstallationFraction * equipmentCost
	grossCost := equipmentCost + installationCost

	incentives := a.ITCRate * grossCost
	netInvestment := grossCost - incentives

	peakShaving := eq.BatteryKW * rates.DemandChargePerKW * 12 * a.PeakShaveEffectiveness
	solarSavings := eq.SolarKW * a.SolarYieldKWhPerKW * rates.ElectricityRate
	touArbitrage := eq.BatteryKWh * a.TOUSpreadPerKWh * 365
	annualSavings := peakShaving + solarSavings + touArbitrage

	return Result{
		BatteryCost:         batteryCost,
		SolarCost:           solarCost,
		WindCost:            windCost,
		GeneratorCost:       generatorCost,
		InstallationCost:    installationCost,
		GrossCost:           grossCost,
		Incentives:          incentives,
		NetInvestment:       netInvestment,
		PeakShavingSavings:  peakShaving,
		SolarSavings:        solarSavings,
		TOUArbitrageSavings: touArbitrage,
		AnnualSavings:       annualSavings,
		PaybackYears:        paybackYears(a, netInvestment, annualSavings),
		ROI25Year:           roiPercent(a, netInvestment, annualSavings),
		NPV25Year:           npv(a, netInvestment, annualSavings),
		Provenance:          ProvenanceEstimated,
		Sources:             a.Sources(),
	}
}

// paybackYears divides net investment by annual savings, capped at the
// model's maximum. Zero savings is treated as never paying back rather than
// producing Inf.
func paybackYears(a Assumptions, netInvestment, annualSavings float64) float64 {
	if annualSavings <= 0 {
		return a.MaxPayback
	}
	return math.Min(netInvestment/annualSavings, a.MaxPayback)
}

// roiPercent is the simple (undiscounted) return over the analysis horizon.
// A net investment of zero or less is reported as 0%: the ratio is undefined
// and "free money" percentages would only mislead.
func roiPercent(a Assumptions, netInvestment, annualSavings float64) float64 {
	if netInvestment <= 0 {
		return 0
	}
	horizon := float64(a.AnalysisYears)
	return (annualSavings*horizon - netInvestment) / netInvestment * 100
}

// npv is the discounted cash flow over the analysis horizon with flat nominal
// annual savings and no escalation.
func npv(a Assumptions, netInvestment, annualSavings float64) float64 {
	value := -netInvestment
	for year := 1; year <= a.AnalysisYears; year++ {
		value += annualSavings / math.Pow(1+a.DiscountRate, float64(year))
	}
	return value
}
