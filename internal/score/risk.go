package score

import "math"

// scoreRisk computes the Risk & Resilience category (0-20): grid reliability
// from SAIDI bands (0-8), climate exposure (0-7), and business criticality
// (0-5). Higher scores mean higher need for storage, not higher project risk.
func scoreRisk(site SiteContext, state, industry string) CategoryScore {
	grid := GetStateGrid(state)

	saidi := grid.SAIDIMinutes
	if site.Overrides != nil && site.Overrides.SAIDIMinutes != nil {
		saidi = *site.Overrides.SAIDIMinutes
	}
	gridPts := saidiPoints(saidi)

	climatePts := math.Min(grid.HeatIndex+grid.StormIndex+grid.WildfireIndex, 7)
	criticalityPts := GetCriticalityScore(industry)

	cat := CategoryScore{
		Max: 20,
		Breakdown: map[string]float64{
			"grid_reliability":     gridPts,
			"climate_exposure":     climatePts,
			"business_criticality": criticalityPts,
		},
		factors: []KeyDriver{
			{Factor: "grid_reliability", Score: gridPts},
			{Factor: "climate_exposure", Score: climatePts},
			{Factor: "business_criticality", Score: criticalityPts},
		},
	}
	cat.Score = gridPts + climatePts + criticalityPts

	if gridPts >= 6 {
		cat.Insights = append(cat.Insights, "Outage duration in this area runs well above the national norm; backup capability carries real value.")
	}
	if grid.WildfireIndex >= 2 {
		cat.Insights = append(cat.Insights, "Wildfire-driven public safety power shutoffs make on-site storage a resilience hedge.")
	}
	if grid.StormIndex >= 3 {
		cat.Insights = append(cat.Insights, "Severe-storm exposure increases the likelihood of multi-hour outages.")
	}
	if criticalityPts >= 4 {
		cat.Insights = append(cat.Insights, "Outages are exceptionally costly for this type of operation.")
	}
	if site.HasGenerator {
		cat.Insights = append(cat.Insights, "An existing generator pairs with storage for seamless ride-through and longer backup.")
	}

	return cat
}

// saidiPoints bands annual outage minutes into 0-8. Worse reliability scores
// higher because it increases the value of on-site storage.
func saidiPoints(saidiMinutes float64) float64 {
	switch {
	case saidiMinutes >= 400:
		return 8
	case saidiMinutes >= 250:
		return 6
	case saidiMinutes >= 150:
		return 4
	case saidiMinutes >= 90:
		return 2
	default:
		return 1
	}
}
