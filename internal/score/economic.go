package score

// scoreEconomic computes the Economic Opportunity category (0-40):
// rate level (0-12), rate trajectory (0-8), demand-charge severity (0-10),
// time-of-use spread (0-5), and state incentives (0-5).
func scoreEconomic(site SiteContext, state string) CategoryScore {
	ratePts := rateLevelPoints(site.ElectricityRate)

	trajectory := GetRateTrajectory(state)
	if site.Overrides != nil && site.Overrides.RateTrajectory != "" {
		trajectory = Trajectory(site.Overrides.RateTrajectory)
	}
	trajPts := trajectoryPoints(trajectory)

	demandPts := demandChargePoints(site.DemandChargePerKW)
	touPts := touSpreadPoints(site)
	incentivePts := GetIncentiveScore(state)

	cat := CategoryScore{
		Max: 40,
		Breakdown: map[string]float64{
			"rate_level":             ratePts,
			"rate_trajectory":        trajPts,
			"demand_charge_severity": demandPts,
			"tou_spread":             touPts,
			"state_incentives":       incentivePts,
		},
		factors: []KeyDriver{
			{Factor: "rate_level", Score: ratePts},
			{Factor: "rate_trajectory", Score: trajPts},
			{Factor: "demand_charge_severity", Score: demandPts},
			{Factor: "tou_spread", Score: touPts},
			{Factor: "state_incentives", Score: incentivePts},
		},
	}
	cat.Score = ratePts + trajPts + demandPts + touPts + incentivePts

	if ratePts >= 8 {
		cat.Insights = append(cat.Insights, "Electricity rates are well above the national average, creating strong savings potential.")
	}
	if trajectory == TrajectoryRisingFast {
		cat.Insights = append(cat.Insights, "Rates in this state have been rising fast; locking in storage hedges future increases.")
	}
	if demandPts >= 6 {
		cat.Insights = append(cat.Insights, "High demand charges make peak shaving a primary value driver.")
	}
	if touPts >= 4 {
		cat.Insights = append(cat.Insights, "The peak/off-peak rate spread supports profitable time-of-use arbitrage.")
	}
	if incentivePts >= 4 {
		cat.Insights = append(cat.Insights, "State incentive programs can materially reduce net project cost.")
	}

	return cat
}

// rateLevelPoints bands the blended electricity rate ($/kWh) into 0-12.
func rateLevelPoints(rate float64) float64 {
	switch {
	case rate >= 0.25:
		return 12
	case rate >= 0.20:
		return 10
	case rate >= 0.16:
		return 8
	case rate >= 0.12:
		return 5
	case rate >= 0.08:
		return 3
	default:
		return 0
	}
}

// demandChargePoints bands the demand charge ($/kW) into 0-10.
func demandChargePoints(charge float64) float64 {
	switch {
	case charge >= 25:
		return 10
	case charge >= 15:
		return 8
	case charge >= 10:
		return 6
	case charge >= 5:
		return 3
	default:
		return 0
	}
}

// touSpreadPoints scores the time-of-use arbitrage opportunity 0-5. When both
// rates are known the peak/off-peak ratio is banded; a TOU tariff with an
// unknown spread gets flat partial credit.
func touSpreadPoints(site SiteContext) float64 {
	if site.PeakRate > 0 && site.OffPeakRate > 0 {
		ratio := site.PeakRate / site.OffPeakRate
		switch {
		case ratio >= 3.0:
			return 5
		case ratio >= 2.0:
			return 4
		case ratio >= 1.5:
			return 2
		default:
			return 1
		}
	}
	if site.HasTOU {
		return 2
	}
	return 0
}
