package score

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// dataSources names the assumption sets behind the lookup tables. Reported in
// every result for auditability.
var dataSources = []string{
	"EIA state electricity profiles (2023)",
	"IEEE 1366 SAIDI reliability benchmarks",
	"NREL NSRDB solar irradiance averages",
	"DSIRE state incentive database (2024)",
	"internal industry load-profile library",
}

// maxKeyDrivers limits the ranked driver list.
const maxKeyDrivers = 3

// maxSuggestedGoals limits the goal recommendations.
const maxSuggestedGoals = 3

// Score rates a site's suitability for battery storage. It is a pure, total
// function: every table lookup has a DEFAULT fallback, so no state/industry
// combination is unhandled and no error is ever returned.
func Score(site SiteContext) Result {
	state := NormalizeState(site.State)
	industry := NormalizeIndustry(site.Industry)

	economic := scoreEconomic(site, state)
	siteFit := scoreSiteFit(site, state, industry)
	risk := scoreRisk(site, state, industry)
	feasibility := scoreFeasibility(site, state, industry)

	total := int(math.Round(economic.Score + siteFit.Score + risk.Score + feasibility.Score))

	return Result{
		TotalScore:     total,
		Label:          labelFor(total),
		Economic:       economic,
		SiteFit:        siteFit,
		Risk:           risk,
		Feasibility:    feasibility,
		KeyDrivers:     rankKeyDrivers(economic, siteFit, risk, feasibility),
		SuggestedGoals: suggestGoals(site, economic, risk),
		Confidence:     confidenceFor(site),
		CalculatedAt:   time.Now().UTC(),
		DataSources:    dataSources,
	}
}

// labelFor maps a total score to its qualitative grade.
func labelFor(total int) Label {
	switch {
	case total >= 85:
		return LabelExceptional
	case total >= 70:
		return LabelStrong
	case total >= 55:
		return LabelGood
	case total >= 40:
		return LabelModerate
	case total >= 25:
		return LabelLimited
	default:
		return LabelNotRecommended
	}
}

// rankKeyDrivers flattens every category's components into one list, in the
// categories' fixed build order, and takes the top 3 by sub-score. The sort
// is stable: ties keep original list order, which is the only tie-break rule.
func rankKeyDrivers(categories ...CategoryScore) []KeyDriver {
	var drivers []KeyDriver
	for _, cat := range categories {
		drivers = append(drivers, cat.factors...)
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Score > drivers[j].Score
	})

	if len(drivers) > maxKeyDrivers {
		drivers = drivers[:maxKeyDrivers]
	}
	return drivers
}

// suggestGoals produces up to three ranked project objectives. The checks run
// in fixed order; sustainability is always appended as filler so the list is
// never empty.
func suggestGoals(site SiteContext, economic, risk CategoryScore) []SuggestedGoal {
	var goals []SuggestedGoal

	ratePts := economic.Breakdown["rate_level"]
	demandPts := economic.Breakdown["demand_charge_severity"]
	gridPts := risk.Breakdown["grid_reliability"]
	criticalityPts := risk.Breakdown["business_criticality"]

	if ratePts >= 8 || demandPts >= 6 {
		goals = append(goals, SuggestedGoal{
			Goal:           GoalCostSavings,
			Priority:       1,
			Reason:         "Elevated rates and demand charges make bill reduction the primary opportunity.",
			EstimatedValue: "20-40% utility bill reduction",
		})
	}
	if demandPts >= 6 {
		goals = append(goals, SuggestedGoal{
			Goal:           GoalPeakShaving,
			Priority:       2,
			Reason:         fmt.Sprintf("Demand charges of $%.0f/kW reward clipping the monthly peak.", site.DemandChargePerKW),
			EstimatedValue: "up to 70% demand-charge offset",
		})
	}
	if gridPts >= 6 || criticalityPts >= 4 {
		goals = append(goals, SuggestedGoal{
			Goal:     GoalResilience,
			Priority: 2,
			Reason:   "Grid reliability and outage cost both point to backup power as a core objective.",
		})
	}
	goals = append(goals, SuggestedGoal{
		Goal:     GoalSustainability,
		Priority: 3,
		Reason:   "Storage enables higher on-site renewable utilization and a lower carbon footprint.",
	})

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Priority < goals[j].Priority
	})

	if len(goals) > maxSuggestedGoals {
		goals = goals[:maxSuggestedGoals]
	}
	return goals
}

// confidenceFor counts how many optional inputs were supplied: zip, rate,
// demand charge, estimated peak, and utility name.
func confidenceFor(site SiteContext) Confidence {
	supplied := 0
	if site.Zip != "" {
		supplied++
	}
	if site.ElectricityRate > 0 {
		supplied++
	}
	if site.DemandChargePerKW > 0 {
		supplied++
	}
	if site.EstimatedPeakKW > 0 {
		supplied++
	}
	if site.UtilityName != "" {
		supplied++
	}

	switch {
	case supplied >= 4:
		return ConfidenceHigh
	case supplied >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
