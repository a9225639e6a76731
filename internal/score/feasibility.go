package score

// scoreFeasibility computes the Feasibility category (0-10): permitting
// complexity (1-4), interconnection-queue estimate (1-3), and construction
// access (2-3).
func scoreFeasibility(site SiteContext, state, industry string) CategoryScore {
	complexity := GetPermitComplexity(state)
	if site.Overrides != nil && site.Overrides.PermitComplexity != "" {
		complexity = site.Overrides.PermitComplexity
	}
	permitPts := permitPoints(complexity)

	interconnectPts := GetInterconnectionScore(state)
	accessPts := GetConstructionAccessScore(industry)

	cat := CategoryScore{
		Max: 10,
		Breakdown: map[string]float64{
			"permitting":          permitPts,
			"interconnection":     interconnectPts,
			"construction_access": accessPts,
		},
		factors: []KeyDriver{
			{Factor: "permitting", Score: permitPts},
			{Factor: "interconnection", Score: interconnectPts},
			{Factor: "construction_access", Score: accessPts},
		},
	}
	cat.Score = permitPts + interconnectPts + accessPts

	switch complexity {
	case "easy":
		cat.Insights = append(cat.Insights, "Permitting in this state is straightforward; expect a faster install timeline.")
	case "difficult":
		cat.Insights = append(cat.Insights, "Permitting here is demanding; budget extra lead time for approvals.")
	}
	if interconnectPts <= 1 {
		cat.Insights = append(cat.Insights, "Interconnection queues in this state are congested; early utility engagement is advised.")
	}

	return cat
}
