package scenario

// PaybackHysteresisYears is the band within which two scenarios' paybacks are
// treated as equivalent, so near-ties do not flip the recommendation.
const PaybackHysteresisYears = 0.5

// RecommendationSimilar is returned by Diff when neither scenario wins by
// more than the hysteresis band.
const RecommendationSimilar = "similar"

// Rankings names the winning scenario type on each of the four axes.
type Rankings struct {
	LowestCost     Type `json:"lowest_cost"`
	FastestPayback Type `json:"fastest_payback"`
	HighestSavings Type `json:"highest_savings"`
	BestROI        Type `json:"best_roi"`
}

// Comparison is a pairwise diff of two scenarios. Diffs are b relative to a:
// positive investment diff means b costs more.
type Comparison struct {
	InvestmentDiff        float64 `json:"investment_diff"`
	InvestmentDiffPercent float64 `json:"investment_diff_percent"`
	SavingsDiff           float64 `json:"savings_diff"`
	SavingsDiffPercent    float64 `json:"savings_diff_percent"`
	PaybackDiff           float64 `json:"payback_diff"`
	ROIDiff               float64 `json:"roi_diff"`
	Recommendation        string  `json:"recommendation"`
}

// Rank picks the winner on each axis: ascending net investment, ascending
// payback, descending annual savings, descending ROI. Ties keep the earlier
// scenario, so the fixed generation order breaks them deterministically. An
// empty slice returns zero-value rankings.
func Rank(scenarios []Config) Rankings {
	if len(scenarios) == 0 {
		return Rankings{}
	}

	best := Rankings{
		LowestCost:     scenarios[0].Type,
		FastestPayback: scenarios[0].Type,
		HighestSavings: scenarios[0].Type,
		BestROI:        scenarios[0].Type,
	}
	leader := scenarios[0].Financials
	leaderCost, leaderPayback := leader.NetInvestment, leader.PaybackYears
	leaderSavings, leaderROI := leader.AnnualSavings, leader.ROI25Year

	for _, s := range scenarios[1:] {
		f := s.Financials
		if f.NetInvestment < leaderCost {
			leaderCost = f.NetInvestment
			best.LowestCost = s.Type
		}
		if f.PaybackYears < leaderPayback {
			leaderPayback = f.PaybackYears
			best.FastestPayback = s.Type
		}
		if f.AnnualSavings > leaderSavings {
			leaderSavings = f.AnnualSavings
			best.HighestSavings = s.Type
		}
		if f.ROI25Year > leaderROI {
			leaderROI = f.ROI25Year
			best.BestROI = s.Type
		}
	}
	return best
}

// Diff compares two scenarios. The recommendation names whichever scenario
// pays back more than half a year sooner, or "similar" inside that band.
func Diff(a, b Config) Comparison {
	fa, fb := a.Financials, b.Financials

	recommendation := RecommendationSimilar
	switch {
	case fa.PaybackYears < fb.PaybackYears-PaybackHysteresisYears:
		recommendation = string(a.Type)
	case fb.PaybackYears < fa.PaybackYears-PaybackHysteresisYears:
		recommendation = string(b.Type)
	}

	return Comparison{
		InvestmentDiff:        fb.NetInvestment - fa.NetInvestment,
		InvestmentDiffPercent: percentOf(fb.NetInvestment-fa.NetInvestment, fa.NetInvestment),
		SavingsDiff:           fb.AnnualSavings - fa.AnnualSavings,
		SavingsDiffPercent:    percentOf(fb.AnnualSavings-fa.AnnualSavings, fa.AnnualSavings),
		PaybackDiff:           fb.PaybackYears - fa.PaybackYears,
		ROIDiff:               fb.ROI25Year - fa.ROI25Year,
		Recommendation:        recommendation,
	}
}

// percentOf guards the zero-base case so a degenerate baseline reports 0
// rather than Inf.
func percentOf(delta, base float64) float64 {
	if base == 0 {
		return 0
	}
	return delta / base * 100
}
