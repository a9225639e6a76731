package score

import "math"

// tinyLoadThresholdKW caps the power-density score for facilities too small
// to justify commercial-scale storage.
const tinyLoadThresholdKW = 50

// largeDataCenterThresholdKW marks loads a battery alone cannot realistically
// carry for extended periods.
const largeDataCenterThresholdKW = 2000

// scoreSiteFit computes the Site Fit category (0-30): power-density match
// (0-15), solar potential (0-8), and load-profile fit (0-7).
func scoreSiteFit(site SiteContext, state, industry string) CategoryScore {
	densityPts := powerDensityPoints(site, industry)
	solarPts := solarPotentialPoints(state, industry)
	profile := GetLoadProfile(industry)
	profilePts := loadProfilePoints(profile)

	cat := CategoryScore{
		Max: 30,
		Breakdown: map[string]float64{
			"power_density_match": densityPts,
			"solar_potential":     solarPts,
			"load_profile_fit":    profilePts,
		},
		factors: []KeyDriver{
			{Factor: "power_density_match", Score: densityPts},
			{Factor: "solar_potential", Score: solarPts},
			{Factor: "load_profile_fit", Score: profilePts},
		},
	}
	cat.Score = densityPts + solarPts + profilePts

	if densityPts >= 13 {
		cat.Insights = append(cat.Insights, "This industry's demand spikes are an excellent match for battery discharge.")
	}
	if industry == "data_center" && site.EstimatedPeakKW >= largeDataCenterThresholdKW {
		cat.Insights = append(cat.Insights, "At this scale a battery supplements rather than replaces utility supply; pair with on-site generation.")
	}
	if site.EstimatedPeakKW > 0 && site.EstimatedPeakKW < tinyLoadThresholdKW {
		cat.Insights = append(cat.Insights, "Facility load is small; a compact commercial unit is the right fit.")
	}
	if solarPts >= 6 {
		cat.Insights = append(cat.Insights, "Strong solar resource and available space favor a solar-plus-storage design.")
	}
	if site.HasSolar {
		cat.Insights = append(cat.Insights, "Existing solar can charge the battery directly, improving project economics.")
	}
	if profile == ProfilePeaky {
		cat.Insights = append(cat.Insights, "A peaky load profile maximizes the value captured per discharge cycle.")
	}

	return cat
}

// powerDensityPoints rates the industry's demand shape against a battery's
// power envelope, 0-15. Rule order matters: ideal-fit industries are forced
// to 15 before the size caps apply.
func powerDensityPoints(site SiteContext, industry string) float64 {
	if idealFitIndustries[industry] {
		return 15
	}

	base := DefaultPowerDensityScore
	if s, ok := PowerDensityScores[industry]; ok {
		base = s
	}

	if industry == "data_center" {
		// Large data centers exceed what storage alone can carry.
		if site.EstimatedPeakKW >= largeDataCenterThresholdKW {
			return 5
		}
		return 8
	}

	if site.EstimatedPeakKW > 0 && site.EstimatedPeakKW < tinyLoadThresholdKW {
		return math.Min(base, 8)
	}

	return base
}

// solarPotentialPoints sums the state irradiance band (1-4) and the
// industry's roof/lot space factor (1-4), capped at 8.
func solarPotentialPoints(state, industry string) float64 {
	irradiance := GetIrradianceBand(state)

	space := DefaultSolarSpaceFactor
	if f, ok := SolarSpaceFactors[industry]; ok {
		space = f
	}

	return math.Min(irradiance+space, 8)
}
