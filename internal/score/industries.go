package score

import "strings"

// LoadProfile classifies the shape of a facility's daily demand curve.
type LoadProfile string

const (
	ProfilePeaky    LoadProfile = "peaky"    // sharp demand spikes, best BESS fit
	ProfileVariable LoadProfile = "variable" // meaningful swings
	ProfileFlat     LoadProfile = "flat"     // near-constant baseload
)

// NormalizeIndustry canonicalizes an industry key to lower-case snake form,
// so "Car Wash" and "car-wash" both resolve to "car_wash".
func NormalizeIndustry(industry string) string {
	key := strings.ToLower(strings.TrimSpace(industry))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	return key
}

// PowerDensityScores rates how well a battery's power envelope matches each
// industry's demand shape, 0-15. Special-case rules in scoreSiteFit adjust
// these for data centers and very small loads.
var PowerDensityScores = map[string]float64{
	"car_wash":      15,
	"ev_charging":   15,
	"cold_storage":  15,
	"hotel":         12,
	"hospital":      13,
	"manufacturing": 13,
	"grocery":       12,
	"restaurant":    11,
	"casino":        12,
	"brewery":       12,
	"laundromat":    13,
	"gym":           11,
	"school":        10,
	"university":    10,
	"senior_living": 11,
	"retail":        10,
	"office":        9,
	"warehouse":     10,
	"logistics":     10,
	"apartment":     9,
	"municipal":     10,
	"agriculture":   11,
	"cannabis":      12,
	"gas_station":   11,
	"data_center":   8,
}

// DefaultPowerDensityScore applies to unlisted industries.
const DefaultPowerDensityScore = 9.0

// idealFitIndustries are forced to the full 15 regardless of facility size:
// their load spikes are exactly what a battery flattens.
var idealFitIndustries = map[string]bool{
	"car_wash":     true,
	"ev_charging":  true,
	"cold_storage": true,
}

// SolarSpaceFactors rates available roof/lot area for PV, 1-4.
var SolarSpaceFactors = map[string]float64{
	"warehouse":     4,
	"logistics":     4,
	"manufacturing": 4,
	"agriculture":   4,
	"grocery":       3,
	"retail":        3,
	"school":        3,
	"university":    3,
	"municipal":     3,
	"car_wash":      3,
	"cold_storage":  3,
	"gas_station":   2,
	"hotel":         2,
	"hospital":      2,
	"casino":        2,
	"data_center":   2,
	"office":        2,
	"apartment":     2,
	"senior_living": 2,
	"restaurant":    1,
	"laundromat":    1,
	"gym":           2,
	"brewery":       3,
	"cannabis":      2,
	"ev_charging":   2,
}

// DefaultSolarSpaceFactor applies to unlisted industries.
const DefaultSolarSpaceFactor = 2.0

// LoadProfiles classifies each industry's demand curve shape.
var LoadProfiles = map[string]LoadProfile{
	"car_wash":      ProfilePeaky,
	"ev_charging":   ProfilePeaky,
	"laundromat":    ProfilePeaky,
	"restaurant":    ProfilePeaky,
	"gym":           ProfilePeaky,
	"school":        ProfilePeaky,
	"brewery":       ProfilePeaky,
	"manufacturing": ProfileVariable,
	"hotel":         ProfileVariable,
	"casino":        ProfileVariable,
	"university":    ProfileVariable,
	"retail":        ProfileVariable,
	"office":        ProfileVariable,
	"grocery":       ProfileVariable,
	"municipal":     ProfileVariable,
	"agriculture":   ProfileVariable,
	"gas_station":   ProfileVariable,
	"warehouse":     ProfileVariable,
	"logistics":     ProfileVariable,
	"apartment":     ProfileVariable,
	"hospital":      ProfileFlat,
	"data_center":   ProfileFlat,
	"cold_storage":  ProfileFlat,
	"senior_living": ProfileFlat,
	"cannabis":      ProfileFlat,
}

// DefaultLoadProfile applies to unlisted industries.
const DefaultLoadProfile = ProfileVariable

// GetLoadProfile returns the demand-curve class for an industry key.
func GetLoadProfile(industry string) LoadProfile {
	if p, ok := LoadProfiles[industry]; ok {
		return p
	}
	return DefaultLoadProfile
}

// loadProfilePoints converts a load profile to site-fit points.
func loadProfilePoints(p LoadProfile) float64 {
	switch p {
	case ProfilePeaky:
		return 7
	case ProfileVariable:
		return 5
	default:
		return 3
	}
}

// CriticalityScores rates the business cost of an outage, 0-5.
var CriticalityScores = map[string]float64{
	"hospital":      5,
	"data_center":   5,
	"cold_storage":  4,
	"senior_living": 4,
	"cannabis":      4,
	"grocery":       3,
	"hotel":         3,
	"manufacturing": 3,
	"casino":        3,
	"gas_station":   3,
	"agriculture":   3,
	"municipal":     3,
	"restaurant":    2,
	"retail":        2,
	"office":        2,
	"school":        2,
	"university":    2,
	"warehouse":     2,
	"logistics":     2,
	"apartment":     2,
	"brewery":       2,
	"car_wash":      1,
	"laundromat":    1,
	"gym":           1,
	"ev_charging":   2,
}

// DefaultCriticalityScore applies to unlisted industries.
const DefaultCriticalityScore = 2.0

// GetCriticalityScore returns the 0-5 outage-cost score for an industry key.
func GetCriticalityScore(industry string) float64 {
	if s, ok := CriticalityScores[industry]; ok {
		return s
	}
	return DefaultCriticalityScore
}

// ConstructionAccessScores estimates how easily equipment can be staged and
// installed at each industry's typical site, 2-3.
var ConstructionAccessScores = map[string]float64{
	"warehouse":     3,
	"logistics":     3,
	"manufacturing": 3,
	"agriculture":   3,
	"car_wash":      3,
	"gas_station":   3,
	"municipal":     3,
	"cold_storage":  3,
	"ev_charging":   3,
}

// DefaultConstructionAccessScore applies to unlisted industries.
const DefaultConstructionAccessScore = 2.0

// GetConstructionAccessScore returns the 2-3 access estimate for an industry.
func GetConstructionAccessScore(industry string) float64 {
	if s, ok := ConstructionAccessScores[industry]; ok {
		return s
	}
	return DefaultConstructionAccessScore
}
