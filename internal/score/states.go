package score

import "strings"

// Trajectory classifies the direction of a state's retail electricity rates.
type Trajectory string

const (
	TrajectoryRisingFast Trajectory = "rising-fast"
	TrajectoryModerate   Trajectory = "moderate"
	TrajectoryStable     Trajectory = "stable"
	TrajectoryDeclining  Trajectory = "declining"
)

// stateNames maps lower-cased full state names to two-letter codes so a
// SiteContext may carry either form.
var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"district of columbia": "DC", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT", "nebraska": "NE",
	"nevada": "NV", "new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "tennessee": "TN", "texas": "TX",
	"utah": "UT", "vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
}

var stateCodes = func() map[string]bool {
	codes := make(map[string]bool, len(stateNames))
	for _, code := range stateNames {
		codes[code] = true
	}
	return codes
}()

// NormalizeState resolves a state code or full name to a two-letter code.
// Unrecognized input returns "DEFAULT", which every state table handles.
func NormalizeState(location string) string {
	loc := strings.TrimSpace(location)
	if len(loc) == 2 {
		if code := strings.ToUpper(loc); stateCodes[code] {
			return code
		}
	}
	if code, ok := stateNames[strings.ToLower(loc)]; ok {
		return code
	}
	return "DEFAULT"
}

// RateTrajectories classifies each state's retail rate direction.
// Source: EIA retail price series, 5-year trend through 2024.
var RateTrajectories = map[string]Trajectory{
	"CA": TrajectoryRisingFast, "MA": TrajectoryRisingFast, "CT": TrajectoryRisingFast,
	"NY": TrajectoryRisingFast, "RI": TrajectoryRisingFast, "NH": TrajectoryRisingFast,
	"ME": TrajectoryRisingFast, "NJ": TrajectoryRisingFast, "HI": TrajectoryRisingFast,
	"VT": TrajectoryRisingFast, "MD": TrajectoryRisingFast,

	"TX": TrajectoryModerate, "FL": TrajectoryModerate, "AZ": TrajectoryModerate,
	"NV": TrajectoryModerate, "CO": TrajectoryModerate, "GA": TrajectoryModerate,
	"NC": TrajectoryModerate, "SC": TrajectoryModerate, "VA": TrajectoryModerate,
	"PA": TrajectoryModerate, "IL": TrajectoryModerate, "MI": TrajectoryModerate,
	"OH": TrajectoryModerate, "WA": TrajectoryModerate, "OR": TrajectoryModerate,
	"UT": TrajectoryModerate, "NM": TrajectoryModerate, "AK": TrajectoryModerate,

	"ID": TrajectoryStable, "MT": TrajectoryStable, "WY": TrajectoryStable,
	"ND": TrajectoryStable, "SD": TrajectoryStable, "NE": TrajectoryStable,
	"KS": TrajectoryStable, "OK": TrajectoryStable, "AR": TrajectoryStable,
	"LA": TrajectoryStable, "MS": TrajectoryStable, "AL": TrajectoryStable,
	"TN": TrajectoryStable, "KY": TrajectoryStable, "MO": TrajectoryStable,
	"IN": TrajectoryStable, "WI": TrajectoryStable, "MN": TrajectoryStable,
	"IA": TrajectoryStable, "WV": TrajectoryStable, "DE": TrajectoryStable,
	"DC": TrajectoryStable,
}

// DefaultTrajectory is used for unlisted states.
const DefaultTrajectory = TrajectoryModerate

// GetRateTrajectory returns the rate trajectory for a state code, falling
// back to DefaultTrajectory.
func GetRateTrajectory(state string) Trajectory {
	if t, ok := RateTrajectories[state]; ok {
		return t
	}
	return DefaultTrajectory
}

// trajectoryPoints converts a trajectory class to economic-opportunity points.
func trajectoryPoints(t Trajectory) float64 {
	switch t {
	case TrajectoryRisingFast:
		return 8
	case TrajectoryModerate:
		return 5
	case TrajectoryStable:
		return 2
	case TrajectoryDeclining:
		return 0
	default:
		return 5
	}
}

// StateIncentiveScores rates state-level storage incentive programs 0-5.
// Source: DSIRE incentive database, 2024 snapshot.
var StateIncentiveScores = map[string]float64{
	"CA": 5, "NY": 5, "MA": 5,
	"CT": 4, "NJ": 4, "MD": 4, "HI": 4,
	"IL": 3, "CO": 3, "NM": 3, "OR": 3, "VT": 3, "RI": 3, "NV": 3, "MN": 3,
	"TX": 2, "AZ": 2, "NH": 2, "ME": 2, "VA": 2, "MI": 2,
	"FL": 1, "GA": 1, "AL": 1, "MS": 1, "TN": 1, "KY": 1, "WV": 1, "WY": 1,
}

// DefaultIncentiveScore applies to states without a rated program.
const DefaultIncentiveScore = 2.0

// GetIncentiveScore returns the 0-5 incentive score for a state code.
func GetIncentiveScore(state string) float64 {
	if s, ok := StateIncentiveScores[state]; ok {
		return s
	}
	return DefaultIncentiveScore
}

// SolarIrradianceBands buckets states into annual-irradiance bands 1-4.
// Source: NREL NSRDB long-term GHI averages.
var SolarIrradianceBands = map[string]float64{
	"AZ": 4, "NM": 4, "NV": 4, "CA": 4, "TX": 4, "UT": 4, "CO": 4, "HI": 4, "FL": 4,
	"GA": 3, "SC": 3, "NC": 3, "AL": 3, "MS": 3, "LA": 3, "AR": 3, "OK": 3,
	"KS": 3, "TN": 3, "MO": 3, "VA": 3,
	"WA": 1, "OR": 1, "AK": 1,
}

// DefaultIrradianceBand covers the remaining temperate states.
const DefaultIrradianceBand = 2.0

// GetIrradianceBand returns the 1-4 irradiance band for a state code.
func GetIrradianceBand(state string) float64 {
	if b, ok := SolarIrradianceBands[state]; ok {
		return b
	}
	return DefaultIrradianceBand
}

// PermitComplexities classifies state permitting burden for behind-the-meter
// storage. easy=4, moderate=2, difficult=1 feasibility points.
var PermitComplexities = map[string]string{
	"CA": "difficult", "NY": "difficult", "MA": "difficult", "NJ": "difficult",
	"HI": "difficult", "CT": "difficult",
	"TX": "easy", "AZ": "easy", "FL": "easy", "GA": "easy", "TN": "easy",
	"UT": "easy", "NV": "easy", "OK": "easy",
}

// DefaultPermitComplexity applies to unlisted states.
const DefaultPermitComplexity = "moderate"

// GetPermitComplexity returns the permitting class for a state code.
func GetPermitComplexity(state string) string {
	if c, ok := PermitComplexities[state]; ok {
		return c
	}
	return DefaultPermitComplexity
}

// permitPoints converts a permitting class to feasibility points.
func permitPoints(complexity string) float64 {
	switch complexity {
	case "easy":
		return 4
	case "difficult":
		return 1
	default:
		return 2
	}
}

// InterconnectionScores estimates interconnection-queue friction 1-3 (higher
// is better). Only states with notably fast or congested queues are listed.
var InterconnectionScores = map[string]float64{
	"CA": 1, "NY": 1, "MA": 1, "NJ": 1,
	"TX": 3, "OK": 3, "KS": 3,
}

// DefaultInterconnectionScore applies to unlisted states.
const DefaultInterconnectionScore = 2.0

// GetInterconnectionScore returns the 1-3 queue estimate for a state code.
func GetInterconnectionScore(state string) float64 {
	if s, ok := InterconnectionScores[state]; ok {
		return s
	}
	return DefaultInterconnectionScore
}
