package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateGrid_AllStatesPresent(t *testing.T) {
	for name, code := range stateNames {
		t.Run(code, func(t *testing.T) {
			row := GetStateGrid(code)
			assert.NotEqual(t, "DEFAULT", row.State, "grid data missing for %s (%s)", code, name)
		})
	}
}

func TestStateGrid_ValuesWithinRange(t *testing.T) {
	stateGridOnce.Do(parseStateGrid)
	require.NotEmpty(t, stateGridRows)

	for state, row := range stateGridRows {
		t.Run(state, func(t *testing.T) {
			assert.Greater(t, row.SAIDIMinutes, 0.0)
			assert.Less(t, row.SAIDIMinutes, 2000.0, "SAIDI should be annual minutes, not hours")
			assert.GreaterOrEqual(t, row.HeatIndex, 0.0)
			assert.LessOrEqual(t, row.HeatIndex, 3.0)
			assert.GreaterOrEqual(t, row.StormIndex, 0.0)
			assert.LessOrEqual(t, row.StormIndex, 3.0)
			assert.GreaterOrEqual(t, row.WildfireIndex, 0.0)
			assert.LessOrEqual(t, row.WildfireIndex, 3.0)
		})
	}
}

func TestStateGrid_UnknownStateFallsBack(t *testing.T) {
	row := GetStateGrid("ZZ")
	assert.Equal(t, DefaultStateGridRow, row)
}

func TestIncentiveScores_WithinRange(t *testing.T) {
	for state, s := range StateIncentiveScores {
		assert.GreaterOrEqual(t, s, 0.0, state)
		assert.LessOrEqual(t, s, 5.0, state)
	}
	assert.Equal(t, 5.0, GetIncentiveScore("CA"))
	assert.Equal(t, DefaultIncentiveScore, GetIncentiveScore("ZZ"))
}

func TestIrradianceBands_WithinRange(t *testing.T) {
	for state, b := range SolarIrradianceBands {
		assert.GreaterOrEqual(t, b, 1.0, state)
		assert.LessOrEqual(t, b, 4.0, state)
	}
	assert.Equal(t, DefaultIrradianceBand, GetIrradianceBand("ZZ"))
}

func TestRateTrajectories_KnownClasses(t *testing.T) {
	valid := map[Trajectory]bool{
		TrajectoryRisingFast: true,
		TrajectoryModerate:   true,
		TrajectoryStable:     true,
		TrajectoryDeclining:  true,
	}
	for state, tr := range RateTrajectories {
		assert.True(t, valid[tr], "state %s has unknown trajectory %q", state, tr)
	}
	assert.Equal(t, TrajectoryRisingFast, GetRateTrajectory("CA"))
	assert.Equal(t, DefaultTrajectory, GetRateTrajectory("ZZ"))
}

func TestIndustryTables_WithinDocumentedRanges(t *testing.T) {
	for industry, s := range PowerDensityScores {
		assert.GreaterOrEqual(t, s, 0.0, industry)
		assert.LessOrEqual(t, s, 15.0, industry)
	}
	for industry, f := range SolarSpaceFactors {
		assert.GreaterOrEqual(t, f, 1.0, industry)
		assert.LessOrEqual(t, f, 4.0, industry)
	}
	for industry, c := range CriticalityScores {
		assert.GreaterOrEqual(t, c, 0.0, industry)
		assert.LessOrEqual(t, c, 5.0, industry)
	}
	for industry, a := range ConstructionAccessScores {
		assert.GreaterOrEqual(t, a, 2.0, industry)
		assert.LessOrEqual(t, a, 3.0, industry)
	}
}

func TestIndustryTables_ExpectedIndustriesPresent(t *testing.T) {
	expected := []string{
		"hotel", "car_wash", "data_center", "hospital", "retail", "grocery",
		"restaurant", "office", "warehouse", "manufacturing", "cold_storage",
		"school", "university", "senior_living", "gym", "laundromat",
		"gas_station", "ev_charging", "agriculture", "cannabis", "brewery",
		"casino", "apartment", "municipal", "logistics",
	}
	for _, industry := range expected {
		t.Run(industry, func(t *testing.T) {
			_, ok := PowerDensityScores[industry]
			assert.True(t, ok, "power density missing for %s", industry)
			_, ok = LoadProfiles[industry]
			assert.True(t, ok, "load profile missing for %s", industry)
		})
	}
}

func TestCriticality_HospitalTopsRetail(t *testing.T) {
	assert.Equal(t, 5.0, GetCriticalityScore("hospital"))
	assert.Equal(t, 2.0, GetCriticalityScore("retail"))
	assert.Equal(t, DefaultCriticalityScore, GetCriticalityScore("alchemy"))
}

func TestSAIDIPoints_Bands(t *testing.T) {
	tests := []struct {
		saidi float64
		want  float64
	}{
		{900, 8}, {400, 8}, {399, 6}, {250, 6}, {249, 4}, {150, 4}, {149, 2}, {90, 2}, {89, 1}, {0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, saidiPoints(tt.saidi), "saidi %.0f", tt.saidi)
	}
}

func TestRateLevelPoints_Bands(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0.30, 12}, {0.25, 12}, {0.249, 10}, {0.20, 10}, {0.19, 8}, {0.16, 8},
		{0.15, 5}, {0.12, 5}, {0.11, 3}, {0.08, 3}, {0.079, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rateLevelPoints(tt.rate), "rate %.3f", tt.rate)
	}
}

func TestDemandChargePoints_Bands(t *testing.T) {
	tests := []struct {
		charge float64
		want   float64
	}{
		{40, 10}, {25, 10}, {24, 8}, {15, 8}, {14, 6}, {10, 6}, {9, 3}, {5, 3}, {4, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, demandChargePoints(tt.charge), "charge %.0f", tt.charge)
	}
}
