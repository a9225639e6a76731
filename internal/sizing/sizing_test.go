package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_PeakShavingWorkedExample(t *testing.T) {
	// 548 kW peak, 4 hour duration, peak shaving ratio 0.4.
	res := Size(548, 4, "peak-shaving")

	assert.Equal(t, 219, res.BatteryKW, "batteryKW = round(548 × 0.4)")
	assert.InDelta(t, 876.0, res.UsableKWh, 0.001)
	assert.InDelta(t, 0.7695, res.CombinedEfficiency, 0.0001)
	// round(876 / 0.7695) = 1138, ±1 for rounding order.
	assert.InDelta(t, 1138, float64(res.BatteryKWh), 1)
	assert.Equal(t, 0.4, res.PowerRatio)
	assert.NotEmpty(t, res.Formula)
}

func TestSize_ApplicationRatios(t *testing.T) {
	tests := []struct {
		name        string
		application string
		wantRatio   float64
	}{
		{"peak shaving", "peak-shaving", 0.4},
		{"backup", "backup", 0.7},
		{"grid independence", "grid-independence", 1.0},
		{"frequency regulation", "frequency-regulation", 0.3},
		{"underscore spelling", "peak_shaving", 0.4},
		{"space spelling", "Peak Shaving", 0.4},
		{"mixed case", "BACKUP", 0.7},
		{"unknown falls back to default", "quantum-flux", DefaultPowerRatio},
		{"empty falls back to default", "", DefaultPowerRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRatio, GetPowerRatio(tt.application))
		})
	}
}

func TestSize_EfficiencyInvariant(t *testing.T) {
	// Nameplate capacity must always cover usable energy: losses only ever
	// increase what has to be purchased.
	cases := []struct {
		peakKW   float64
		duration float64
		app      string
	}{
		{100, 2, "peak-shaving"},
		{548, 4, "backup"},
		{1000, 6, "grid-independence"},
		{25, 1, "frequency-regulation"},
		{7300, 8, "microgrid"},
	}

	for _, c := range cases {
		res := Size(c.peakKW, c.duration, c.app)
		assert.GreaterOrEqual(t, float64(res.BatteryKWh), res.UsableKWh-1,
			"batteryKWh must cover usableKWh for %+v", c)
		assert.GreaterOrEqual(t, float64(res.BatteryKWh)*res.CombinedEfficiency, res.UsableKWh-1,
			"usable energy after losses within rounding tolerance for %+v", c)
	}
}

func TestSize_Monotonicity(t *testing.T) {
	// batteryKW non-decreasing in peak demand for a fixed application.
	prev := 0
	for peak := 50.0; peak <= 2000; peak += 50 {
		res := Size(peak, 4, "backup")
		require.GreaterOrEqual(t, res.BatteryKW, prev, "peak=%.0f", peak)
		prev = res.BatteryKW
	}

	// batteryKWh non-decreasing in duration for a fixed peak.
	prevKWh := 0
	for dur := 1.0; dur <= 12; dur++ {
		res := Size(500, dur, "backup")
		require.GreaterOrEqual(t, res.BatteryKWh, prevKWh, "duration=%.0f", dur)
		prevKWh = res.BatteryKWh
	}
}

func TestSize_ZeroInputsDegenerate(t *testing.T) {
	res := Size(0, 0, "peak-shaving")
	assert.Equal(t, 0, res.BatteryKW)
	assert.Equal(t, 0, res.BatteryKWh)
	assert.Zero(t, res.UsableKWh)
}

func TestResize_OnlyCapacityChanges(t *testing.T) {
	base := Size(548, 4, "backup")
	longer := Resize(base, 8)

	assert.Equal(t, base.BatteryKW, longer.BatteryKW, "power is fixed by peak demand and application")
	assert.Greater(t, longer.BatteryKWh, base.BatteryKWh)
	assert.Equal(t, 8.0, longer.DurationHours)
}

func TestPowerRatios_AllWithinDocumentedRange(t *testing.T) {
	for app, ratio := range PowerRatios {
		t.Run(app, func(t *testing.T) {
			assert.Greater(t, ratio, 0.0)
			assert.LessOrEqual(t, ratio, 1.0)
		})
	}
	assert.Greater(t, DefaultPowerRatio, 0.0)
	assert.LessOrEqual(t, DefaultPowerRatio, 1.0)
}

func TestCombinedEfficiency_InUnitInterval(t *testing.T) {
	c := CombinedEfficiency()
	assert.Greater(t, c, 0.0)
	assert.Less(t, c, 1.0)
}
