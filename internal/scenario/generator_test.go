package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltgrid/bess-engine/internal/finance"
)

func testGenerator() *Generator {
	return NewGenerator(finance.NewCalculator())
}

func TestGenerate_FixedOrderAndRecommendation(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{
		PeakDemandKW:       1000,
		State:              "TX",
		ElectricityRate:    0.11,
		DemandChargePerKW:  12,
		PrimaryApplication: "peak-shaving",
	})

	require.Len(t, got, 3)
	assert.Equal(t, TypeEssentials, got[0].Type)
	assert.Equal(t, TypeBalanced, got[1].Type)
	assert.Equal(t, TypeMaxSavings, got[2].Type)

	recommended := 0
	for _, s := range got {
		if s.IsRecommended {
			recommended++
			assert.Equal(t, TypeBalanced, s.Type)
		}
	}
	assert.Equal(t, 1, recommended, "exactly one recommended scenario")
}

func TestGenerate_EquipmentProfiles(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{
		PeakDemandKW:       1000,
		State:              "TX",
		ElectricityRate:    0.11,
		DemandChargePerKW:  12,
		PrimaryApplication: "peak-shaving",
	})
	require.Len(t, got, 3)

	essentials := got[0].Equipment
	assert.InDelta(t, 400, essentials.BatteryKW, 1, "peak-shaving ratio 0.4")
	assert.Equal(t, 4.0, essentials.DurationHours)
	assert.Zero(t, essentials.SolarKW)
	assert.Zero(t, essentials.WindKW)
	assert.Zero(t, essentials.GeneratorKW)

	balanced := got[1].Equipment
	assert.InDelta(t, 700, balanced.BatteryKW, 1, "backup ratio 0.7")
	assert.Equal(t, 4.0, balanced.DurationHours)
	assert.Equal(t, 500.0, balanced.SolarKW)
	assert.Zero(t, balanced.WindKW)
	assert.Equal(t, 270.0, balanced.GeneratorKW)

	max := got[2].Equipment
	assert.InDelta(t, 1000, max.BatteryKW, 1, "grid-independence ratio 1.0")
	assert.Equal(t, 6.0, max.DurationHours)
	assert.Equal(t, 800.0, max.SolarKW)
	assert.Equal(t, 100.0, max.WindKW)
	assert.Equal(t, 360.0, max.GeneratorKW)
}

func TestGenerate_FinancialsMatchLocalEstimate(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{
		PeakDemandKW:      1000,
		State:             "TX",
		ElectricityRate:   0.11,
		DemandChargePerKW: 12,
	})
	require.Len(t, got, 3)

	for _, s := range got {
		want := finance.Estimate(finance.Equipment{
			BatteryKW:   s.Equipment.BatteryKW,
			BatteryKWh:  s.Equipment.BatteryKWh,
			SolarKW:     s.Equipment.SolarKW,
			WindKW:      s.Equipment.WindKW,
			GeneratorKW: s.Equipment.GeneratorKW,
		}, finance.RateContext{
			State:             "TX",
			ElectricityRate:   0.11,
			DemandChargePerKW: 12,
		})
		assert.Equal(t, want, s.Financials, "scenario %s", s.Type)
		assert.Equal(t, finance.ProvenanceEstimated, s.Financials.Provenance)
	}
}

func TestGenerate_BackupHours(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{
		PeakDemandKW: 500,
	})
	require.Len(t, got, 3)

	assert.Equal(t, 4.0, got[0].BackupHours, "battery duration only")
	assert.Equal(t, 4.0+generatorRuntimeHours, got[1].BackupHours)
	assert.Equal(t, 6.0+generatorRuntimeHours, got[2].BackupHours)
}

func TestGenerate_DisplayText(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{PeakDemandKW: 250})
	require.Len(t, got, 3)

	for _, s := range got {
		assert.NotEmpty(t, s.DisplayName)
		assert.NotEmpty(t, s.Tagline)
		assert.NotEmpty(t, s.Icon)
		assert.NotEmpty(t, s.Highlights)
		assert.NotEmpty(t, s.Reasoning)
	}
}

func TestGenerate_ZeroPeakIsDegenerateNotPanic(t *testing.T) {
	got := testGenerator().Generate(context.Background(), GenerateInput{})
	require.Len(t, got, 3)

	for _, s := range got {
		assert.Zero(t, s.Equipment.BatteryKW)
		assert.Zero(t, s.Equipment.SolarKW)
		assert.Zero(t, s.Financials.GrossCost)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := GenerateInput{PeakDemandKW: 820, State: "CA", ElectricityRate: 0.30, DemandChargePerKW: 28}
	g := testGenerator()

	first := g.Generate(context.Background(), in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Generate(context.Background(), in))
	}
}
