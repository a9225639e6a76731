package scenario

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/voltgrid/bess-engine/internal/finance"
	"github.com/voltgrid/bess-engine/internal/sizing"
)

// GenerateInput is the site context a generation run needs.
type GenerateInput struct {
	PeakDemandKW       float64 `json:"peak_demand_kw" validate:"gte=0"`
	State              string  `json:"state"`
	ElectricityRate    float64 `json:"electricity_rate" validate:"gte=0"`
	DemandChargePerKW  float64 `json:"demand_charge_per_kw" validate:"gte=0"`
	PrimaryApplication string  `json:"primary_application"`
}

// Equipment is the hardware configuration of one scenario.
type Equipment struct {
	BatteryKW     float64 `json:"battery_kw"`
	BatteryKWh    float64 `json:"battery_kwh"`
	DurationHours float64 `json:"duration_hours"`
	SolarKW       float64 `json:"solar_kw"`
	WindKW        float64 `json:"wind_kw"`
	GeneratorKW   float64 `json:"generator_kw"`
}

// Config is one fully-priced scenario, ready to present.
type Config struct {
	Type          Type           `json:"type"`
	DisplayName   string         `json:"display_name"`
	Tagline       string         `json:"tagline"`
	Icon          string         `json:"icon"`
	IsRecommended bool           `json:"is_recommended"`
	Equipment     Equipment      `json:"equipment"`
	Financials    finance.Result `json:"financials"`
	BackupHours   float64        `json:"backup_hours"`
	Highlights    []string       `json:"highlights"`
	Reasoning     string         `json:"reasoning"`
}

// Generator builds scenarios against a finance calculator. The zero-option
// calculator makes it a pure local computation.
type Generator struct {
	calc *finance.Calculator
}

// NewGenerator creates a Generator backed by the given calculator.
func NewGenerator(calc *finance.Calculator) *Generator {
	return &Generator{calc: calc}
}

// Generate produces the three scenarios in fixed order: essentials, balanced,
// max-savings. Balanced is always the recommended one. The three financial
// calculations are independent and run in parallel; the returned order never
// depends on completion order.
//
// Per profile:
//  1. Size the battery with the profile's application and duration.
//  2. Scale solar, wind, and generator from peak demand by fixed ratios.
//  3. Price the equipment set through the finance calculator.
//  4. Attach the profile's static display and highlight text.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) []Config {
	configs := make([]Config, len(profiles))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, p := range profiles {
		i, p := i, p
		grp.Go(func() error {
			configs[i] = g.build(grpCtx, p, in)
			return nil
		})
	}
	// The builders never return an error; the calculator falls back to the
	// local estimate internally.
	_ = grp.Wait()

	return configs
}

func (g *Generator) build(ctx context.Context, p profile, in GenerateInput) Config {
	sized := sizing.Size(in.PeakDemandKW, p.DurationHours, p.Application)

	eq := Equipment{
		BatteryKW:     float64(sized.BatteryKW),
		BatteryKWh:    float64(sized.BatteryKWh),
		DurationHours: p.DurationHours,
		SolarKW:       math.Round(in.PeakDemandKW * p.SolarRatio),
		WindKW:        math.Round(in.PeakDemandKW * p.WindRatio),
		GeneratorKW:   math.Round(in.PeakDemandKW * p.GeneratorRatio),
	}

	fin := g.calc.Calculate(ctx, finance.Equipment{
		BatteryKW:   eq.BatteryKW,
		BatteryKWh:  eq.BatteryKWh,
		SolarKW:     eq.SolarKW,
		WindKW:      eq.WindKW,
		GeneratorKW: eq.GeneratorKW,
	}, finance.RateContext{
		State:             in.State,
		ElectricityRate:   in.ElectricityRate,
		DemandChargePerKW: in.DemandChargePerKW,
	})

	backup := p.DurationHours
	if eq.GeneratorKW > 0 {
		backup += generatorRuntimeHours
	}

	return Config{
		Type:          p.Type,
		DisplayName:   p.DisplayName,
		Tagline:       p.Tagline,
		Icon:          p.Icon,
		IsRecommended: p.IsRecommended,
		Equipment:     eq,
		Financials:    fin,
		BackupHours:   backup,
		Highlights:    p.Highlights,
		Reasoning:     p.Reasoning,
	}
}
