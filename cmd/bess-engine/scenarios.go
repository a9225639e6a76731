package main

import (
	"github.com/spf13/cobra"

	"github.com/voltgrid/bess-engine/internal/scenario"
)

var scenariosInput scenario.GenerateInput

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Generate and rank the three equipment scenarios for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := scenario.NewGenerator(newCalculator())
		configs := gen.Generate(cmd.Context(), scenariosInput)

		return printJSON(struct {
			Scenarios []scenario.Config `json:"scenarios"`
			Rankings  scenario.Rankings `json:"rankings"`
		}{configs, scenario.Rank(configs)})
	},
}

func init() {
	f := scenariosCmd.Flags()
	f.Float64Var(&scenariosInput.PeakDemandKW, "peak-kw", 0, "peak demand (kW)")
	f.StringVar(&scenariosInput.State, "state", "", "site state")
	f.Float64Var(&scenariosInput.ElectricityRate, "rate", 0, "blended electricity rate ($/kWh)")
	f.Float64Var(&scenariosInput.DemandChargePerKW, "demand-charge", 0, "demand charge ($/kW/month)")
	f.StringVar(&scenariosInput.PrimaryApplication, "application", "", "primary application")

	cobra.CheckErr(scenariosCmd.MarkFlagRequired("peak-kw"))

	rootCmd.AddCommand(scenariosCmd)
}
