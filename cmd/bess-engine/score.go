package main

import (
	"github.com/spf13/cobra"

	"github.com/voltgrid/bess-engine/internal/score"
)

var scoreSite score.SiteContext

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a site's suitability for battery storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(score.Score(scoreSite))
	},
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreSite.State, "state", "", "site state (code or full name)")
	f.StringVar(&scoreSite.Zip, "zip", "", "site zip code")
	f.StringVar(&scoreSite.Industry, "industry", "", "site industry")
	f.Float64Var(&scoreSite.ElectricityRate, "rate", 0, "blended electricity rate ($/kWh)")
	f.Float64Var(&scoreSite.DemandChargePerKW, "demand-charge", 0, "demand charge ($/kW/month)")
	f.BoolVar(&scoreSite.HasTOU, "tou", false, "site is on a time-of-use tariff")
	f.Float64Var(&scoreSite.PeakRate, "peak-rate", 0, "TOU peak rate ($/kWh)")
	f.Float64Var(&scoreSite.OffPeakRate, "off-peak-rate", 0, "TOU off-peak rate ($/kWh)")
	f.StringVar(&scoreSite.UtilityName, "utility", "", "serving utility name")
	f.Float64Var(&scoreSite.EstimatedPeakKW, "peak-kw", 0, "estimated peak demand (kW)")
	f.Float64Var(&scoreSite.SquareFootage, "sqft", 0, "facility square footage")
	f.BoolVar(&scoreSite.HasSolar, "has-solar", false, "site already has solar")
	f.BoolVar(&scoreSite.HasGenerator, "has-generator", false, "site already has a generator")

	cobra.CheckErr(scoreCmd.MarkFlagRequired("state"))
	cobra.CheckErr(scoreCmd.MarkFlagRequired("industry"))

	rootCmd.AddCommand(scoreCmd)
}
