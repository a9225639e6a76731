package main

import (
	"github.com/spf13/cobra"

	"github.com/voltgrid/bess-engine/internal/sizing"
)

var (
	sizePeakKW   float64
	sizeDuration float64
	sizeApp      string
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a battery system for a peak demand and application",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(sizing.Size(sizePeakKW, sizeDuration, sizeApp))
	},
}

func init() {
	f := sizeCmd.Flags()
	f.Float64Var(&sizePeakKW, "peak-kw", 0, "peak demand (kW)")
	f.Float64Var(&sizeDuration, "duration", 4, "storage duration (hours)")
	f.StringVar(&sizeApp, "application", "", "primary application (unknown keys use the default ratio)")

	cobra.CheckErr(sizeCmd.MarkFlagRequired("peak-kw"))

	rootCmd.AddCommand(sizeCmd)
}
