package main

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/voltgrid/bess-engine/internal/scenario"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario-a.json> <scenario-b.json>",
	Short: "Diff two scenario configurations",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readScenario(args[0])
		if err != nil {
			return err
		}
		b, err := readScenario(args[1])
		if err != nil {
			return err
		}

		return printJSON(scenario.Diff(a, b))
	},
}

func readScenario(path string) (scenario.Config, error) {
	var c scenario.Config

	data, err := os.ReadFile(path)
	if err != nil {
		return c, eris.Wrapf(err, "read scenario %s", path)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, eris.Wrapf(err, "parse scenario %s", path)
	}
	return c, nil
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
