package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/voltgrid/bess-engine/internal/config"
	"github.com/voltgrid/bess-engine/internal/finance"
	"github.com/voltgrid/bess-engine/internal/quote"
	"github.com/voltgrid/bess-engine/internal/score"
)

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bess-engine",
	Short: "BESS sizing and financial scenario engine",
	Long:  "Scores site suitability, sizes battery systems, and generates ranked equipment scenarios with full financial outcomes for commercial energy storage projects.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logger = config.NewLogger(cfg.Log)
		score.SetLogger(logger)

		return nil
	},
	SilenceUsage: true,
}

// newCalculator assembles the finance calculator from configuration. Without
// a quote API key the live path stays disabled and every result is a local
// estimate.
func newCalculator() *finance.Calculator {
	opts := []finance.CalculatorOption{
		finance.WithLogger(logger),
		finance.WithQuoteTimeout(cfg.Quote.Timeout()),
	}

	if cfg.Finance.AssumptionsPath != "" {
		a, err := finance.LoadAssumptions(cfg.Finance.AssumptionsPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Finance.AssumptionsPath).
				Msg("assumptions file unusable, using defaults")
		}
		opts = append(opts, finance.WithAssumptions(a))
	}

	if cfg.Quote.APIKey != "" {
		client := quote.NewClient(cfg.Quote.APIKey,
			quote.WithBaseURL(cfg.Quote.BaseURL),
			quote.WithRateLimit(cfg.Quote.RatePerSec),
		)
		opts = append(opts, finance.WithQuoteClient(client))
	}

	return finance.NewCalculator(opts...)
}

// printJSON writes the result to stdout, indented for humans.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
