package finance

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltgrid/bess-engine/internal/quote"
)

// DefaultQuoteTimeout bounds the live quote call. A few seconds is the
// longest a sizing flow should ever wait before degrading to the estimate.
const DefaultQuoteTimeout = 5 * time.Second

// Calculator produces financial outcomes, preferring the external quote
// service when one is configured and falling back to the local estimate
// unconditionally on failure. Callers never see an error from Calculate.
type Calculator struct {
	quotes      quote.Client // nil means estimate-only
	assumptions Assumptions
	timeout     time.Duration
	logger      zerolog.Logger
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithQuoteClient enables the live source-of-truth path.
func WithQuoteClient(c quote.Client) CalculatorOption {
	return func(calc *Calculator) {
		calc.quotes = c
	}
}

// WithAssumptions overrides the default assumption set.
func WithAssumptions(a Assumptions) CalculatorOption {
	return func(calc *Calculator) {
		calc.assumptions = a
	}
}

// WithQuoteTimeout bounds the live quote call.
func WithQuoteTimeout(d time.Duration) CalculatorOption {
	return func(calc *Calculator) {
		calc.timeout = d
	}
}

// WithLogger attaches a logger for fallback warnings.
func WithLogger(logger zerolog.Logger) CalculatorOption {
	return func(calc *Calculator) {
		calc.logger = logger
	}
}

// NewCalculator creates a Calculator. With no options it is a pure local
// estimator.
func NewCalculator(opts ...CalculatorOption) *Calculator {
	calc := &Calculator{
		assumptions: DefaultAssumptions(),
		timeout:     DefaultQuoteTimeout,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(calc)
	}
	return calc
}

// Assumptions returns the calculator's active assumption set.
func (c *Calculator) Assumptions() Assumptions {
	return c.assumptions
}

// Calculate returns the financial outcome for the given configuration. When a
// quote client is configured it is tried first under a bounded timeout; on
// any error, timeout, or malformed response the local estimate is returned
// instead. The result's Provenance field records which path produced it.
func (c *Calculator) Calculate(ctx context.Context, eq Equipment, rates RateContext) Result {
	if c.quotes == nil {
		return EstimateWith(c.assumptions, eq, rates)
	}

	quoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.quotes.Quote(quoteCtx, quote.Request{
		BatteryKW:         eq.BatteryKW,
		BatteryKWh:        eq.BatteryKWh,
		SolarKW:           eq.SolarKW,
		WindKW:            eq.WindKW,
		GeneratorKW:       eq.GeneratorKW,
		State:             rates.State,
		ElectricityRate:   rates.ElectricityRate,
		DemandChargePerKW: rates.DemandChargePerKW,
	})
	if err != nil {
		c.logger.Warn().
			Err(err).
			Float64("battery_kw", eq.BatteryKW).
			Float64("battery_kwh", eq.BatteryKWh).
			Str("state", rates.State).
			Msg("quote service unavailable, using local estimate")
		return EstimateWith(c.assumptions, eq, rates)
	}

	return c.fromQuote(resp)
}

// fromQuote maps a quote service response onto a Result tagged as live. The
// sources map names the quote service rather than local assumptions.
func (c *Calculator) fromQuote(resp *quote.Response) Result {
	sources := map[string]string{
		"all_figures": "live quote service",
	}
	if resp.QuoteID != "" {
		sources["quote_id"] = resp.QuoteID
	}

	return Result{
		BatteryCost:         resp.BatteryCost,
		SolarCost:           resp.SolarCost,
		WindCost:            resp.WindCost,
		GeneratorCost:       resp.GeneratorCost,
		InstallationCost:    resp.InstallationCost,
		GrossCost:           resp.GrossCost,
		Incentives:          resp.Incentives,
		NetInvestment:       resp.NetInvestment,
		PeakShavingSavings:  resp.PeakShavingSavings,
		SolarSavings:        resp.SolarSavings,
		TOUArbitrageSavings: resp.TOUArbitrageSavings,
		AnnualSavings:       resp.AnnualSavings,
		PaybackYears:        resp.PaybackYears,
		ROI25Year:           resp.ROI25Year,
		NPV25Year:           resp.NPV25Year,
		Provenance:          ProvenanceLive,
		Sources:             sources,
	}
}
