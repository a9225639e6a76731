// Package quote provides a client for the external pricing quote service that
// acts as the financial source of truth. The service is optional: callers
// degrade to the local estimate when it is unreachable.
package quote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Request describes the equipment and rate context sent to the quote service.
type Request struct {
	BatteryKW         float64 `json:"battery_kw"`
	BatteryKWh        float64 `json:"battery_kwh"`
	SolarKW           float64 `json:"solar_kw"`
	WindKW            float64 `json:"wind_kw"`
	GeneratorKW       float64 `json:"generator_kw"`
	State             string  `json:"state"`
	ElectricityRate   float64 `json:"electricity_rate"`
	DemandChargePerKW float64 `json:"demand_charge_per_kw"`
}

// Response is the financials record returned by the quote service.
type Response struct {
	BatteryCost      float64 `json:"battery_cost"`
	SolarCost        float64 `json:"solar_cost"`
	WindCost         float64 `json:"wind_cost"`
	GeneratorCost    float64 `json:"generator_cost"`
	InstallationCost float64 `json:"installation_cost"`
	GrossCost        float64 `json:"gross_cost"`
	Incentives       float64 `json:"incentives"`
	NetInvestment    float64 `json:"net_investment"`

	PeakShavingSavings  float64 `json:"peak_shaving_savings"`
	SolarSavings        float64 `json:"solar_savings"`
	TOUArbitrageSavings float64 `json:"tou_arbitrage_savings"`
	AnnualSavings       float64 `json:"annual_savings"`

	PaybackYears float64 `json:"payback_years"`
	ROI25Year    float64 `json:"roi_25_year"`
	NPV25Year    float64 `json:"npv_25_year"`

	QuoteID string `json:"quote_id,omitempty"`
}

// Client defines the quote service operations.
type Client interface {
	// Quote requests authoritative project financials. Any error means the
	// caller should fall back to the local estimate.
	Quote(ctx context.Context, req Request) (*Response, error)
}

// Option configures the HTTP client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(perSecond float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a quote service client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: "https://quotes.voltgrid.io",
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryableStatusCode returns true if the HTTP status code should trigger a retry.
func retryableStatusCode(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable
}

// retryDo executes a request with exponential backoff on transient failures
// (429, 500, 502, 503). The request body is re-supplied on every attempt.
func (c *httpClient) retryDo(ctx context.Context, method, url string, payload []byte) ([]byte, int, error) {
	const maxAttempts = 3
	backoff := 500 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if err != nil {
			return nil, 0, eris.Wrap(err, "quote: create request")
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", uuid.New().String())

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxAttempts {
				select {
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= 2
				continue
			}
			return nil, 0, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, resp.StatusCode, eris.Wrap(readErr, "quote: read response body")
		}

		if retryableStatusCode(resp.StatusCode) && attempt < maxAttempts {
			lastErr = eris.Errorf("quote: status %d: %s", resp.StatusCode, string(body))
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		return body, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}

func (c *httpClient) Quote(ctx context.Context, req Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "quote: rate limit wait")
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "quote: marshal request")
	}

	body, statusCode, err := c.retryDo(ctx, http.MethodPost, c.baseURL+"/v1/quotes", payload)
	if err != nil {
		return nil, eris.Wrap(err, "quote: request failed")
	}

	if statusCode != http.StatusOK {
		return nil, eris.Errorf("quote: unexpected status %d: %s", statusCode, string(body))
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "quote: unmarshal response")
	}

	if result.GrossCost <= 0 || result.NetInvestment < 0 {
		return nil, eris.Errorf("quote: malformed payload: gross=%.2f net=%.2f", result.GrossCost, result.NetInvestment)
	}

	return &result, nil
}
