// Package refrate fetches a central-bank benchmark interest rate (such as
// the Brazilian Selic) for the rent-vs-buy comparator. The engine treats the
// benchmark as just another numeric input: when the upstream series or the
// cache is unavailable, a configured fallback rate applies and simulations
// keep running.
package refrate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultSeriesURL is the BCB SGS daily Selic target series, latest value.
const DefaultSeriesURL = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.11/dados/ultimos/1?formato=json"

// DefaultFallbackRate is the annual percentage used when the benchmark
// cannot be fetched.
const DefaultFallbackRate = 10.0

const cacheKey = "refrate:benchmark"

// seriesEntry mirrors one record of the SGS JSON payload. The value comes
// as a string and may use a decimal comma.
type seriesEntry struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Config holds the client's knobs; zero values select defaults.
type Config struct {
	SeriesURL    string
	FallbackRate float64
	CacheTTL     time.Duration
	HTTPClient   *http.Client
	Cache        Cache
}

// Client fetches the benchmark rate with a read-through cache.
type Client struct {
	httpClient *http.Client
	cache      Cache
	seriesURL  string
	fallback   float64
	ttl        time.Duration
}

// NewClient builds a benchmark client from the config.
func NewClient(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		cache:      cfg.Cache,
		seriesURL:  cfg.SeriesURL,
		fallback:   cfg.FallbackRate,
		ttl:        cfg.CacheTTL,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.cache == nil {
		c.cache = NewMemoryCache()
	}
	if c.seriesURL == "" {
		c.seriesURL = DefaultSeriesURL
	}
	if c.fallback == 0 {
		c.fallback = DefaultFallbackRate
	}
	if c.ttl == 0 {
		c.ttl = time.Hour
	}
	return c
}

// Benchmark returns the current annual benchmark rate in percent, serving
// from cache when possible.
func (c *Client) Benchmark(ctx context.Context) (float64, error) {
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil {
			return rate, nil
		}
	}

	rate, err := c.fetch(ctx)
	if err != nil {
		return 0, err
	}
	// Best effort: a failed cache write only costs an extra fetch later.
	_ = c.cache.Set(ctx, cacheKey, strconv.FormatFloat(rate, 'f', -1, 64), c.ttl)
	return rate, nil
}

// BenchmarkOrFallback never fails: upstream or cache trouble degrades to
// the configured fallback rate.
func (c *Client) BenchmarkOrFallback(ctx context.Context) float64 {
	rate, err := c.Benchmark(ctx)
	if err != nil {
		return c.fallback
	}
	return rate
}

// FallbackRate exposes the configured fallback.
func (c *Client) FallbackRate() float64 {
	return c.fallback
}

func (c *Client) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.seriesURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building benchmark request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching benchmark series: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("benchmark series returned status %d", resp.StatusCode)
	}

	var entries []seriesEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decoding benchmark series: %w", err)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("benchmark series is empty")
	}

	last := entries[len(entries)-1]
	rate, err := strconv.ParseFloat(strings.ReplaceAll(last.Value, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("benchmark value %q is not numeric: %w", last.Value, err)
	}
	return rate, nil
}
