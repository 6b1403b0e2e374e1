package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/LSkevi/PieTracker/internal/config"
)

// staticRates is the hardcoded EUR-base fallback used when the live
// fetch fails. Values are approximate; they only bridge API outages.
var staticRates = map[string]float64{
	"EUR": 1.0,
	"CAD": 1.47,
	"USD": 1.09,
	"GBP": 0.85,
	"JPY": 161.0,
	"AUD": 1.64,
	"CHF": 0.96,
	"CNY": 7.80,
	"INR": 90.5,
	"BRL": 5.95,
}

// Cache is a best-effort exchange-rate cache: at most one live refresh
// per interval, static fallback on failure, no invalidation push.
type Cache struct {
	mu        sync.Mutex
	client    *http.Client
	apiURL    string
	accessKey string
	refresh   time.Duration
	rates     map[string]float64
	fetchedAt time.Time
}

func NewCache(cfg config.CurrencyConfig) *Cache {
	hours := cfg.RefreshHours
	if hours <= 0 {
		hours = 8
	}
	return &Cache{
		client:    &http.Client{Timeout: 10 * time.Second},
		apiURL:    cfg.APIURL,
		accessKey: cfg.AccessKey,
		refresh:   time.Duration(hours) * time.Hour,
	}
}

type ratesResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

// Rates returns the EUR-base rate table. A fresh cache is served as-is;
// a stale or empty one triggers a live fetch that overwrites rates and
// timestamp. On fetch failure the static table is returned and the
// timestamp is left untouched, so the next call retries.
func (c *Cache) Rates(ctx context.Context) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && time.Since(c.fetchedAt) < c.refresh {
		return copyRates(c.rates)
	}

	fetched, err := c.fetch(ctx)
	if err != nil {
		return copyRates(staticRates)
	}

	c.rates = fetched
	c.fetchedAt = time.Now()
	return copyRates(c.rates)
}

func (c *Cache) fetch(ctx context.Context) (map[string]float64, error) {
	u, err := url.Parse(c.apiURL + "/latest")
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	q := u.Query()
	q.Set("access_key", c.accessKey)
	q.Set("symbols", SymbolList())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate api status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	if !body.Success || len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate api reported failure")
	}

	rates := body.Rates
	rates[BaseCode] = 1.0
	return rates, nil
}

// Convert converts through the base currency and rounds to 2 decimals.
// Identity conversions return the amount unchanged.
func Convert(amount float64, from, to string, rates map[string]float64) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("no rate for %s", from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s", to)
	}
	converted := amount / fromRate * toRate
	return math.Round(converted*100) / 100, nil
}

// Convert is the cache-backed variant of the package-level Convert.
func (c *Cache) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	return Convert(amount, from, to, c.Rates(ctx))
}

func copyRates(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
