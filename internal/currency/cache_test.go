package currency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LSkevi/PieTracker/internal/config"
)

func TestConvert_Identity(t *testing.T) {
	for _, c := range Supported() {
		got, err := Convert(42.37, c.Code, c.Code, staticRates)
		if err != nil {
			t.Fatalf("Convert(%s, %s): %v", c.Code, c.Code, err)
		}
		if got != 42.37 {
			t.Errorf("Convert(42.37, %s, %s) = %v, want 42.37", c.Code, c.Code, got)
		}
	}
}

func TestConvert_ThroughBase(t *testing.T) {
	rates := map[string]float64{"EUR": 1.0, "USD": 2.0, "CAD": 4.0}

	got, err := Convert(10, "USD", "CAD", rates)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 20 {
		t.Errorf("Convert(10, USD, CAD) = %v, want 20", got)
	}

	got, err = Convert(10, "CAD", "EUR", rates)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 2.5 {
		t.Errorf("Convert(10, CAD, EUR) = %v, want 2.5", got)
	}
}

func TestConvert_RoundsToTwoDecimals(t *testing.T) {
	rates := map[string]float64{"EUR": 1.0, "USD": 3.0}

	got, err := Convert(1, "USD", "EUR", rates)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 0.33 {
		t.Errorf("Convert(1, USD, EUR) = %v, want 0.33", got)
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	if _, err := Convert(1, "XXX", "EUR", staticRates); err == nil {
		t.Error("unknown from-currency should error")
	}
	if _, err := Convert(1, "EUR", "XXX", staticRates); err == nil {
		t.Error("unknown to-currency should error")
	}
}

func TestCache_FetchAndReuse(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("access_key") != "k" {
			t.Errorf("missing access_key")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"rates":   map[string]float64{"USD": 1.1, "CAD": 1.5},
		})
	}))
	defer srv.Close()

	cache := NewCache(config.CurrencyConfig{APIURL: srv.URL, AccessKey: "k", RefreshHours: 8})

	rates := cache.Rates(context.Background())
	if rates["USD"] != 1.1 {
		t.Errorf("USD rate = %v, want 1.1", rates["USD"])
	}
	if rates[BaseCode] != 1.0 {
		t.Errorf("base rate = %v, want 1.0", rates[BaseCode])
	}

	// fresh cache: no second fetch
	cache.Rates(context.Background())
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (cache should be reused within the interval)", calls)
	}
}

func TestCache_RefreshAfterInterval(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"rates":   map[string]float64{"USD": 1.1},
		})
	}))
	defer srv.Close()

	cache := NewCache(config.CurrencyConfig{APIURL: srv.URL, AccessKey: "k", RefreshHours: 8})

	cache.Rates(context.Background())
	cache.fetchedAt = time.Now().Add(-9 * time.Hour) // age the cache past the interval
	cache.Rates(context.Background())

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (stale cache should refetch)", calls)
	}
}

func TestCache_FallbackOnFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := NewCache(config.CurrencyConfig{APIURL: srv.URL, AccessKey: "k", RefreshHours: 8})

	rates := cache.Rates(context.Background())
	if rates["CAD"] != staticRates["CAD"] {
		t.Errorf("failure should serve the static table, got CAD=%v", rates["CAD"])
	}
	if !cache.fetchedAt.IsZero() {
		t.Error("failed fetch must not advance the cache timestamp")
	}

	// timestamp untouched, so the next call retries the API
	cache.Rates(context.Background())
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (failure must not be cached)", calls)
	}
}

func TestCache_FallbackOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	cache := NewCache(config.CurrencyConfig{APIURL: srv.URL, AccessKey: "k", RefreshHours: 8})

	rates := cache.Rates(context.Background())
	if rates["EUR"] != 1.0 {
		t.Errorf("fallback table should carry the base rate, got %v", rates["EUR"])
	}
	if !cache.fetchedAt.IsZero() {
		t.Error("success=false must not advance the cache timestamp")
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("CAD") {
		t.Error("CAD should be supported")
	}
	if IsSupported("cad") {
		t.Error("codes are case-sensitive, lowercase should not match")
	}
	if IsSupported("XYZ") {
		t.Error("XYZ should not be supported")
	}
}
