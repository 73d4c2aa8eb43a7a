package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client fetches the latest conversion rates for one base currency from the
// external exchange-rate service.
type Client struct {
	baseURL string
	apiKey  string
	base    string
	http    *http.Client
}

func NewClient(baseURL, apiKey, baseCurrency string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		base:    baseCurrency,
		// Don't let a slow rate service block the refresh loop.
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns the full rate map keyed by currency code, quoted against the
// client's base currency.
func (c *Client) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, c.base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var payload struct {
		ConversionRates map[string]json.Number `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding rate response: %w", err)
	}
	if payload.ConversionRates == nil {
		return nil, fmt.Errorf("rate response missing conversion_rates")
	}

	rates := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for currency, raw := range payload.ConversionRates {
		d, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("bad rate for %s: %w", currency, err)
		}
		rates[currency] = d
	}
	return rates, nil
}
