package forex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrRateLimited is returned when the upstream answers with its free-tier
// throttle notice instead of a rate.
var ErrRateLimited = errors.New("upstream rate limited")

// RateClient fetches live exchange rates from an Alpha Vantage style API.
type RateClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewRateClient(baseURL, apiKey string, timeout time.Duration) *RateClient {
	return &RateClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type exchangeRatePayload struct {
	Note         string `json:"Note"`
	ExchangeRate *struct {
		Rate          string `json:"5. Exchange Rate"`
		LastRefreshed string `json:"6. Last Refreshed"`
	} `json:"Realtime Currency Exchange Rate"`
}

// Rate returns the current rate for base/quote and the upstream refresh
// timestamp.
func (c *RateClient) Rate(ctx context.Context, base, quote string) (float64, string, error) {
	q := url.Values{}
	q.Set("function", "CURRENCY_EXCHANGE_RATE")
	q.Set("from_currency", base)
	q.Set("to_currency", quote)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("upstream status %d for %s/%s", resp.StatusCode, base, quote)
	}

	var payload exchangeRatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, "", err
	}
	if payload.Note != "" {
		return 0, "", ErrRateLimited
	}
	if payload.ExchangeRate == nil {
		return 0, "", fmt.Errorf("no exchange rate in response for %s/%s", base, quote)
	}
	rate, err := strconv.ParseFloat(payload.ExchangeRate.Rate, 64)
	if err != nil {
		return 0, "", fmt.Errorf("unparsable rate %q: %w", payload.ExchangeRate.Rate, err)
	}
	return rate, payload.ExchangeRate.LastRefreshed, nil
}
