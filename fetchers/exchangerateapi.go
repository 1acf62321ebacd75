// Package fetchers implements the remote rate providers.
package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	converter "github.com/lyssadev/currency-converter"
)

const (
	ExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest"

	DefaultTimeout = 10 * time.Second
)

type (
	// ExchangeRateAPIFetcher pulls the full rate table for a base
	// currency from exchangerate-api.com with a single GET per call.
	ExchangeRateAPIFetcher struct {
		URL    string
		Client *http.Client
	}

	rateTableResponse struct {
		Base  string             `json:"base,omitempty"`
		Rates map[string]float64 `json:"rates,omitempty"`
	}
)

// FetchRate requests the rate table for the base currency and extracts
// the single target rate. Every failure maps to one of the converter
// error kinds; nothing is retried.
func (e ExchangeRateAPIFetcher) FetchRate(ctx context.Context, from, to string) (float64, error) {
	url := e.URL
	if url == "" {
		url = ExchangeRateAPIURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", url, from), nil)
	if err != nil {
		return 0, err
	}

	req.Header.Add("Accept", "application/json")

	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", converter.ErrNetworkFailure, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", converter.ErrBadResponse, res.StatusCode)
	}

	var table rateTableResponse
	if err := json.NewDecoder(res.Body).Decode(&table); err != nil {
		return 0, fmt.Errorf("%w: %v", converter.ErrBadResponse, err)
	}

	if table.Rates == nil {
		return 0, fmt.Errorf("%w: rates field is missing", converter.ErrBadResponse)
	}

	rate, ok := table.Rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s to %s", converter.ErrRateUnavailable, from, to)
	}

	return rate, nil
}
