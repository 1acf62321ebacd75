// Package services wires the rate provider and the file stores into the
// conversion workflow.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	converter "github.com/lyssadev/currency-converter"
	"github.com/lyssadev/currency-converter/registry"
)

type ConversionService struct {
	Provider converter.RateProvider
	Cache    converter.RateCache
	History  converter.HistoryStore
}

// Convert performs one conversion. Both codes are validated against the
// registry before any network or cache access. Online mode fetches the
// live rate and writes it through to the cache; offline mode reads the
// cache and never touches the provider.
func (s ConversionService) Convert(ctx context.Context, amount float64, from, to string, mode converter.Mode) (converter.Conversion, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	for _, code := range []string{from, to} {
		if !registry.IsSupported(code) {
			return converter.Conversion{}, fmt.Errorf("%w: %s", converter.ErrUnsupportedCurrency, code)
		}
	}

	var rate float64
	var err error

	if mode == converter.Offline {
		rate, err = s.cachedRate(from, to)
	} else {
		rate, err = s.liveRate(ctx, from, to)
	}

	if err != nil {
		return converter.Conversion{}, err
	}

	return converter.Conversion{
		Timestamp:    time.Now(),
		FromAmount:   amount,
		FromCurrency: from,
		ToCurrency:   to,
		Result:       multiply(amount, rate),
	}, nil
}

// SaveToHistory appends a finished conversion to the history store.
func (s ConversionService) SaveToHistory(conversion converter.Conversion) error {
	return s.History.Append(conversion)
}

func (s ConversionService) liveRate(ctx context.Context, from, to string) (float64, error) {
	rate, err := s.Provider.FetchRate(ctx, from, to)
	if err != nil {
		return 0, err
	}

	// Write-through so a later offline run can reuse the rate.
	if err := s.Cache.PutRate(converter.PairKey(from, to), rate); err != nil {
		return 0, err
	}

	return rate, nil
}

func (s ConversionService) cachedRate(from, to string) (float64, error) {
	rates, err := s.Cache.Load()
	if err != nil {
		return 0, err
	}

	if len(rates) == 0 {
		return 0, converter.ErrNoCachedRates
	}

	rate, ok := rates[converter.PairKey(from, to)]
	if !ok {
		return 0, fmt.Errorf("%w: no cached rate for %s to %s", converter.ErrRateUnavailable, from, to)
	}

	return rate, nil
}

func multiply(amount, rate float64) float64 {
	result, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()

	return result
}
