package converter

import "context"

type (
	// RateProvider resolves the current exchange rate for a currency
	// pair. The returned rate means "1 unit of from equals rate units
	// of to".
	RateProvider interface {
		FetchRate(ctx context.Context, from, to string) (float64, error)
	}
)
