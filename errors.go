package converter

import "errors"

var (
	ErrUnsupportedCurrency = errors.New("currency is not supported")
	ErrNetworkFailure      = errors.New("unable to reach exchange rate service")
	ErrBadResponse         = errors.New("invalid response from exchange rate service")
	ErrRateUnavailable     = errors.New("rate is not available")
	ErrNoCachedRates       = errors.New("no cached rates available, run in online mode first")
)
