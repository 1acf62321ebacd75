package converter

import (
	"fmt"
	"time"
)

type (
	// Mode selects where a conversion takes its rate from.
	Mode int

	// Conversion is a single finished conversion, shaped the way it is
	// persisted in the history file.
	Conversion struct {
		Timestamp    time.Time `json:"timestamp"`
		FromAmount   float64   `json:"from_amount"`
		FromCurrency string    `json:"from_currency"`
		ToCurrency   string    `json:"to_currency"`
		Result       float64   `json:"result"`
	}
)

const (
	Online Mode = iota
	Offline
)

// PairKey builds the cache key for an ordered currency pair, e.g. "USD_EUR".
func PairKey(from, to string) string {
	return fmt.Sprintf("%s_%s", from, to)
}
