package converter

import "context"

type (
	Converter interface {
		Convert(ctx context.Context, amount float64, from, to string, mode Mode) (Conversion, error)
		SaveToHistory(conversion Conversion) error
	}
)
