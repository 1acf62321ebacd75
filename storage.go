package converter

type (
	// RateCache persists fetched rates between runs so offline mode has
	// something to read. Missing backing data reads as empty, never as
	// an error.
	RateCache interface {
		Load() (map[string]float64, error)
		Save(rates map[string]float64) error
		GetRate(pair string) (float64, bool, error)
		PutRate(pair string, rate float64) error
	}

	// HistoryStore keeps an append-only record of saved conversions in
	// insertion order.
	HistoryStore interface {
		Append(conversion Conversion) error
		LoadAll() ([]Conversion, error)
	}
)
