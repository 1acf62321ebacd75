// Package storage implements the file-backed rate cache and conversion
// history stores. Both rewrite their whole file on every write; there is
// no locking, two concurrent processes race last-writer-wins.
package storage

const (
	DefaultRatesCacheFile = "rates_cache.json"
	DefaultHistoryFile    = "conversion_history.json"

	fileMode = 0o644
)
