package storage

import (
	"encoding/json"
	"os"
)

type FileRateCache struct {
	path string
}

func NewFileRateCache(path string) *FileRateCache {
	if path == "" {
		path = DefaultRatesCacheFile
	}

	return &FileRateCache{path: path}
}

// Load reads the full cache. A missing or unparsable file reads as an
// empty cache: a corrupt cache only costs a refetch, so it must never
// block a conversion.
func (c *FileRateCache) Load() (map[string]float64, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]float64{}, nil
	}

	rates := make(map[string]float64)
	if err := json.Unmarshal(data, &rates); err != nil {
		return map[string]float64{}, nil
	}

	return rates, nil
}

// Save overwrites the whole file with the given mapping.
func (c *FileRateCache) Save(rates map[string]float64) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, fileMode)
}

func (c *FileRateCache) GetRate(pair string) (float64, bool, error) {
	rates, err := c.Load()
	if err != nil {
		return 0, false, err
	}

	rate, ok := rates[pair]

	return rate, ok, nil
}

// PutRate merges one rate into the existing mapping and persists it. A
// later write for the same pair overwrites the earlier value.
func (c *FileRateCache) PutRate(pair string, rate float64) error {
	rates, err := c.Load()
	if err != nil {
		return err
	}

	rates[pair] = rate

	return c.Save(rates)
}
