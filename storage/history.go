package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	converter "github.com/lyssadev/currency-converter"
)

type FileHistoryStore struct {
	path string
}

func NewFileHistoryStore(path string) *FileHistoryStore {
	if path == "" {
		path = DefaultHistoryFile
	}

	return &FileHistoryStore{path: path}
}

// LoadAll returns every saved conversion in insertion order. A missing
// file is the expected initial state and yields an empty history; an
// unparsable file is an error, since silently dropping saved history
// would lose data.
func (h *FileHistoryStore) LoadAll() ([]converter.Conversion, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return []converter.Conversion{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history []converter.Conversion
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}

	return history, nil
}

// Append rewrites the whole file with the record added at the end.
// Records are never mutated or removed.
func (h *FileHistoryStore) Append(conversion converter.Conversion) error {
	history, err := h.LoadAll()
	if err != nil {
		return err
	}

	history = append(history, conversion)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.path, data, fileMode)
}
