// Package store loads and holds the pre-ranked stock dataset. The dataset
// is read once from a JSON file at startup and is immutable afterwards;
// reloading swaps the whole snapshot under a write lock.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
	"github.com/dkellis099/Model-Screener/internal/service/screener"
)

// Store holds the loaded ranking snapshot plus the derived sector index.
// The sector index is recomputed only when the snapshot changes.
type Store struct {
	mu       sync.RWMutex
	records  []stock.Record
	bySymbol map[string]stock.Record
	sectors  []string
	loaded   bool

	path string
}

// New creates a Store reading from the given dataset path. Nothing is
// loaded until Load is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the dataset file and replaces the snapshot. A read or parse
// failure leaves an empty snapshot with loading finalized and returns the
// error; callers log it and carry on serving the empty state.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.install(nil)
		return fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	var records []stock.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.install(nil)
		return fmt.Errorf("parse dataset %s: %w", s.path, err)
	}

	s.install(records)
	log.Info().
		Str("path", s.path).
		Int("records", len(records)).
		Int("sectors", len(s.Sectors())-1).
		Msg("Dataset loaded")
	return nil
}

func (s *Store) install(records []stock.Record) {
	bySymbol := make(map[string]stock.Record, len(records))
	for _, r := range records {
		bySymbol[r.Symbol] = r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.bySymbol = bySymbol
	s.sectors = screener.DeriveSectors(records)
	s.loaded = true
}

// Records returns the loaded snapshot in dataset order. Callers must treat
// the slice as read-only.
func (s *Store) Records() []stock.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Sectors returns the cached sector index: "All" followed by the distinct
// sectors sorted ascending.
func (s *Store) Sectors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sectors
}

// Lookup finds a record by its symbol.
func (s *Store) Lookup(symbol string) (stock.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.bySymbol[symbol]
	return r, ok
}

// Len is the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Loaded reports whether an initial load attempt has finished, successful
// or not.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
