package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleJSON = `[
	{"symbol": "AAPL", "name": "Apple Inc.", "sector": "Tech", "market_cap": 2500000000000, "earnings_yield": 4.5, "return_on_capital": 55.2, "ey_rank": 20, "roc_rank": 3, "combined_rank": 23},
	{"symbol": "XOM", "name": "Exxon Mobil", "sector": "Energy", "market_cap": 450000000000, "earnings_yield": 12.1, "return_on_capital": 18.9, "ey_rank": 2, "roc_rank": 15, "combined_rank": 17},
	{"symbol": "MSFT", "name": "Microsoft", "sector": "Tech", "market_cap": 3000000000000, "earnings_yield": 3.8, "return_on_capital": 48.0, "ey_rank": 25, "roc_rank": 5, "combined_rank": 30}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads records in dataset order", func(t *testing.T) {
		s := New(writeDataset(t, sampleJSON))
		if err := s.Load(); err != nil {
			t.Fatal(err)
		}

		records := s.Records()
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Symbol != "AAPL" || records[2].Symbol != "MSFT" {
			t.Errorf("dataset order not preserved: %s ... %s", records[0].Symbol, records[2].Symbol)
		}
		if !s.Loaded() {
			t.Error("store should report loaded")
		}
	})

	t.Run("sector index cached with All first", func(t *testing.T) {
		s := New(writeDataset(t, sampleJSON))
		if err := s.Load(); err != nil {
			t.Fatal(err)
		}

		want := []string{"All", "Energy", "Tech"}
		if got := s.Sectors(); !reflect.DeepEqual(got, want) {
			t.Errorf("Sectors = %v, want %v", got, want)
		}
	})

	t.Run("missing file yields empty finalized snapshot", func(t *testing.T) {
		s := New(filepath.Join(t.TempDir(), "missing.json"))
		if err := s.Load(); err == nil {
			t.Fatal("expected error for missing file")
		}

		if s.Len() != 0 {
			t.Errorf("expected empty snapshot, got %d records", s.Len())
		}
		if !s.Loaded() {
			t.Error("loading should be finalized even on failure")
		}
		if got := s.Sectors(); !reflect.DeepEqual(got, []string{"All"}) {
			t.Errorf("Sectors = %v, want [All]", got)
		}
	})

	t.Run("parse failure yields empty finalized snapshot", func(t *testing.T) {
		s := New(writeDataset(t, "{not json"))
		if err := s.Load(); err == nil {
			t.Fatal("expected parse error")
		}
		if s.Len() != 0 || !s.Loaded() {
			t.Errorf("expected empty finalized snapshot, got %d records loaded=%v", s.Len(), s.Loaded())
		}
	})
}

func TestLookup(t *testing.T) {
	s := New(writeDataset(t, sampleJSON))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if r, ok := s.Lookup("XOM"); !ok || r.Name != "Exxon Mobil" {
		t.Errorf("Lookup(XOM) = %+v, %v", r, ok)
	}
	if _, ok := s.Lookup("ZZZZ"); ok {
		t.Error("Lookup of unknown symbol should miss")
	}
}
