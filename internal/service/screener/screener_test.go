package screener

import (
	"reflect"
	"testing"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

func sampleRecords() []stock.Record {
	return []stock.Record{
		{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Tech", CombinedRank: 3},
		{Symbol: "MSFT", Name: "Microsoft", Sector: "Tech", CombinedRank: 5},
		{Symbol: "XOM", Name: "Exxon Mobil", Sector: "Energy", CombinedRank: 7},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare", CombinedRank: 9},
		{Symbol: "CVX", Name: "Chevron", Sector: "Energy", CombinedRank: 11},
	}
}

func TestDeriveSectors(t *testing.T) {
	t.Run("distinct sorted with All first", func(t *testing.T) {
		got := DeriveSectors(sampleRecords())
		want := []string{"All", "Energy", "Healthcare", "Tech"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DeriveSectors = %v, want %v", got, want)
		}
	})

	t.Run("empty input yields only All", func(t *testing.T) {
		got := DeriveSectors(nil)
		if !reflect.DeepEqual(got, []string{"All"}) {
			t.Errorf("DeriveSectors(nil) = %v, want [All]", got)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		records := []stock.Record{
			{Symbol: "A", Sector: "Tech"},
			{Symbol: "B", Sector: "Tech"},
			{Symbol: "C", Sector: "Tech"},
		}
		got := DeriveSectors(records)
		if !reflect.DeepEqual(got, []string{"All", "Tech"}) {
			t.Errorf("DeriveSectors = %v, want [All Tech]", got)
		}
	})
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	t.Run("All is identity", func(t *testing.T) {
		got := Filter(records, SectorAll)
		if len(got) != len(records) {
			t.Fatalf("Filter All returned %d records, want %d", len(got), len(records))
		}
		for i := range got {
			if got[i].Symbol != records[i].Symbol {
				t.Errorf("order changed at %d: got %s, want %s", i, got[i].Symbol, records[i].Symbol)
			}
		}
	})

	t.Run("sector match preserves relative order", func(t *testing.T) {
		got := Filter(records, "Energy")
		if len(got) != 2 {
			t.Fatalf("expected 2 Energy records, got %d", len(got))
		}
		if got[0].Symbol != "XOM" || got[1].Symbol != "CVX" {
			t.Errorf("order not preserved: got %s, %s", got[0].Symbol, got[1].Symbol)
		}
		for _, r := range got {
			if r.Sector != "Energy" {
				t.Errorf("record %s has sector %s", r.Symbol, r.Sector)
			}
		}
	})

	t.Run("unknown sector yields empty", func(t *testing.T) {
		if got := Filter(records, "Utilities"); len(got) != 0 {
			t.Errorf("expected empty result, got %d records", len(got))
		}
	})
}

func TestPaginate(t *testing.T) {
	records := sampleRecords()

	t.Run("slices the prefix", func(t *testing.T) {
		got := Paginate(records, 2)
		if len(got) != 2 || got[0].Symbol != "AAPL" || got[1].Symbol != "MSFT" {
			t.Errorf("Paginate(2) = %v", got)
		}
	})

	t.Run("count past end clamps", func(t *testing.T) {
		if got := Paginate(records, 100); len(got) != len(records) {
			t.Errorf("expected %d records, got %d", len(records), len(got))
		}
	})

	t.Run("negative count clamps to zero", func(t *testing.T) {
		if got := Paginate(records, -1); len(got) != 0 {
			t.Errorf("expected empty result, got %d records", len(got))
		}
	})
}

func TestLoadMore(t *testing.T) {
	t.Run("advances by page size", func(t *testing.T) {
		if got := LoadMore(30, 30, 100); got != 60 {
			t.Errorf("LoadMore(30,30,100) = %d, want 60", got)
		}
	})

	t.Run("clamps to total", func(t *testing.T) {
		if got := LoadMore(90, 30, 100); got != 100 {
			t.Errorf("LoadMore(90,30,100) = %d, want 100", got)
		}
	})

	t.Run("idempotent at total", func(t *testing.T) {
		if got := LoadMore(100, 30, 100); got != 100 {
			t.Errorf("LoadMore(100,30,100) = %d, want 100", got)
		}
	})

	t.Run("monotonic convergence", func(t *testing.T) {
		count := 30
		prev := count
		for i := 0; i < 10; i++ {
			count = LoadMore(count, 30, 95)
			if count < prev {
				t.Fatalf("displayCount decreased: %d -> %d", prev, count)
			}
			prev = count
		}
		if count != 95 {
			t.Errorf("displayCount converged to %d, want 95", count)
		}
	})
}
