// Package screener implements the data-presentation pipeline over the
// loaded ranking dataset: sector index derivation, sector filtering, and
// cursor pagination. All operations are order-preserving; the dataset is
// pre-sorted upstream by combined rank and is never re-sorted here.
package screener

import (
	"sort"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

// SectorAll is the wildcard sector that selects every record.
const SectorAll = "All"

// DefaultPageSize is how many rows a fresh view shows and how many each
// load-more step adds.
const DefaultPageSize = 30

// DeriveSectors returns the distinct sectors of the dataset sorted
// ascending, with the "All" wildcard always first. Empty input yields
// ["All"].
func DeriveSectors(records []stock.Record) []string {
	seen := make(map[string]struct{}, len(records))
	distinct := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Sector]; ok {
			continue
		}
		seen[r.Sector] = struct{}{}
		distinct = append(distinct, r.Sector)
	}
	sort.Strings(distinct)

	sectors := make([]string, 0, len(distinct)+1)
	sectors = append(sectors, SectorAll)
	return append(sectors, distinct...)
}

// Filter returns the subsequence of records in the given sector, preserving
// relative order. The "All" sector returns the input unchanged.
func Filter(records []stock.Record, sector string) []stock.Record {
	if sector == SectorAll {
		return records
	}
	filtered := make([]stock.Record, 0, len(records))
	for _, r := range records {
		if r.Sector == sector {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Paginate returns the first displayCount records of the filtered slice,
// clamped to its length. Counts past the end are not an error.
func Paginate(filtered []stock.Record, displayCount int) []stock.Record {
	if displayCount < 0 {
		displayCount = 0
	}
	if displayCount > len(filtered) {
		displayCount = len(filtered)
	}
	return filtered[:displayCount]
}

// LoadMore advances the display cursor by pageSize, clamped to total. The
// result is non-decreasing and stops moving once it reaches total.
func LoadMore(displayCount, pageSize, total int) int {
	next := displayCount + pageSize
	if next > total {
		next = total
	}
	if next < displayCount {
		return displayCount
	}
	return next
}
