package screener

import "github.com/dkellis099/Model-Screener/internal/domain/stock"

// ViewState is the single owned view of one browsing session: the selected
// sector, the pagination cursor, and which stock (if any) has its chart
// open. All mutations go through the methods below so the transition rules
// live in one place.
//
// Generation increments on every chart open/close. A chart fetch captures
// the generation it was started under and its result is only committed if
// that generation is still current, which is what keeps a slow response
// for a previously selected stock from overwriting the active view.
type ViewState struct {
	SelectedSector string
	DisplayCount   int
	ActiveSymbol   string
	Generation     uint64

	pageSize int
}

// NewViewState returns the initial view: all sectors, one page visible, no
// chart open.
func NewViewState() *ViewState {
	return &ViewState{
		SelectedSector: SectorAll,
		DisplayCount:   DefaultPageSize,
		pageSize:       DefaultPageSize,
	}
}

// SelectSector switches the sector filter and resets the display cursor to
// one page. The reset discards pagination progress on purpose; it is the
// UX policy, not an accident of state staleness.
func (v *ViewState) SelectSector(sector string) {
	v.SelectedSector = sector
	v.DisplayCount = v.pageSize
}

// LoadMore advances the display cursor by one page, clamped to the filtered
// total.
func (v *ViewState) LoadMore(total int) {
	v.DisplayCount = LoadMore(v.DisplayCount, v.pageSize, total)
}

// OpenChart marks symbol as the active chart selection and returns the
// generation token the resulting fetch must present to commit its result.
func (v *ViewState) OpenChart(symbol string) uint64 {
	v.Generation++
	v.ActiveSymbol = symbol
	return v.Generation
}

// CloseChart clears the chart selection. Bumping the generation here is
// what prevents an in-flight fetch from resurrecting a closed view.
func (v *ViewState) CloseChart() {
	v.Generation++
	v.ActiveSymbol = ""
}

// Current reports whether a fetch started under gen for symbol may still
// commit its result.
func (v *ViewState) Current(gen uint64, symbol string) bool {
	return gen == v.Generation && symbol == v.ActiveSymbol
}

// Visible applies the sector filter and pagination cursor to the dataset.
func (v *ViewState) Visible(records []stock.Record) []stock.Record {
	return Paginate(Filter(records, v.SelectedSector), v.DisplayCount)
}

// FilteredTotal is the number of records the current sector selection
// matches, before pagination.
func (v *ViewState) FilteredTotal(records []stock.Record) int {
	return len(Filter(records, v.SelectedSector))
}
