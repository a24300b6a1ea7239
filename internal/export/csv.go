// Package export serializes the currently visible ranking slice to CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
	"github.com/dkellis099/Model-Screener/internal/pkg/format"
)

// FileName is the download name for exported rankings.
const FileName = "magic_formula_stocks.csv"

// ContentType is the MIME type of the export payload.
const ContentType = "text/csv"

var header = []string{"Rank", "Symbol", "Company", "Sector", "Market Cap", "Earnings Yield %", "ROC %"}

// WriteCSV writes the visible records as CSV. The Rank column is the
// 1-based position within the visible slice, not the stored combined rank,
// and Market Cap carries the bucketed display string. Fields with embedded
// commas or quotes are quoted per RFC 4180. An empty slice produces a
// header-only CSV.
func WriteCSV(w io.Writer, visible []stock.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, r := range visible {
		row := []string{
			strconv.Itoa(i + 1),
			r.Symbol,
			r.Name,
			r.Sector,
			format.MarketCap(r.MarketCap),
			format.Fixed(r.EarningsYield),
			format.Fixed(r.ReturnOnCapital),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV renders the visible records as a CSV string without a trailing
// newline, so header plus N records is exactly N+1 lines.
func ToCSV(visible []stock.Record) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, visible); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
