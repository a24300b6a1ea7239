// Package fmp is a minimal Financial Modeling Prep client for daily
// historical close prices.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dkellis099/Model-Screener/internal/domain/stock"
)

// DefaultBaseURL is the FMP v3 REST root.
const DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

// HistoryWindow is how many trading sessions of history the dashboard
// charts: roughly six months.
const HistoryWindow = 126

// Client handles Financial Modeling Prep API requests. The API key is a
// query-string credential supplied by configuration.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL falls back to the public
// FMP endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// historicalResponse mirrors the historical-price-full payload. The
// historical array arrives newest-first; a missing key decodes to nil,
// which callers treat as "no data" rather than an error.
type historicalResponse struct {
	Symbol     string            `json:"symbol"`
	Historical []historicalEntry `json:"historical"`
}

type historicalEntry struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// GetPriceHistory fetches the daily close series for symbol and returns
// the most recent HistoryWindow sessions in chronological order, each
// mapped to a short month/day label and its closing price.
func (c *Client) GetPriceHistory(ctx context.Context, symbol string) ([]stock.ChartPoint, error) {
	endpoint := fmt.Sprintf("%s/historical-price-full/%s?apikey=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FMP API error: status=%d symbol=%s", resp.StatusCode, symbol)
	}

	var parsed historicalResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return reshape(parsed.Historical), nil
}

// reshape takes the newest-first entries, keeps the most recent
// HistoryWindow of them, and reverses to chronological ascending order.
func reshape(entries []historicalEntry) []stock.ChartPoint {
	if len(entries) > HistoryWindow {
		entries = entries[:HistoryWindow]
	}

	points := make([]stock.ChartPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		points = append(points, stock.ChartPoint{
			Date:  shortLabel(entries[i].Date),
			Price: entries[i].Close,
		})
	}
	return points
}

// shortLabel converts an ISO date to a "Jan 2" axis label. Unparseable
// dates pass through unchanged.
func shortLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
