// Package yahoo implements the benchmark source on top of the Yahoo
// Finance v8 chart API, serving daily open/close bars for an index
// symbol such as ^NSEI.
package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundbench"
	"github.com/etnz/fundbench/date"
)

// DefaultSymbol is the NIFTY 50 index.
const DefaultSymbol = "^NSEI"

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches daily bars for one symbol.
type Client struct {
	Symbol  string
	BaseURL string
	http    *http.Client
}

// New returns a Client for the given symbol, or for DefaultSymbol when
// empty.
func New(symbol string) *Client {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Client{Symbol: symbol, BaseURL: defaultBaseURL, http: new(http.Client)}
}

// Fetch returns the symbol's daily bars covering from..to, both ends
// included. Bars are ordered by date ascending.
func (c *Client) Fetch(from, to date.Date) ([]fundbench.DailyBar, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.BaseURL, url.PathEscape(c.Symbol), from.Unix(), to.Add(1).Unix())

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching chart for %s: %w", c.Symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	bars, err := parseChart(body)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", c.Symbol, err)
	}
	return bars, nil
}

// parseChart extracts daily bars from a v8 chart payload. The payload
// is deeply nested and loosely typed, so it is navigated by jsonpath.
// A payload without an open or a close series is an error; null
// entries (non-trading gaps) are skipped.
func parseChart(body []byte) ([]fundbench.DailyBar, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, err
	}

	timestamps, err := floats("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no timestamp series: %w", err)
	}
	opens, err := floats("$.chart.result[0].indicators.quote[0].open", jobj)
	if err != nil {
		return nil, fmt.Errorf("no open series: %w", err)
	}
	closes, err := floats("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("no close series: %w", err)
	}
	if len(opens) != len(timestamps) || len(closes) != len(timestamps) {
		return nil, fmt.Errorf("series lengths differ: %d timestamps, %d opens, %d closes",
			len(timestamps), len(opens), len(closes))
	}

	// Timestamps are epoch seconds; the trading date is the exchange's
	// local calendar day.
	zone := time.UTC
	if off, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		if seconds, ok := off.(float64); ok {
			zone = time.FixedZone("exchange", int(seconds))
		}
	}

	var bars []fundbench.DailyBar
	for i, ts := range timestamps {
		if ts == nil || opens[i] == nil || closes[i] == nil {
			continue
		}
		open, close := *opens[i], *closes[i]
		if open == 0 {
			continue
		}
		on := date.New(time.Unix(int64(*ts), 0).In(zone).Date())
		bars = append(bars, fundbench.NewDailyBar(on, open, close))
	}
	return bars, nil
}

// floats evaluates a jsonpath expected to yield a JSON array of
// numbers, keeping nulls as nil entries.
func floats(path string, jobj any) ([]*float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an array", path)
	}
	out := make([]*float64, len(jlist))
	for i, jv := range jlist {
		if v, ok := jv.(float64); ok {
			value := v
			out[i] = &value
		}
	}
	return out, nil
}
