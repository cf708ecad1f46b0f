package yahoo

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/fundbench/date"
)

// istOffset is the NSE's UTC offset in seconds (+05:30).
const istOffset = 19800

// chartPayload builds a minimal v8 chart body for the given series.
func chartPayload(timestamps, opens, closes string) string {
	return fmt.Sprintf(`{
  "chart": {
    "result": [
      {
        "meta": {"symbol": "^NSEI", "gmtoffset": %d},
        "timestamp": %s,
        "indicators": {"quote": [{"open": %s, "close": %s}]}
      }
    ],
    "error": null
  }
}`, istOffset, timestamps, opens, closes)
}

func TestParseChart(t *testing.T) {
	// Sessions open 09:15 local; 03:45 UTC on the same calendar day.
	d1 := date.New(2025, 8, 20)
	d2 := date.New(2025, 8, 21)
	ts1 := d1.Unix() + (9*60+15)*60 - istOffset
	ts2 := d2.Unix() + (9*60+15)*60 - istOffset

	body := chartPayload(
		fmt.Sprintf("[%d, %d]", ts1, ts2),
		"[24500.0, 24620.5]",
		"[24610.0, 24580.0]",
	)

	bars, err := parseChart([]byte(body))
	if err != nil {
		t.Fatalf("parseChart() failed: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("parseChart() returned %d bars, want 2", len(bars))
	}
	if bars[0].Date != d1 || bars[1].Date != d2 {
		t.Errorf("bars dated %s, %s, want %s, %s", bars[0].Date, bars[1].Date, d1, d2)
	}
	if bars[0].Open != 24500 || bars[0].Close != 24610 {
		t.Errorf("bar 0 = %v -> %v, want 24500 -> 24610", bars[0].Open, bars[0].Close)
	}
	want := (24610.0 - 24500.0) / 24500.0 * 100
	if math.Abs(bars[0].ChangePct-want) > 1e-12 {
		t.Errorf("bar 0 change = %v, want %v", bars[0].ChangePct, want)
	}
}

func TestParseChartExchangeDate(t *testing.T) {
	// 19:00 UTC is already the next calendar day in the exchange's zone:
	// the bar must be dated by the local day, not the UTC one.
	utcDay := date.New(2025, 8, 20)
	ts := utcDay.Unix() + 19*3600

	body := chartPayload(fmt.Sprintf("[%d]", ts), "[100.0]", "[101.0]")
	bars, err := parseChart([]byte(body))
	if err != nil {
		t.Fatalf("parseChart() failed: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("parseChart() returned %d bars, want 1", len(bars))
	}
	if want := utcDay.Add(1); bars[0].Date != want {
		t.Errorf("bar dated %s, want %s (exchange local day)", bars[0].Date, want)
	}
}

func TestParseChartSkipsNullsAndZeroOpens(t *testing.T) {
	d := date.New(2025, 8, 20)
	ts := d.Unix() + 12*3600
	body := chartPayload(
		fmt.Sprintf("[%d, %d, %d]", ts, ts+86400, ts+2*86400),
		"[100.0, null, 0]",
		"[101.0, 102.0, 103.0]",
	)

	bars, err := parseChart([]byte(body))
	if err != nil {
		t.Fatalf("parseChart() failed: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("parseChart() returned %d bars, want 1 (null and zero open skipped)", len(bars))
	}
}

func TestParseChartMissingSeries(t *testing.T) {
	noClose := `{"chart":{"result":[{"meta":{"gmtoffset":19800},"timestamp":[1],"indicators":{"quote":[{"open":[1.0]}]}}]}}`
	if _, err := parseChart([]byte(noClose)); err == nil {
		t.Error("parseChart() without a close series succeeded, want error")
	}

	empty := `{"chart":{"result":[]}}`
	if _, err := parseChart([]byte(empty)); err == nil {
		t.Error("parseChart() on an empty result succeeded, want error")
	}

	if _, err := parseChart([]byte("not json")); err == nil {
		t.Error("parseChart() on garbage succeeded, want error")
	}
}

func TestParseChartLengthMismatch(t *testing.T) {
	body := chartPayload("[1, 2]", "[100.0]", "[101.0, 102.0]")
	if _, err := parseChart([]byte(body)); err == nil {
		t.Error("parseChart() with mismatched series lengths succeeded, want error")
	}
}

func TestFetch(t *testing.T) {
	d := date.New(2025, 8, 20)
	ts := d.Unix() + 12*3600

	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, chartPayload(fmt.Sprintf("[%d]", ts), "[100.0]", "[102.0]"))
	}))
	defer srv.Close()

	c := &Client{Symbol: "^NSEI", BaseURL: srv.URL, http: srv.Client()}
	bars, err := c.Fetch(d.Add(-5), d)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("Fetch() returned %d bars, want 1", len(bars))
	}
	if gotPath != "/v8/finance/chart/^NSEI" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAgent != "Mozilla/5.0" {
		t.Errorf("user agent = %q, want Mozilla/5.0", gotAgent)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := &Client{Symbol: "^NSEI", BaseURL: srv.URL, http: srv.Client()}
	if _, err := c.Fetch(date.New(2025, 8, 1), date.New(2025, 8, 20)); err == nil {
		t.Fatal("Fetch() on a 404 succeeded, want error")
	}
}
