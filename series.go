package fundbench

import "github.com/etnz/fundbench/date"

// DailyBar is one benchmark trading day: open, close, and the
// open-to-close change in percent.
type DailyBar struct {
	Date      date.Date
	Open      float64
	Close     float64
	ChangePct float64
}

// NewDailyBar builds a bar, deriving ChangePct = (close-open)/open*100.
func NewDailyBar(on date.Date, open, close float64) DailyBar {
	return DailyBar{
		Date:      on,
		Open:      open,
		Close:     close,
		ChangePct: (close - open) / open * 100,
	}
}

// FundHistory is a fund's valuation history as served by the provider:
// identification metadata and one end-of-day NAV per reporting date.
//
// There is no intraday open for a fund: the "start" of a date is the
// NAV of the previous chronological point, so the first point of a
// series has no defined start.
type FundHistory struct {
	Name  string
	House string
	NAV   *date.History[float64]
}

// AlignedRow is one trading date present in both series, with start,
// end, and percent change on both sides.
type AlignedRow struct {
	Date           date.Date
	FundStart      float64
	FundEnd        float64
	FundChangePct  float64
	BenchStart     float64
	BenchEnd       float64
	BenchChangePct float64
}
