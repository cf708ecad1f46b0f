package fundbench

import (
	"math"

	"github.com/etnz/fundbench/date"
)

// Align inner-joins a fund's NAV history with the benchmark's daily
// bars on date, keeping dates on or after windowStart. The bars are
// assumed already windowed by the caller.
//
// The fund start of a date is the value of the immediately preceding
// point in the full, unwindowed history, so the first row inside the
// window still has a start when an earlier point exists just outside
// it. Rows with no defined fund change (first point of the whole
// series, zero previous NAV) or a NaN change on either side are
// dropped.
//
// The result is ordered by date ascending and may be empty: an empty
// result means insufficient overlapping data, not an error.
func Align(nav *date.History[float64], bars []DailyBar, windowStart date.Date) []AlignedRow {
	byDate := make(map[date.Date]DailyBar, len(bars))
	for _, b := range bars {
		byDate[b.Date] = b
	}

	var rows []AlignedRow
	var prev float64
	hasPrev := false
	for on, value := range nav.Values() {
		if on.Before(windowStart) {
			prev, hasPrev = value, true
			continue
		}
		if hasPrev && prev != 0 {
			if bar, ok := byDate[on]; ok {
				change := (value - prev) / prev * 100
				if !math.IsNaN(change) && !math.IsNaN(bar.ChangePct) {
					rows = append(rows, AlignedRow{
						Date:           on,
						FundStart:      prev,
						FundEnd:        value,
						FundChangePct:  change,
						BenchStart:     bar.Open,
						BenchEnd:       bar.Close,
						BenchChangePct: bar.ChangePct,
					})
				}
			}
		}
		prev, hasPrev = value, true
	}
	return rows
}
