// Package renderer turns analysis reports into their output forms: a
// markdown overview and detail tables, and an xlsx workbook mirroring
// them. Display rounding happens here and only here.
package renderer

import (
	"fmt"
	"regexp"

	"github.com/etnz/fundbench"
	md "github.com/nao1215/markdown"
)

// tableOptions keeps table headers and cells verbatim: the detail
// columns are a contract, and auto-formatting would upper-case them.
var tableOptions = md.TableOptions{AutoWrapText: false, AutoFormatHeaders: false}

// summaryHeader is the overview column order, shared by the markdown
// and xlsx renderings.
var summaryHeader = []string{
	"Query", "Matched Scheme", "Scheme Code", "Fund House", "Latest NAV",
	"Data Points", "Correlation", "With Market %",
	"Avg Fund Return (%)", "Avg Bench Return (%)",
	"Up Capture (%)", "Down Capture (%)", "Behavior", "Market Tolerance",
}

// detailHeader is the literal detail export contract: column order and
// naming must not change.
var detailHeader = []string{
	"date", "fundStart", "fundEnd", "fundChangePct", "benchStart", "benchEnd", "benchChangePct",
}

// noDataMessage fills the placeholder output of an empty run.
const noDataMessage = "No valid fund data found."

// fmtValue renders a possibly-undefined metric with the given number
// of decimals, or "n/a".
func fmtValue(v fundbench.Value, decimals int) string {
	f, ok := v.Float64()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, f)
}

// summaryStrings renders one summary record in summaryHeader order,
// with the display rounding: correlation 3 decimals, percentages 1,
// mean returns 4.
func summaryStrings(s fundbench.FundSummary) []string {
	return []string{
		s.Query,
		s.Name,
		fmt.Sprintf("%d", s.Code),
		s.House,
		s.LatestNAV.String(),
		fmt.Sprintf("%d", s.DataPoints),
		fmtValue(s.Correlation, 3),
		fmt.Sprintf("%.1f", s.WithMarketPct),
		fmt.Sprintf("%.4f", s.AvgFundReturn),
		fmt.Sprintf("%.4f", s.AvgBenchReturn),
		fmtValue(s.UpCapture, 1),
		fmtValue(s.DownCapture, 1),
		string(s.Behavior),
		string(s.Tolerance),
	}
}

// detailStrings renders one aligned row in detailHeader order.
func detailStrings(r fundbench.AlignedRow) []string {
	return []string{
		r.Date.String(),
		fmt.Sprintf("%.4f", r.FundStart),
		fmt.Sprintf("%.4f", r.FundEnd),
		fmt.Sprintf("%.4f", r.FundChangePct),
		fmt.Sprintf("%.2f", r.BenchStart),
		fmt.Sprintf("%.2f", r.BenchEnd),
		fmt.Sprintf("%.4f", r.BenchChangePct),
	}
}

var invalidSheetChars = regexp.MustCompile(`[:\\/?*\[\]]`)

// sanitizeSheetName removes characters invalid in workbook sheet names
// and truncates to the 31-character limit.
func sanitizeSheetName(name string) string {
	name = invalidSheetChars.ReplaceAllString(name, "_")
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
