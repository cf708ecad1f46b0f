package fundbench

import (
	"fmt"
	"log"

	"github.com/etnz/fundbench/date"
)

// CatalogSource lists the full reference catalog of funds. A transport
// failure here is fatal to a run: with no catalog there is nothing to
// match against.
type CatalogSource interface {
	List() ([]CatalogEntry, error)
}

// FundHistorySource fetches one fund's valuation history by catalog
// identifier. Failures are per-fund: the fund is skipped, the run
// continues.
type FundHistorySource interface {
	Fetch(code int) (*FundHistory, error)
}

// BenchmarkSource fetches the benchmark's daily bars covering the
// window, inclusive of both ends. A failure or a series without open
// and close values is fatal to a run.
type BenchmarkSource interface {
	Fetch(from, to date.Date) ([]DailyBar, error)
}

// DefaultLookback is the trailing window, in calendar days.
const DefaultLookback = 30

// navCurrency is the currency the fund NAV feed quotes in.
const navCurrency = "INR"

// Analyzer drives the analysis of a list of fund queries against a
// benchmark. Funds are processed one at a time, in input order.
type Analyzer struct {
	Catalog   CatalogSource
	Funds     FundHistorySource
	Benchmark BenchmarkSource
	Lookback  int // trailing window in days, DefaultLookback when <= 0
}

// SkipReason says why a query contributed nothing to the report.
type SkipReason string

const (
	SkipNoMatch      SkipReason = "no catalog entry matched the query"
	SkipNoHistory    SkipReason = "fund history could not be retrieved"
	SkipEmptyHistory SkipReason = "fund history has no valuation points"
	SkipNoOverlap    SkipReason = "no overlapping trading days with the benchmark"
)

// Skip records one skipped query and the reason.
type Skip struct {
	Query  string
	Reason SkipReason
}

// FundSummary is the overview record of one successfully analyzed
// query. Immutable once created.
type FundSummary struct {
	Query          string
	Name           string
	Code           int
	House          string
	Score          float64
	LatestNAV      Money
	DataPoints     int
	Correlation    Value
	WithMarketPct  float64
	AvgFundReturn  float64
	AvgBenchReturn float64
	UpCapture      Value
	DownCapture    Value
	Behavior       Behavior
	Tolerance      Tolerance
}

// FundDetail is the per-fund aligned-rows table, the detail export.
type FundDetail struct {
	Code int
	Name string
	Rows []AlignedRow
}

// Report is the outcome of one run: a summary per analyzed fund, the
// matching detail tables, and the skipped queries.
type Report struct {
	Window    date.Range
	Summaries []FundSummary
	Details   []FundDetail
	Skips     []Skip
}

// result is the tagged outcome of one fund's analysis: either a
// summary+detail pair or a skip reason.
type result struct {
	summary *FundSummary
	detail  *FundDetail
	skip    SkipReason
}

// Run analyzes every query and assembles the report. Only a setup
// failure (catalog or benchmark unavailable or empty) returns an
// error; per-fund problems are reported as skips and never abort the
// run. External calls are not retried.
func (a *Analyzer) Run(queries []string) (*Report, error) {
	lookback := a.Lookback
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	to := date.Today()
	from := to.Add(-lookback)
	window := date.Range{From: from, To: to}

	catalog, err := a.Catalog.List()
	if err != nil {
		return nil, fmt.Errorf("fetching fund catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("fund catalog is empty")
	}
	log.Printf("catalog has %d funds", len(catalog))

	bars, err := a.Benchmark.Fetch(from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching benchmark bars for %s: %w", window, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("benchmark has no bars for %s", window)
	}

	report := &Report{Window: window}
	for _, q := range queries {
		res := a.analyze(q, catalog, bars, from)
		if res.skip != "" {
			log.Printf("skipping %q: %s", q, res.skip)
			report.Skips = append(report.Skips, Skip{Query: q, Reason: res.skip})
			continue
		}
		report.Summaries = append(report.Summaries, *res.summary)
		report.Details = append(report.Details, *res.detail)
	}
	return report, nil
}

// analyze runs the pipeline for a single query: match, fetch, align,
// compute.
func (a *Analyzer) analyze(query string, catalog []CatalogEntry, bars []DailyBar, windowStart date.Date) result {
	match := Match(query, catalog)
	if match == nil {
		return result{skip: SkipNoMatch}
	}
	log.Printf("best match for %q: %q (code=%d score=%.3f)", query, match.Entry.Name, match.Entry.Code, match.Score)

	hist, err := a.Funds.Fetch(match.Entry.Code)
	if err != nil {
		log.Printf("history fetch for code=%d failed: %v", match.Entry.Code, err)
		return result{skip: SkipNoHistory}
	}
	if hist == nil || hist.NAV == nil || hist.NAV.Len() == 0 {
		return result{skip: SkipEmptyHistory}
	}

	rows := Align(hist.NAV, bars, windowStart)
	if len(rows) == 0 {
		return result{skip: SkipNoOverlap}
	}

	metrics := Compute(rows)
	name := hist.Name
	if name == "" {
		name = match.Entry.Name
	}
	_, latest := hist.NAV.Latest()

	summary := &FundSummary{
		Query:          query,
		Name:           name,
		Code:           match.Entry.Code,
		House:          hist.House,
		Score:          match.Score,
		LatestNAV:      M(latest, navCurrency),
		DataPoints:     metrics.Rows,
		Correlation:    metrics.Correlation,
		WithMarketPct:  metrics.WithMarketPct,
		AvgFundReturn:  metrics.AvgFundReturn,
		AvgBenchReturn: metrics.AvgBenchReturn,
		UpCapture:      metrics.UpCapture,
		DownCapture:    metrics.DownCapture,
		Behavior:       metrics.Behavior,
		Tolerance:      metrics.Tolerance,
	}
	detail := &FundDetail{Code: match.Entry.Code, Name: name, Rows: rows}
	return result{summary: summary, detail: detail}
}
