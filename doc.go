// Package fundbench compares the daily performance of a list of
// loosely named investment funds against a benchmark market index over
// a trailing window.
//
// The pipeline resolves each query to a catalog entry by fuzzy text
// matching, aligns the fund's valuation series with the benchmark's
// daily bars on trading dates, and derives alignment metrics
// (correlation, directional agreement, up/down capture) plus behavior
// and tolerance labels.
//
// Data providers (fund catalog, fund NAV history, benchmark bars) are
// consumed through narrow interfaces; see the mfapi and yahoo packages
// for the default implementations, and the renderer package for the
// report outputs.
package fundbench
