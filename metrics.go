package fundbench

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Value is a metric value that may be undefined. The zero Value is
// undefined. Undefined is an explicit state, never conflated with a
// real zero: it marshals to JSON null and renders as "n/a".
type Value struct {
	val     float64
	defined bool
}

// Defined returns a defined Value.
func Defined(v float64) Value { return Value{val: v, defined: true} }

// Undefined returns the undefined Value.
func Undefined() Value { return Value{} }

// Float64 returns the value and whether it is defined.
func (v Value) Float64() (float64, bool) { return v.val, v.defined }

// IsDefined reports whether the value is defined.
func (v Value) IsDefined() bool { return v.defined }

// MarshalJSON marshals a defined value as a number and an undefined
// one as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.val)
}

var _ json.Marshaler = Value{}

// Behavior is the categorical summary of correlation strength and
// direction between a fund and the benchmark.
type Behavior string

const (
	WithMarket       Behavior = "With Market"
	AgainstMarket    Behavior = "Against Market"
	NeutralMarket    Behavior = "Low/Neutral Correlation"
	InsufficientData Behavior = "Insufficient Data"
)

// Tolerance combines up and down capture into a categorical summary of
// the asymmetry of a fund's response to market moves.
type Tolerance string

const (
	HighTolerance    Tolerance = "High"
	MediumTolerance  Tolerance = "Medium"
	LowTolerance     Tolerance = "Low"
	UnknownTolerance Tolerance = "Unknown"
)

// Metrics are the derived statistics of one aligned fund/benchmark
// series. Values are unrounded; rounding is a rendering concern.
type Metrics struct {
	Rows           int
	Correlation    Value
	WithMarketPct  float64
	AvgFundReturn  float64
	AvgBenchReturn float64
	UpCapture      Value
	DownCapture    Value
	Behavior       Behavior
	Tolerance      Tolerance
}

// Compute derives the metrics of a non-empty aligned series. It is a
// pure function of the rows: calling it twice yields identical results.
func Compute(rows []AlignedRow) Metrics {
	fund := make([]float64, len(rows))
	bench := make([]float64, len(rows))
	for i, r := range rows {
		fund[i] = r.FundChangePct
		bench[i] = r.BenchChangePct
	}

	m := Metrics{Rows: len(rows)}
	m.Correlation = correlation(fund, bench)

	agree := 0
	for i := range fund {
		if sign(fund[i]) == sign(bench[i]) {
			agree++
		}
	}
	m.WithMarketPct = 100 * float64(agree) / float64(len(rows))

	m.AvgFundReturn = stat.Mean(fund, nil)
	m.AvgBenchReturn = stat.Mean(bench, nil)

	m.UpCapture = capture(fund, bench, func(b float64) bool { return b > 0 }, false)
	m.DownCapture = capture(fund, bench, func(b float64) bool { return b < 0 }, true)

	m.Behavior = behavior(m.Correlation)
	m.Tolerance = tolerance(m.UpCapture, m.DownCapture)
	return m
}

// correlation is the Pearson coefficient of the two sequences,
// undefined for fewer than 2 rows or when either variance is zero.
func correlation(fund, bench []float64) Value {
	if len(fund) < 2 {
		return Undefined()
	}
	c := stat.Correlation(fund, bench, nil)
	if math.IsNaN(c) {
		// Zero variance on either side.
		return Undefined()
	}
	return Defined(c)
}

// capture is mean(fund over the partition) / mean(bench over the
// partition) * 100, on absolute means when abs is set. Undefined for
// an empty partition or a benchmark mean of exactly zero.
func capture(fund, bench []float64, in func(float64) bool, abs bool) Value {
	var f, b []float64
	for i := range bench {
		if in(bench[i]) {
			f = append(f, fund[i])
			b = append(b, bench[i])
		}
	}
	if len(b) == 0 {
		return Undefined()
	}
	fm, bm := stat.Mean(f, nil), stat.Mean(b, nil)
	if abs {
		fm, bm = math.Abs(fm), math.Abs(bm)
	}
	if bm == 0 {
		return Undefined()
	}
	return Defined(fm / bm * 100)
}

// behavior thresholds are exact contract: >= 0.6 is checked before
// <= -0.2, everything else is low/neutral.
func behavior(corr Value) Behavior {
	c, ok := corr.Float64()
	if !ok {
		return InsufficientData
	}
	switch {
	case c >= 0.6:
		return WithMarket
	case c <= -0.2:
		return AgainstMarket
	default:
		return NeutralMarket
	}
}

// tolerance evaluates High before Low before falling to Medium.
func tolerance(up, down Value) Tolerance {
	u, uok := up.Float64()
	d, dok := down.Float64()
	if !uok || !dok {
		return UnknownTolerance
	}
	switch {
	case u > 100 && d < 100:
		return HighTolerance
	case u < 90 && d > 120:
		return LowTolerance
	default:
		return MediumTolerance
	}
}

// sign returns -1, 0 or +1; zero is its own sign, equal only to zero.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
