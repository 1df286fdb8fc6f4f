// Package movingavg smooths one-dimensional numeric sequences with classic
// and balanced moving averages (SMA, WMA, EMA and their centered,
// edge-extrapolated counterparts) and a linear slope estimator.
//
//	out := movingavg.Compute([]float64{1, 2, 3, 4, 5, 6, 7, 8}, movingavg.SMA, 3)
//	// out.Values == [1 1.5 2 3 4 5 6 7]
package movingavg

import (
	"github.com/evdnx/movingavg/config"
	"github.com/evdnx/movingavg/indicator"
	"github.com/evdnx/movingavg/suite"
)

// ---- Shared data helpers ----
type (
	Series   = indicator.Series
	PlotData = indicator.PlotData
)

func FormatPlotDataJSON(data []indicator.PlotData) (string, error) {
	return indicator.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []indicator.PlotData) (string, error) {
	return indicator.FormatPlotDataCSV(data)
}

// ---- Variants ----
type Variant = indicator.Variant

const (
	SMA    = indicator.SMA
	BSMA   = indicator.BSMA
	WMA    = indicator.WMA
	BWMA   = indicator.BWMA
	EMA    = indicator.EMA
	BEMA   = indicator.BEMA
	Slope  = indicator.Slope
	BSlope = indicator.BSlope
)

var (
	ErrUnknownVariant   = indicator.ErrUnknownVariant
	ErrInvalidSize      = indicator.ErrInvalidSize
	ErrInsufficientData = indicator.ErrInsufficientData
	ErrNonFinite        = indicator.ErrNonFinite
)

func ParseVariant(s string) (Variant, error) { return indicator.ParseVariant(s) }

// ---- Transform ----
func Compute(input []float64, v Variant, size int) Series {
	return indicator.Compute(input, v, size)
}

func ComputeString(input []float64, selector string, size int) Series {
	return indicator.ComputeString(input, selector, size)
}

func ComputeAny(input []any, selector string, size int) Series {
	return indicator.ComputeAny(input, selector, size)
}

func ComputeStrict(input []float64, v Variant, size int) (Series, error) {
	return indicator.ComputeStrict(input, v, size)
}

// ---- Config & suite ----
type (
	Config = config.Config
	Suite  = suite.Suite
)

func DefaultConfig() Config { return config.DefaultConfig() }

func NewSuite() (*Suite, error) { return suite.NewSuite() }

func NewSuiteWithConfig(cfg Config) (*Suite, error) { return suite.NewSuiteWithConfig(cfg) }
