package indicator

import (
	"github.com/evdnx/movingavg/indicator/core"
	"github.com/evdnx/movingavg/indicator/smoothing"
)

// ---- Shared data helpers ----
type (
	Series   = core.Series
	PlotData = core.PlotData
)

func NewSeries(values []float64) Series { return core.NewSeries(values) }

func NewPlotData(name string, y Series) PlotData { return core.NewPlotData(name, y) }

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

func CopySlice(src []float64) []float64 { return core.CopySlice(src) }

// ---- Coercion ----
func ToFloat(v any) float64             { return core.ToFloat(v) }
func ToFloats(src []any) []float64      { return core.ToFloats(src) }
func ParseFloats(src []string) []float64 { return core.ParseFloats(src) }

// ---- Smoothing variants ----
type Variant = smoothing.Variant

const (
	SMA    = smoothing.SMA
	BSMA   = smoothing.BSMA
	WMA    = smoothing.WMA
	BWMA   = smoothing.BWMA
	EMA    = smoothing.EMA
	BEMA   = smoothing.BEMA
	Slope  = smoothing.Slope
	BSlope = smoothing.BSlope

	MinLength = smoothing.MinLength
)

var (
	ErrUnknownVariant   = smoothing.ErrUnknownVariant
	ErrInvalidSize      = smoothing.ErrInvalidSize
	ErrInsufficientData = smoothing.ErrInsufficientData
	ErrNonFinite        = smoothing.ErrNonFinite
)

func Variants() []Variant { return smoothing.Variants() }

func ParseVariant(s string) (Variant, error) { return smoothing.ParseVariant(s) }

func Compute(input []float64, v Variant, size int) Series {
	return smoothing.Compute(input, v, size)
}

func ComputeString(input []float64, selector string, size int) Series {
	return smoothing.ComputeString(input, selector, size)
}

func ComputeAny(input []any, selector string, size int) Series {
	return smoothing.ComputeAny(input, selector, size)
}

func ComputeStrict(input []float64, v Variant, size int) (Series, error) {
	return smoothing.ComputeStrict(input, v, size)
}
