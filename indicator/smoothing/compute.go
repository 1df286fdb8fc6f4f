package smoothing

import (
	"errors"
	"fmt"
	"math"

	"github.com/evdnx/movingavg/indicator/core"
)

// MinLength is the shortest input that gets transformed. Shorter inputs are
// returned as they are.
const MinLength = 4

// ---------------------------------------------------------------------------
// Sentinel errors – exported so callers can compare with errors.Is()
// ---------------------------------------------------------------------------
var (
	ErrUnknownVariant   = errors.New("unknown moving-average variant")
	ErrInvalidSize      = errors.New("window size must be at least 1")
	ErrInsufficientData = fmt.Errorf("need at least %d data points", MinLength)
	ErrNonFinite        = errors.New("input contains a non-finite value")
)

// Series is the engine's output sequence.
type Series = core.Series

// Compute applies variant v with window size to input and never fails:
//   - inputs shorter than MinLength come back unchanged (as a copy)
//   - size is clamped to [1, len(input)]
//   - an unknown variant yields an empty series
//   - NaN values propagate through the arithmetic
//
// The output has the same length as the input. Only BSlope produces gaps.
func Compute(input []float64, v Variant, size int) Series {
	if len(input) < MinLength {
		return core.NewSeries(core.CopySlice(input))
	}
	if !v.Valid() {
		return core.NewSeries(nil)
	}
	size = core.ClampInt(size, 1, len(input))

	switch v {
	case SMA:
		return core.NewSeries(trailingMean(input, size))
	case WMA:
		return core.NewSeries(trailingWeighted(input, size))
	case EMA:
		return core.NewSeries(emaForward(input, emaWeight(size)))
	case Slope:
		return core.NewSeries(linearFit(input))
	case BSlope:
		return edgeSlopes(input, size)
	default:
		return core.NewSeries(balanced(input, v, size))
	}
}

// ComputeString resolves selector with ParseVariant and computes it. An
// unrecognised selector yields an empty series.
func ComputeString(input []float64, selector string, size int) Series {
	if len(input) < MinLength {
		return core.NewSeries(core.CopySlice(input))
	}
	v, err := ParseVariant(selector)
	if err != nil {
		return core.NewSeries(nil)
	}
	return Compute(input, v, size)
}

// ComputeAny coerces loosely typed input to numbers before computing.
// Entries that are not numeric become NaN.
func ComputeAny(input []any, selector string, size int) Series {
	return ComputeString(core.ToFloats(input), selector, size)
}

// ComputeStrict is Compute with validation: it rejects unknown variants,
// sizes below 1, short inputs and non-finite values instead of absorbing
// them. Sizes above len(input) are still clamped.
func ComputeStrict(input []float64, v Variant, size int) (Series, error) {
	if !v.Valid() {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	if size < 1 {
		return Series{}, fmt.Errorf("%w, got %d", ErrInvalidSize, size)
	}
	if len(input) < MinLength {
		return Series{}, fmt.Errorf("%w, have %d", ErrInsufficientData, len(input))
	}
	for i, x := range input {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Series{}, fmt.Errorf("%w at index %d: %v", ErrNonFinite, i, x)
		}
	}
	return Compute(input, v, size), nil
}
