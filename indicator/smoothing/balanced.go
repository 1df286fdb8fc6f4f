package smoothing

import (
	"math"

	"github.com/evdnx/movingavg/indicator/core"
)

// edge is the local linear trend at one end of the input, estimated from
// halfSize+1 points and anchored so it can be walked outward.
type edge struct {
	average float64
	slope   float64
	start   float64
}

// edgeFit estimates the left and right edge trends over halfSize+1 points.
// A difference is skipped when its outer neighbour is NaN; the NaN still
// reaches the edge sum.
func edgeFit(src []float64, halfSize int) (left, right edge) {
	n := len(src)
	var lSum, lDiff, rSum, rDiff float64
	for i := 0; i <= halfSize; i++ {
		if i < halfSize && !math.IsNaN(src[i+1]) {
			lDiff += src[i+1] - src[i]
		}
		lSum += src[i]
	}
	for i := n - halfSize - 1; i < n; i++ {
		if i >= n-halfSize && !math.IsNaN(src[i-1]) {
			rDiff += src[i] - src[i-1]
		}
		rSum += src[i]
	}

	h := float64(halfSize)
	left.average = lSum / (h + 1)
	left.slope = lDiff / h
	left.start = left.average - left.slope*h/2

	right.average = rSum / (h + 1)
	right.slope = rDiff / h
	right.start = right.average + right.slope*h/2 + right.slope
	return left, right
}

// extend pads src with halfSize extrapolated points on each side.
func extend(src []float64, halfSize int, left, right edge) []float64 {
	out := make([]float64, 0, len(src)+2*halfSize)
	for j := 0; j < halfSize; j++ {
		out = append(out, left.start-float64(halfSize-j)*left.slope)
	}
	out = append(out, src...)
	for j := 0; j < halfSize; j++ {
		out = append(out, right.start+float64(j)*right.slope)
	}
	return out
}

// mirroredWeighted runs the trailing weighted pass over the reversed series
// and maps it back to forward order.
func mirroredWeighted(src []float64, width int) []float64 {
	return core.Reversed(trailingWeighted(core.Reversed(src), width))
}

// pairMean averages a and b element-wise.
func pairMean(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = (a[i] + b[i]) / 2
	}
	return out
}

// balanced runs v's pass over the edge-extended input and trims the result
// back to len(src).
func balanced(src []float64, v Variant, size int) []float64 {
	halfSize := size / 2
	left, right := edgeFit(src, halfSize)
	ext := extend(src, halfSize, left, right)

	var res []float64
	switch v {
	case BSMA:
		res = centeredMean(ext, halfSize)
	case BWMA:
		res = pairMean(trailingWeighted(ext, halfSize), mirroredWeighted(ext, halfSize))
	case BEMA:
		w := emaWeight(halfSize)
		res = pairMean(emaForward(ext, w), emaBackward(ext, w))
	default:
		return nil
	}
	return res[halfSize : halfSize+len(src)]
}

// edgeSlopes lays the two edge trends over the input's index range. Each run
// covers halfSize+1 points; the positions neither run reaches are gaps.
func edgeSlopes(src []float64, size int) core.Series {
	n := len(src)
	halfSize := size / 2
	left, right := edgeFit(src, halfSize)

	lRun := make([]float64, halfSize+1)
	rRun := make([]float64, halfSize+1)
	for i := 0; i <= halfSize; i++ {
		lRun[i] = left.start + float64(i)*left.slope
		rRun[i] = right.start - float64(halfSize+1-i)*right.slope
	}

	span := 2*halfSize + 1
	switch {
	case n == span:
		return core.NewSeries(append(lRun, rRun[1:]...))
	case n < span:
		return core.NewSeries(append(lRun[:halfSize], rRun[1:]...))
	}

	values := make([]float64, 0, n)
	values = append(values, lRun...)
	for i := 0; i < n-2*halfSize-2; i++ {
		values = append(values, math.NaN())
	}
	values = append(values, rRun...)

	valid := make([]bool, n)
	for i := range valid {
		valid[i] = i <= halfSize || i >= n-halfSize-1
	}
	return core.NewGappedSeries(values, valid)
}
