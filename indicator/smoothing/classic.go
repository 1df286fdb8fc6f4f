package smoothing

// meanOf returns the arithmetic mean of window. An empty window yields NaN.
func meanOf(window []float64) float64 {
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}

// weightedOf weights the k-th element of window by k (1-based), so the
// newest point counts most. An empty window yields NaN.
func weightedOf(window []float64) float64 {
	sum, weightSum := 0.0, 0.0
	for i, v := range window {
		weight := float64(i + 1)
		sum += weight * v
		weightSum += weight
	}
	return sum / weightSum
}

// trailingWindow returns src[start:end] for the window of the given width
// ending at idx. Near the left edge the window is shorter.
func trailingWindow(src []float64, idx, width int) []float64 {
	start := max(0, idx-width+1)
	end := min(len(src), idx+1)
	if start > end {
		start = end
	}
	return src[start:end]
}

// trailingMean is the classic SMA: every window is summed from scratch so a
// NaN only poisons the windows that contain it.
func trailingMean(src []float64, width int) []float64 {
	out := make([]float64, len(src))
	for i := range src {
		out[i] = meanOf(trailingWindow(src, i, width))
	}
	return out
}

// trailingWeighted is the classic WMA over a growing-then-sliding window.
func trailingWeighted(src []float64, width int) []float64 {
	out := make([]float64, len(src))
	for i := range src {
		out[i] = weightedOf(trailingWindow(src, i, width))
	}
	return out
}

// centeredMean averages the symmetric window [i-radius, i+radius], clamped to
// the bounds of src.
func centeredMean(src []float64, radius int) []float64 {
	out := make([]float64, len(src))
	for i := range src {
		start := max(0, i-radius)
		end := min(len(src), i+radius+1)
		out[i] = meanOf(src[start:end])
	}
	return out
}

// emaWeight is the smoothing factor 2/(period+1).
func emaWeight(period int) float64 {
	return 2.0 / float64(period+1)
}

// emaForward runs the recursion left to right seeded with src[0].
func emaForward(src []float64, weight float64) []float64 {
	out := make([]float64, len(src))
	if len(src) == 0 {
		return out
	}
	prev := src[0]
	for i, v := range src {
		prev = (v-prev)*weight + prev
		out[i] = prev
	}
	return out
}

// emaBackward runs the same recursion right to left seeded with the last
// element. out[i] is the backward estimate at index i.
func emaBackward(src []float64, weight float64) []float64 {
	out := make([]float64, len(src))
	if len(src) == 0 {
		return out
	}
	prev := src[len(src)-1]
	for i := len(src) - 1; i >= 0; i-- {
		prev = (src[i]-prev)*weight + prev
		out[i] = prev
	}
	return out
}

// linearFit builds one straight line over all of src from its first
// differences. The line's mean equals the mean of src.
func linearFit(src []float64) []float64 {
	n := len(src)
	diff, sum := 0.0, 0.0
	for i, v := range src {
		if i+1 < n {
			diff += src[i+1] - v
		}
		sum += v
	}
	average := sum / float64(n)
	slope := diff / float64(n-1)
	val := average - slope*float64(n+1)/2

	out := make([]float64, n)
	for i := range out {
		val += slope
		out[i] = val
	}
	return out
}
