package smoothing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingWindowGrowsAtLeftEdge(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	assert.Equal(t, []float64{1}, trailingWindow(src, 0, 3))
	assert.Equal(t, []float64{1, 2}, trailingWindow(src, 1, 3))
	assert.Equal(t, []float64{2, 3, 4}, trailingWindow(src, 3, 3))
	assert.Empty(t, trailingWindow(src, 2, 0))
}

func TestCenteredMeanClampsAtBounds(t *testing.T) {
	out := centeredMean([]float64{2, 4, 6, 8, 10}, 1)
	assert.Equal(t, []float64{3, 4, 6, 8, 9}, out)
}

func TestEMABackwardMirrorsForward(t *testing.T) {
	src := []float64{5, 1, 4, 2, 3}
	w := emaWeight(3)
	back := emaBackward(src, w)
	fwd := emaForward(reverse(src), w)
	for i := range back {
		assert.Equal(t, fwd[len(fwd)-1-i], back[i])
	}
	assert.Equal(t, src[len(src)-1], back[len(back)-1])
}

func TestMirroredWeightedFavoursLaterNeighbour(t *testing.T) {
	src := []float64{0, 0, 3, 0, 0}
	fwd := trailingWeighted(src, 2)
	mir := mirroredWeighted(src, 2)
	// forward weights look back, the mirrored pass looks ahead
	assert.InDelta(t, 1.0, fwd[3], 1e-12)
	assert.InDelta(t, 0.0, mir[3], 1e-12)
	assert.InDelta(t, 1.0, mir[1], 1e-12)
	assert.InDelta(t, 0.0, fwd[1], 1e-12)
}

func TestEdgeFit(t *testing.T) {
	src := []float64{1, 3, 5, 6, 6, 9, 6, 3}
	left, right := edgeFit(src, 2)

	assert.InDelta(t, 3.0, left.average, 1e-12)
	assert.InDelta(t, 2.0, left.slope, 1e-12)
	assert.InDelta(t, 1.0, left.start, 1e-12)

	assert.InDelta(t, 6.0, right.average, 1e-12)
	assert.InDelta(t, -3.0, right.slope, 1e-12)
	assert.InDelta(t, 0.0, right.start, 1e-12)
}

func TestEdgeFitSkipsDifferencesIntoNaN(t *testing.T) {
	src := []float64{1, 2, math.NaN(), 4, 5, 6}
	left, _ := edgeFit(src, 2)
	assert.InDelta(t, 0.5, left.slope, 1e-12)
	assert.True(t, math.IsNaN(left.average))
}

func TestExtendWalksEdgeTrendsOutward(t *testing.T) {
	src := []float64{1, 3, 5, 6, 6, 9, 6, 3}
	left, right := edgeFit(src, 2)
	ext := extend(src, 2, left, right)
	require.Len(t, ext, len(src)+4)

	assert.InDelta(t, -3.0, ext[0], 1e-12)
	assert.InDelta(t, -1.0, ext[1], 1e-12)
	assert.Equal(t, src, ext[2:10])
	assert.InDelta(t, 0.0, ext[10], 1e-12)
	assert.InDelta(t, -3.0, ext[11], 1e-12)
}

func TestLinearFitSingleStep(t *testing.T) {
	out := linearFit([]float64{2, 2, 2, 6})
	// slope 4/3, mean 3
	assert.InDelta(t, 3.0, meanOf(out), 1e-12)
	assert.InDelta(t, 4.0/3, out[1]-out[0], 1e-12)
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := ParseVariant("bema")
	require.NoError(t, err)
	assert.Equal(t, BEMA, got)
	assert.True(t, got.IsBalanced())
	assert.False(t, Slope.IsBalanced())

	_, err = ParseVariant("SMAX")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.False(t, Variant("sma").Valid())
}
