package suite

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/movingavg/config"
	"github.com/evdnx/movingavg/indicator"
)

func sampleInput() []float64 {
	return []float64{2, 4, 3, 6, 5, 8, 7, 9, 8, 10, 9, 12}
}

func TestSuite_RunsEveryVariantInOrder(t *testing.T) {
	s, err := NewSuite()
	require.NoError(t, err)

	input := sampleInput()
	res, err := s.Run(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, res.Outputs, len(indicator.Variants()))
	for i, v := range indicator.Variants() {
		assert.Equal(t, v, res.Outputs[i].Variant)
		want := indicator.Compute(input, v, config.DefaultSize)
		assert.Equal(t, want.Valid, res.Outputs[i].Series.Valid, "%s gap mask", v)
		assert.Equal(t, want.Floats()[:4], res.Outputs[i].Series.Floats()[:4], "%s values", v)
	}

	bslope, ok := res.Get(indicator.BSlope)
	require.True(t, ok)
	assert.Equal(t, len(input)-2*3-2, bslope.Gaps())
}

func TestSuite_PlotData(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Variants = []string{"sma", "BSlope"}
	cfg.Size = 4
	s, err := NewSuiteWithConfig(cfg)
	require.NoError(t, err)

	res, err := s.Run(context.Background(), sampleInput())
	require.NoError(t, err)

	plot := res.PlotData()
	require.Len(t, plot, 3)
	assert.Equal(t, "Input", plot[0].Name)
	assert.Equal(t, "SMA", plot[1].Name)
	assert.Equal(t, "BSlope", plot[2].Name)

	js, err := indicator.FormatPlotDataJSON(plot)
	require.NoError(t, err)
	assert.Contains(t, js, "null")
}

func TestSuite_StrictModeFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strict = true
	s, err := NewSuiteWithConfig(cfg)
	require.NoError(t, err)

	_, err = s.Run(context.Background(), []float64{1, 2, math.NaN(), 4, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, indicator.ErrNonFinite))
}

func TestSuite_LenientModeAbsorbsNaN(t *testing.T) {
	s, err := NewSuite()
	require.NoError(t, err)

	res, err := s.Run(context.Background(), []float64{1, 2, math.NaN(), 4, 5})
	require.NoError(t, err)
	sma, ok := res.Get(indicator.SMA)
	require.True(t, ok)
	assert.Equal(t, 5, sma.Len())
}

func TestSuite_CancelledContext(t *testing.T) {
	s, err := NewSuite()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx, sampleInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSuiteWithConfig_Invalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Variants = []string{"DEMA"}
	_, err := NewSuiteWithConfig(cfg)
	assert.ErrorIs(t, err, indicator.ErrUnknownVariant)
}

func TestSuite_VariantsIsACopy(t *testing.T) {
	s, err := NewSuite()
	require.NoError(t, err)
	v := s.Variants()
	v[0] = indicator.BSlope
	assert.Equal(t, indicator.SMA, s.Variants()[0])
}

func BenchmarkSuite_Run(b *testing.B) {
	s, err := NewSuite()
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}
	input := make([]float64, 500)
	for i := range input {
		input[i] = 100 + float64(i%20)*0.5
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), input); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
