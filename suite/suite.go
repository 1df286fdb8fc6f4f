package suite

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/evdnx/movingavg/config"
	"github.com/evdnx/movingavg/indicator"
)

// ---------------------------------------------------------------------
// Suite – runs several smoothing variants over the same input.
// ---------------------------------------------------------------------

type Suite struct {
	variants []indicator.Variant
	size     int
	strict   bool
	workers  int
}

// NewSuite creates a suite with the library defaults.
func NewSuite() (*Suite, error) {
	return NewSuiteWithConfig(config.DefaultConfig())
}

// NewSuiteWithConfig builds a suite from a validated configuration.
func NewSuiteWithConfig(cfg config.Config) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite config: %w", err)
	}
	variants, err := cfg.ParsedVariants()
	if err != nil {
		return nil, fmt.Errorf("invalid suite config: %w", err)
	}
	return &Suite{
		variants: variants,
		size:     cfg.Size,
		strict:   cfg.Strict,
		workers:  cfg.Workers,
	}, nil
}

// Variants returns the variants the suite computes, in output order.
func (s *Suite) Variants() []indicator.Variant {
	return append([]indicator.Variant(nil), s.variants...)
}

// Result is one variant's output.
type Result struct {
	Variant indicator.Variant
	Series  indicator.Series
}

// Results holds the input and every variant's output in configured order.
type Results struct {
	Input   []float64
	Size    int
	Outputs []Result
}

// Get returns the output for v, if the suite computed it.
func (r *Results) Get(v indicator.Variant) (indicator.Series, bool) {
	for _, out := range r.Outputs {
		if out.Variant == v {
			return out.Series, true
		}
	}
	return indicator.Series{}, false
}

// PlotData returns the input followed by one line per variant.
func (r *Results) PlotData() []indicator.PlotData {
	data := make([]indicator.PlotData, 0, len(r.Outputs)+1)
	data = append(data, indicator.NewPlotData("Input", indicator.NewSeries(r.Input)))
	for _, out := range r.Outputs {
		data = append(data, indicator.NewPlotData(out.Variant.String(), out.Series))
	}
	return data
}

// ---------------------------------------------------------------------
// Run – computes every variant concurrently, at most `workers` at a time.
// ---------------------------------------------------------------------
func (s *Suite) Run(ctx context.Context, input []float64) (*Results, error) {
	outputs := make([]Result, len(s.variants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, v := range s.variants {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			series, err := s.compute(input, v)
			if err != nil {
				return fmt.Errorf("%s failed: %w", v, err)
			}
			outputs[i] = Result{Variant: v, Series: series}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Results{
		Input:   indicator.CopySlice(input),
		Size:    s.size,
		Outputs: outputs,
	}, nil
}

func (s *Suite) compute(input []float64, v indicator.Variant) (indicator.Series, error) {
	if s.strict {
		return indicator.ComputeStrict(input, v, s.size)
	}
	return indicator.Compute(input, v, s.size), nil
}
