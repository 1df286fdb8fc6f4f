package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evdnx/movingavg/config"
	"github.com/evdnx/movingavg/indicator"
	"github.com/evdnx/movingavg/suite"
)

// computeOptions holds the flag values of the compute command.
type computeOptions struct {
	configPath string
	variants   []string
	size       int
	format     string
	strict     bool
	workers    int
}

func newComputeCommand() *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute [file]",
		Short: "Smooth a numeric sequence read from a file or stdin",
		Long: `Reads numbers separated by whitespace or commas, runs the selected
variants over them and writes the input plus one series per variant.
Gaps and non-numeric results are written as null (JSON) or an empty cell (CSV).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringSliceVarP(&opts.variants, "variant", "m", nil, `variants to compute, or "all"`)
	flags.IntVarP(&opts.size, "size", "s", config.DefaultSize, "window size")
	flags.StringVarP(&opts.format, "format", "f", config.DefaultFormat, "output format: json or csv")
	flags.BoolVar(&opts.strict, "strict", false, "fail on short input, bad sizes and non-finite values")
	flags.IntVar(&opts.workers, "workers", config.DefaultWorkers, "variants computed concurrently")

	return cmd
}

func runCompute(cmd *cobra.Command, opts *computeOptions, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug("resolved config", "size", cfg.Size, "variants", cfg.Variants, "strict", cfg.Strict, "format", cfg.Format)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("read input", "points", len(input))
	if len(input) < indicator.MinLength && !cfg.Strict {
		logger.Warn("input too short to smooth, passing it through", "points", len(input), "min", indicator.MinLength)
	}

	s, err := suite.NewSuiteWithConfig(cfg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := s.Run(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	prog.done(fmt.Sprintf("Computed %d variants over %d points", len(res.Outputs), len(input)))

	return writeResults(cmd.OutOrStdout(), res, cfg.Format)
}

// resolveConfig starts from the config file (or defaults) and lets flags the
// user set explicitly win.
func resolveConfig(cmd *cobra.Command, opts *computeOptions) (config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variants = expandVariants(opts.variants)
	}
	if flags.Changed("size") {
		cfg.Size = opts.size
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(opts.format)
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// expandVariants replaces "all" with every known variant.
func expandVariants(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, v := range indicator.Variants() {
				out = append(out, v.String())
			}
			continue
		}
		out = append(out, name)
	}
	return out
}

func readInput(cmd *cobra.Command, args []string) ([]float64, error) {
	if len(args) == 0 || args[0] == "-" {
		return readSequence(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return readSequence(f)
}

func writeResults(w io.Writer, res *suite.Results, format string) error {
	plot := res.PlotData()
	var (
		out string
		err error
	)
	switch format {
	case config.FormatCSV:
		out, err = indicator.FormatPlotDataCSV(plot)
	default:
		out, err = indicator.FormatPlotDataJSON(plot)
		out += "\n"
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
