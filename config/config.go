package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/evdnx/movingavg/indicator/smoothing"
)

// -----------------------------------------------------------------------------
// Exported constants (magic numbers made visible)
// -----------------------------------------------------------------------------
const (
	DefaultSize    = 6
	DefaultWorkers = 4
	DefaultFormat  = FormatJSON

	FormatJSON = "json"
	FormatCSV  = "csv"
)

// -----------------------------------------------------------------------------
// Config – central place for all tunable parameters
// -----------------------------------------------------------------------------
type Config struct {
	Size     int      `toml:"size"`     // classic window width; halved for balanced variants
	Variants []string `toml:"variants"` // selectors, resolved with smoothing.ParseVariant
	Strict   bool     `toml:"strict"`   // reject bad input instead of degrading
	Format   string   `toml:"format"`   // output format: json or csv

	// Workers bounds how many variants a suite computes at once.
	Workers int `toml:"workers"`
}

// DefaultConfig returns a sensible set of defaults: every variant over a
// window of 6.
func DefaultConfig() Config {
	variants := smoothing.Variants()
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.String()
	}
	return Config{
		Size:     DefaultSize,
		Variants: names,
		Format:   DefaultFormat,
		Workers:  DefaultWorkers,
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParsedVariants resolves the configured selectors.
func (c Config) ParsedVariants() ([]smoothing.Variant, error) {
	out := make([]smoothing.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := smoothing.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// -------------------------------------------------------------------
// Validate – checks that the configuration values are sensible.
// -------------------------------------------------------------------
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be greater than 0, got %d", c.Size)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be greater than 0, got %d", c.Workers)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}
	if _, err := c.ParsedVariants(); err != nil {
		return err
	}
	switch c.Format {
	case FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatJSON, FormatCSV, c.Format)
	}
	return nil
}
