package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/movingavg/indicator/smoothing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Size != 6 {
		t.Fatalf("expected default Size=6, got %d", cfg.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	variants, err := cfg.ParsedVariants()
	require.NoError(t, err)
	assert.Equal(t, smoothing.Variants(), variants)
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "negative size",
			modify:  func(c *Config) { c.Size = -1 },
			wantErr: true,
		},
		{
			name:    "zero workers",
			modify:  func(c *Config) { c.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "no variants",
			modify:  func(c *Config) { c.Variants = nil },
			wantErr: true,
		},
		{
			name:    "unknown variant",
			modify:  func(c *Config) { c.Variants = []string{"SMA", "TEMA"} },
			wantErr: true,
		},
		{
			name:    "bad format",
			modify:  func(c *Config) { c.Format = "xml" },
			wantErr: true,
		},
		{
			name: "valid custom values",
			modify: func(c *Config) {
				c.Size = 10
				c.Variants = []string{"bsma", "Slope"}
				c.Format = FormatCSV
			},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.modify(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movavg.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
size = 9
variants = ["BEMA", "bwma"]
format = "csv"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Size)
	assert.Equal(t, []string{"BEMA", "bwma"}, cfg.Variants)
	assert.Equal(t, FormatCSV, cfg.Format)
	assert.Equal(t, DefaultWorkers, cfg.Workers, "missing keys keep defaults")
	assert.False(t, cfg.Strict)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `size = "big"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `window = 3`))
	assert.ErrorContains(t, err, "unknown key")

	_, err = Load(writeConfig(t, `size = 0`))
	assert.ErrorContains(t, err, "size must be greater than 0")
}
