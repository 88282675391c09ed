// Package config loads the driver's batch-run settings from an
// optional tclc.toml in the working directory. The file is the only
// override of the defaults: cmd/tclc has no per-field flags for them.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the driver's case-discovery configuration (§6.4). Every
// field matches the distilled spec's hardcoded defaults when no
// tclc.toml is present.
type Config struct {
	CasesDir   string  `toml:"cases_dir"`
	KernelsDir string  `toml:"kernels_dir"`
	FirstCase  int     `toml:"first_case"`
	LastCase   int     `toml:"last_case"`
	SkipCases  []int64 `toml:"skip_cases"`
}

// Default returns the byte-for-byte equivalent of the original
// driver's hardcoded case range and skip list.
func Default() Config {
	return Config{
		CasesDir:   "./cases",
		KernelsDir: "./kernels",
		FirstCase:  1,
		LastCase:   20,
		SkipCases:  []int64{6, 8, 10},
	}
}

// Load reads tclc.toml from path, overlaying it on top of Default.
// A missing file is not an error: it just means every field keeps its
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Skips reports whether case number n is in the skip list.
func (c Config) Skips(n int64) bool {
	for _, s := range c.SkipCases {
		if s == n {
			return true
		}
	}
	return false
}
