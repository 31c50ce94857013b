// Package config loads the lvldsa TOML configuration.
//
// Every field has a default, so an absent file or a partial file is valid:
//
//	seed = 42
//
//	[bench]
//	sizes = [100, 500, 1000, 5000, 10000]
//	searches = 1000
//	username_length = 10
//
//	[search]
//	array_size = 10000
//	max_value = 10000
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	// Seed drives every random input so runs are reproducible.
	Seed int64 `toml:"seed"`

	Bench  Bench  `toml:"bench"`
	Search Search `toml:"search"`
}

// Bench configures the user-database comparison.
type Bench struct {
	Sizes          []int `toml:"sizes"`
	Searches       int   `toml:"searches"`
	UsernameLength int   `toml:"username_length"`
}

// Search configures the random arrays used by the search lesson.
type Search struct {
	ArraySize int `toml:"array_size"`
	MaxValue  int `toml:"max_value"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 42,
		Bench: Bench{
			Sizes:          []int{100, 500, 1000, 5000, 10000},
			Searches:       1000,
			UsernameLength: 10,
		},
		Search: Search{ArraySize: 10000, MaxValue: 10000},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("%w: bench.sizes is empty", ErrInvalidConfig)
	}
	for _, n := range c.Bench.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: bench size %d", ErrInvalidConfig, n)
		}
	}
	if c.Bench.Searches < 1 {
		return fmt.Errorf("%w: bench.searches = %d", ErrInvalidConfig, c.Bench.Searches)
	}
	if c.Bench.UsernameLength < 1 {
		return fmt.Errorf("%w: bench.username_length = %d", ErrInvalidConfig, c.Bench.UsernameLength)
	}
	if c.Search.ArraySize < 0 || c.Search.MaxValue < 1 {
		return fmt.Errorf("%w: search array_size=%d max_value=%d",
			ErrInvalidConfig, c.Search.ArraySize, c.Search.MaxValue)
	}

	return nil
}
