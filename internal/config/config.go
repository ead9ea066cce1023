// Package config defines the dashboard configuration and its loading hooks.
//
// Conventions:
//   - New() returns a Config populated with defaults.
//   - Load(ctx) layers a YAML file and environment variables on top.
//   - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"slices"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Title and Subtitle head the dashboard page.
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`

	// PracticesFile optionally names a YAML file with the practice records.
	// Empty means the built-in records are shown.
	PracticesFile string `koanf:"practices_file"`

	// TrendAxisMax is the value a full-height trend bar represents.
	TrendAxisMax float64 `koanf:"trend_axis_max"`

	// TrendGridlines are the axis labels, top to bottom.
	TrendGridlines []float64 `koanf:"trend_gridlines"`

	// TrendMinBarPercent keeps zero-valued bars visible.
	TrendMinBarPercent float64 `koanf:"trend_min_bar_percent"`

	// TrendDynamicScale scales bars against the largest trend value on the
	// page instead of TrendAxisMax.
	TrendDynamicScale bool `koanf:"trend_dynamic_scale"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		Title:              "Practice Dashboard",
		Subtitle:           "Monitor performance across all dental practices",
		TrendAxisMax:       45,
		TrendGridlines:     []float64{45, 35, 25, 15, 0},
		TrendMinBarPercent: 8,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TrendAxisMax <= 0:
		return fmt.Errorf("%w: trend_axis_max must be positive, got %g", ErrInvalidConfig, c.TrendAxisMax)
	case c.TrendMinBarPercent < 0 || c.TrendMinBarPercent > 100:
		return fmt.Errorf("%w: trend_min_bar_percent must be within [0, 100], got %g", ErrInvalidConfig, c.TrendMinBarPercent)
	case len(c.TrendGridlines) == 0:
		return fmt.Errorf("%w: trend_gridlines must not be empty", ErrInvalidConfig)
	}
	if !slices.IsSortedFunc(c.TrendGridlines, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}) {
		return fmt.Errorf("%w: trend_gridlines must be in descending order", ErrInvalidConfig)
	}
	return nil
}
