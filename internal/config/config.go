// Package config defines the engine configuration and its loading hooks.
//
// Conventions:
// - New() builds a Config holding every default.
// - Load layers a YAML file and OPSBOARD_* env vars over the defaults.
// - Validate reports the first offending field wrapped in ErrInvalidConfig.
package config

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/okian/opsboard/internal/domain/period"
)

// Output formats accepted by OutputFormat.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Locale selects period label formatting, e.g. "en-US".
	Locale string `koanf:"locale"`

	// OutputFormat is the default report format: json or table.
	OutputFormat string `koanf:"output_format"`

	// SellThroughOptimalMin and SellThroughWarningMin are the inclusive lower
	// bounds of the Optimal and Warning sell-through bands, in percent.
	SellThroughOptimalMin float64 `koanf:"sell_through_optimal_min"`
	SellThroughWarningMin float64 `koanf:"sell_through_warning_min"`

	// MenuSplitX and MenuSplitY split the menu matrix (margin %, volume %).
	MenuSplitX float64 `koanf:"menu_split_x"`
	MenuSplitY float64 `koanf:"menu_split_y"`

	// StoreRentSplit and StoreRevenueSplit split the store portfolio matrix.
	StoreRentSplit    float64 `koanf:"store_rent_split"`
	StoreRevenueSplit float64 `koanf:"store_revenue_split"`

	// TierAMax and TierBMax are the cumulative-share ceilings of the A and B tiers.
	TierAMax float64 `koanf:"tier_a_max"`
	TierBMax float64 `koanf:"tier_b_max"`

	// WasteAlertLimit raises a critical alert above this waste share, in percent.
	WasteAlertLimit float64 `koanf:"waste_alert_limit"`

	// MetricsTextfile, when set, receives a Prometheus textfile after each report.
	MetricsTextfile string `koanf:"metrics_textfile"`

	// WorkerCount bounds concurrent evaluations when several datasets are given.
	WorkerCount int `koanf:"worker_count"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Locale:                string(period.DefaultLocale),
		OutputFormat:          FormatTable,
		SellThroughOptimalMin: 90,
		SellThroughWarningMin: 75,
		MenuSplitX:            50,
		MenuSplitY:            50,
		StoreRentSplit:        300,
		StoreRevenueSplit:     750,
		TierAMax:              80,
		TierBMax:              95,
		WasteAlertLimit:       35,
		WorkerCount:           runtime.NumCPU(),
	}
}

// Validate checks field ranges and cross-field ordering.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("log_level", c.LogLevel)
	}
	if _, err := period.ParseLocale(c.Locale); err != nil {
		return invalid("locale", c.Locale)
	}
	switch c.OutputFormat {
	case FormatJSON, FormatTable:
	default:
		return invalid("output_format", c.OutputFormat)
	}
	for name, v := range map[string]float64{
		"sell_through_optimal_min": c.SellThroughOptimalMin,
		"sell_through_warning_min": c.SellThroughWarningMin,
		"menu_split_x":             c.MenuSplitX,
		"menu_split_y":             c.MenuSplitY,
		"store_rent_split":         c.StoreRentSplit,
		"store_revenue_split":      c.StoreRevenueSplit,
		"tier_a_max":               c.TierAMax,
		"tier_b_max":               c.TierBMax,
		"waste_alert_limit":        c.WasteAlertLimit,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(name, v)
		}
	}
	if c.SellThroughOptimalMin <= c.SellThroughWarningMin {
		return fmt.Errorf("%w: sell_through_optimal_min %v must exceed sell_through_warning_min %v",
			ErrInvalidConfig, c.SellThroughOptimalMin, c.SellThroughWarningMin)
	}
	if c.TierAMax <= 0 || c.TierAMax > c.TierBMax || c.TierBMax > 100 {
		return fmt.Errorf("%w: tiers need 0 < tier_a_max (%v) <= tier_b_max (%v) <= 100",
			ErrInvalidConfig, c.TierAMax, c.TierBMax)
	}
	if c.WasteAlertLimit <= 0 || c.WasteAlertLimit > 100 {
		return invalid("waste_alert_limit", c.WasteAlertLimit)
	}
	if c.WorkerCount <= 0 {
		return invalid("worker_count", c.WorkerCount)
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, field, v)
}
