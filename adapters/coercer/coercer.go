// Package coercer turns raw timestamp cells into numeric values using
// deterministic cleanup rules.
package coercer

import (
	"math"
	"strconv"
	"strings"

	"dibatch/internal"
)

// CoercionConfig defines the cleanup behavior.
type CoercionConfig struct {
	// OnDropped is invoked for every non-empty value discarded because it
	// could not be made numeric. The default logs a warning.
	OnDropped func(raw string)
}

// DefaultCoercionConfig returns the standard configuration.
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		OnDropped: func(raw string) {
			internal.DefaultLogger.Warn("could not convert timestamp %q to a numeric value, dropping it", raw)
		},
	}
}

// TimestampCoercer converts raw timestamp columns into numeric series.
type TimestampCoercer struct {
	config CoercionConfig
}

// NewTimestampCoercer creates a coercer with the given config.
func NewTimestampCoercer(config CoercionConfig) *TimestampCoercer {
	if config.OnDropped == nil {
		config.OnDropped = DefaultCoercionConfig().OnDropped
	}
	return &TimestampCoercer{config: config}
}

// CoerceValue converts one raw cell to a number. Cleanup strips every
// character that is not a digit or a decimal point, so trailing units like
// "12.5s" survive as 12.5. The second return value is false when the cell
// is missing or unusable.
func (c *TimestampCoercer) CoerceValue(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		// Missing value, dropped silently.
		return 0, false
	}

	// Already-numeric cells need no cleanup.
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v, true
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, trimmed)

	if cleaned != "" {
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return v, true
		}
	}

	c.config.OnDropped(raw)
	return 0, false
}

// CoerceSeries converts a raw timestamp column into an ordered numeric
// series, dropping missing and unusable values.
func (c *TimestampCoercer) CoerceSeries(values []string) []float64 {
	series := make([]float64, 0, len(values))
	for _, raw := range values {
		if v, ok := c.CoerceValue(raw); ok {
			series = append(series, v)
		}
	}
	return series
}
