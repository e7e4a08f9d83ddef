package config

import (
	"os"
	"strconv"

	"dibatch/internal/errors"
)

// Config holds the pipeline settings that vary between deployments. Layout
// conventions that are part of the data contract (filler columns, legacy
// timestamp positions) live in the domain packages, not here.
type Config struct {
	Output OutputConfig
	CSV    CSVConfig
}

// OutputConfig holds report placement settings.
type OutputConfig struct {
	ConsolidatedSheet string // reserved report sheet name, skipped on read
	SummaryStartRow   int    // first row of the per-sheet summary block
	SummaryColumnGap  int    // columns between the last data column and the block
	BoutListStartRow  int    // first row of the raw bout duration lists
}

// CSVConfig holds CSV-to-workbook conversion settings.
type CSVConfig struct {
	KeepIntermediate bool // keep the intermediate workbook in pipeline mode
}

// Default returns the conventions the original tooling established.
func Default() Config {
	return Config{
		Output: OutputConfig{
			ConsolidatedSheet: "Consolidated Data",
			SummaryStartRow:   10,
			SummaryColumnGap:  2,
			BoutListStartRow:  3,
		},
		CSV: CSVConfig{KeepIntermediate: false},
	}
}

// Load reads configuration from environment variables on top of defaults.
func Load() (Config, error) {
	cfg := Default()
	cfg.Output.ConsolidatedSheet = getEnvOrDefault("DIBATCH_CONSOLIDATED_SHEET", cfg.Output.ConsolidatedSheet)
	cfg.Output.SummaryStartRow = getEnvIntOrDefault("DIBATCH_SUMMARY_START_ROW", cfg.Output.SummaryStartRow)
	cfg.Output.SummaryColumnGap = getEnvIntOrDefault("DIBATCH_SUMMARY_COLUMN_GAP", cfg.Output.SummaryColumnGap)
	cfg.Output.BoutListStartRow = getEnvIntOrDefault("DIBATCH_BOUT_LIST_START_ROW", cfg.Output.BoutListStartRow)
	cfg.CSV.KeepIntermediate = getEnvBoolOrDefault("DIBATCH_KEEP_INTERMEDIATE", cfg.CSV.KeepIntermediate)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Output.ConsolidatedSheet == "" {
		return errors.InvalidInput("consolidated sheet name must not be empty")
	}
	if cfg.Output.SummaryStartRow < 1 || cfg.Output.BoutListStartRow < 1 {
		return errors.InvalidInput("summary rows are 1-based and must be positive")
	}
	if cfg.Output.SummaryColumnGap < 1 {
		return errors.InvalidInput("summary column gap must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
