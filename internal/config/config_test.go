package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.ConsolidatedSheet != "Consolidated Data" {
		t.Errorf("ConsolidatedSheet = %q", cfg.Output.ConsolidatedSheet)
	}
	if cfg.Output.SummaryStartRow != 10 {
		t.Errorf("SummaryStartRow = %d", cfg.Output.SummaryStartRow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DIBATCH_CONSOLIDATED_SHEET", "Report")
	t.Setenv("DIBATCH_SUMMARY_START_ROW", "5")
	t.Setenv("DIBATCH_KEEP_INTERMEDIATE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.ConsolidatedSheet != "Report" {
		t.Errorf("ConsolidatedSheet = %q", cfg.Output.ConsolidatedSheet)
	}
	if cfg.Output.SummaryStartRow != 5 {
		t.Errorf("SummaryStartRow = %d", cfg.Output.SummaryStartRow)
	}
	if !cfg.CSV.KeepIntermediate {
		t.Error("KeepIntermediate should be true")
	}
}

func TestLoad_RejectsInvalidRows(t *testing.T) {
	t.Setenv("DIBATCH_SUMMARY_START_ROW", "0")
	if _, err := Load(); err == nil {
		t.Error("expected validation error for row 0")
	}
}
