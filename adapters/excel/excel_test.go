package excel

import (
	"strings"
	"testing"

	"dibatch/domain/metrics"
	"dibatch/domain/table"
	"dibatch/internal/config"
)

func TestSheetNameForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"trial_A.csv", "trial_A"},
		{"dir/trial_B.CSV", "trial_B"},
		{strings.Repeat("x", 40) + ".csv", strings.Repeat("x", 31)},
	}
	for _, tt := range tests {
		if got := SheetNameForFile(tt.filename); got != tt.want {
			t.Errorf("SheetNameForFile(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestTempWorkbookPath(t *testing.T) {
	a := TempWorkbookPath("/tmp", "converted")
	b := TempWorkbookPath("/tmp", "converted")
	if a == b {
		t.Error("temp paths must be unique")
	}
	if !strings.HasSuffix(a, ".xlsx") || !strings.Contains(a, "converted_") {
		t.Errorf("unexpected temp path %q", a)
	}
}

func TestWorkbook_WriteReadRoundTrip(t *testing.T) {
	wb := NewWorkbook(config.Default().Output)
	defer wb.Close()

	in := table.ObservationTable{
		Headers: []string{"timestamp", "object_id"},
		Rows: [][]string{
			{"1.5", "1"},
			{"2.5", "2"},
		},
	}
	if err := wb.WriteTable("trial", in); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out, err := wb.ReadSheet("trial")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if out.NumRows() != 2 || out.NumColumns() != 2 {
		t.Fatalf("round trip shape = %dx%d", out.NumRows(), out.NumColumns())
	}
	if out.Headers[1] != "object_id" {
		t.Errorf("headers = %v", out.Headers)
	}
	if out.Cell(0, 0) != "1.5" {
		t.Errorf("cell(0,0) = %q", out.Cell(0, 0))
	}
}

func TestWorkbook_DataSheetNames(t *testing.T) {
	cfg := config.Default().Output
	wb := NewWorkbook(cfg)
	defer wb.Close()

	tbl := table.ObservationTable{Headers: []string{"a"}, Rows: [][]string{{"1"}}}
	if err := wb.WriteTable("trial", tbl); err != nil {
		t.Fatal(err)
	}
	if err := wb.WriteTable(cfg.ConsolidatedSheet, tbl); err != nil {
		t.Fatal(err)
	}

	for _, name := range wb.DataSheetNames() {
		if name == cfg.ConsolidatedSheet {
			t.Errorf("reserved sheet %q must be excluded from data sheets", name)
		}
	}
}

func TestWorkbook_WriteSummaryLayout(t *testing.T) {
	cfg := config.Default().Output
	wb := NewWorkbook(cfg)
	defer wb.Close()

	// Two data columns, so the summary block starts in column D (2+2).
	tbl := table.ObservationTable{
		Headers: []string{"start", "zone"},
		Rows:    [][]string{{"1.0", "a"}},
	}
	if err := wb.WriteTable("trial", tbl); err != nil {
		t.Fatal(err)
	}

	summary := metrics.Compute("trial", []float64{2, 4}, []float64{4})
	if err := wb.WriteSummary("trial", summary); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	checks := map[string]string{
		"D10": "Obj1 Exploration",
		"E10": "6",
		"D11": "Obj2 Exploration",
		"E11": "4",
		"D12": "TET",
		"E12": "10",
		"D13": "DI",
		"E13": "0.2",
		"D1":  "Obj1_Explore_Time",
		"G1":  "Obj1_Explore",
		"H1":  "Obj2_Explore",
		"G2":  "Obj2_Explore_Time",
		"G3":  "2", // first obj1 bout duration
		"H3":  "4", // first obj2 bout duration
	}
	for ref, want := range checks {
		got, err := wb.file.GetCellValue("trial", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", ref, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", ref, got, want)
		}
	}
}

func TestWorkbook_WriteConsolidated(t *testing.T) {
	cfg := config.Default().Output
	wb := NewWorkbook(cfg)
	defer wb.Close()

	summaries := []metrics.SubjectSummary{
		metrics.Compute("trial_A", []float64{6}, []float64{4}),
		metrics.Compute("trial_B", nil, nil),
	}
	if err := wb.WriteConsolidated(cfg.ConsolidatedSheet, summaries); err != nil {
		t.Fatalf("WriteConsolidated failed: %v", err)
	}

	checks := map[string]string{
		"A1": "Sheet Name",
		"B1": "Values",
		"A2": "trial_A",
		"A3": "Obj1 Exploration",
		"B3": "6",
		"A4": "Obj2 Exploration",
		"B4": "4",
		"A5": "TET",
		"B5": "10",
		"A6": "DI",
		"B6": "0.2",
		"A7": "", // blank separator row
		"A8": "trial_B",
		"B9": "0",
	}
	for ref, want := range checks {
		got, err := wb.file.GetCellValue(cfg.ConsolidatedSheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", ref, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", ref, got, want)
		}
	}
}

func TestConvertCSVFolder_NoFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := ConvertCSVFolder(dir, config.Default().Output); err == nil {
		t.Error("expected an error for a folder without CSV files")
	}
}
