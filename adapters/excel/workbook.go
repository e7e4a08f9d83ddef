// Package excel adapts xlsx workbooks (and CSV folders) to the pipeline's
// table and summary ports.
package excel

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"dibatch/domain/table"
	"dibatch/internal"
	"dibatch/internal/config"
	"dibatch/internal/errors"
)

// Workbook wraps an excelize file behind the pipeline ports. All writes
// mutate the in-memory workbook; nothing touches disk until Save.
type Workbook struct {
	file         *excelize.File
	output       config.OutputConfig
	defaultSheet string // placeholder sheet of a fresh workbook, "" when opened
	log          *internal.Logger
}

// OpenWorkbook opens an existing workbook.
func OpenWorkbook(path string, output config.OutputConfig) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.IOError("failed to open workbook "+path, err)
	}
	return &Workbook{file: f, output: output, log: internal.DefaultLogger}, nil
}

// NewWorkbook creates an empty in-memory workbook.
func NewWorkbook(output config.OutputConfig) *Workbook {
	f := excelize.NewFile()
	return &Workbook{file: f, output: output, defaultSheet: f.GetSheetName(0), log: internal.DefaultLogger}
}

// pruneDefaultSheet removes the placeholder sheet a fresh workbook starts
// with, once a real sheet has been written around it.
func (w *Workbook) pruneDefaultSheet() {
	if w.defaultSheet == "" || len(w.file.GetSheetList()) < 2 {
		return
	}
	rows, err := w.file.GetRows(w.defaultSheet)
	if err != nil || len(rows) > 0 {
		return
	}
	_ = w.file.DeleteSheet(w.defaultSheet)
	w.defaultSheet = ""
}

// SheetNames returns all sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// DataSheetNames returns the sheet names to process, excluding the reserved
// consolidated report sheet.
func (w *Workbook) DataSheetNames() []string {
	names := make([]string, 0)
	for _, name := range w.file.GetSheetList() {
		if name != w.output.ConsolidatedSheet {
			names = append(names, name)
		}
	}
	return names
}

// ReadSheet reads one sheet into an observation table. The first row is the
// header row; remaining rows are data. Cell values are trimmed.
func (w *Workbook) ReadSheet(name string) (table.ObservationTable, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return table.ObservationTable{}, errors.IOError("failed to read sheet "+name, err)
	}
	if len(rows) == 0 {
		return table.ObservationTable{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
		}
		dataRows = append(dataRows, cells)
	}

	w.log.Debug("[Workbook] sheet %q read (%d columns, %d rows)", name, len(headers), len(dataRows))
	return table.ObservationTable{Headers: headers, Rows: dataRows}, nil
}

// WriteTable writes a table as a sheet, replacing the sheet if it exists.
func (w *Workbook) WriteTable(sheet string, t table.ObservationTable) error {
	if idx, err := w.file.GetSheetIndex(sheet); err == nil && idx >= 0 {
		// Replace only when the sheet already holds data; an empty sheet is
		// reused as-is.
		if rows, err := w.file.GetRows(sheet); err == nil && len(rows) > 0 {
			if err := w.file.DeleteSheet(sheet); err != nil {
				return errors.IOError("failed to replace sheet "+sheet, err)
			}
			if _, err := w.file.NewSheet(sheet); err != nil {
				return errors.IOError("failed to recreate sheet "+sheet, err)
			}
		}
	} else if _, err := w.file.NewSheet(sheet); err != nil {
		return errors.IOError("failed to create sheet "+sheet, err)
	}

	if err := w.setRow(sheet, 1, stringCells(t.Headers)); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := w.setRow(sheet, i+2, typedCells(row)); err != nil {
			return err
		}
	}
	if sheet != w.defaultSheet {
		w.pruneDefaultSheet()
	}
	return nil
}

// Save persists the accumulated in-memory mutations to path. This is the
// single commit point of a run.
func (w *Workbook) Save(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return errors.IOError("failed to save workbook "+path, err)
	}
	w.log.Info("[Workbook] saved %s", path)
	return nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) setRow(sheet string, row int, cells []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.IOError("invalid cell coordinates", err)
	}
	if err := w.file.SetSheetRow(sheet, ref, &cells); err != nil {
		return errors.IOError("failed to write row in sheet "+sheet, err)
	}
	return nil
}

func stringCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// typedCells preserves numeric cells as numbers so downstream tools see
// proper values instead of text.
func typedCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if f, err := strconv.ParseFloat(v, 64); err == nil && v != "" {
			cells[i] = f
		} else {
			cells[i] = v
		}
	}
	return cells
}
