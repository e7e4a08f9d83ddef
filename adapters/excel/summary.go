package excel

import (
	"github.com/xuri/excelize/v2"

	"dibatch/domain/metrics"
	"dibatch/internal/errors"
)

// excelize border style index for a medium weight line.
const mediumBorderStyle = 2

const headerFillColor = "D3D3D3"

// summaryLabels are the four metric rows of a summary block, in order.
var summaryLabels = [4]string{"Obj1 Exploration", "Obj2 Exploration", "TET", "DI"}

// WriteSummary writes one sheet's metric block two columns right of the last
// used data column: four bordered label/value rows starting at the configured
// row, raw bout duration lists in the two columns after that, and headline
// total cells in row 1 and 2. Rounding is applied here, at the export
// boundary.
func (w *Workbook) WriteSummary(sheet string, summary metrics.SubjectSummary) error {
	lastCol, err := w.lastUsedColumn(sheet)
	if err != nil {
		return err
	}

	rounded := summary.Rounded()
	labelCol := lastCol + w.output.SummaryColumnGap
	valueCol := labelCol + 1
	startRow := w.output.SummaryStartRow

	values := [4]interface{}{rounded.Obj1Total, rounded.Obj2Total, rounded.TET, rounded.DI}
	for i, label := range summaryLabels {
		if err := w.setCell(sheet, labelCol, startRow+i, label); err != nil {
			return err
		}
		if err := w.setCell(sheet, valueCol, startRow+i, values[i]); err != nil {
			return err
		}
	}

	if err := w.borderRange(sheet, labelCol, startRow, valueCol, startRow+len(summaryLabels)-1); err != nil {
		return err
	}

	// Raw bout duration lists, full precision.
	boutCol1 := labelCol + 3
	boutCol2 := labelCol + 4
	if err := w.setCell(sheet, boutCol1, 1, "Obj1_Explore"); err != nil {
		return err
	}
	if err := w.setCell(sheet, boutCol2, 1, "Obj2_Explore"); err != nil {
		return err
	}
	for i, d := range summary.Obj1Durations {
		if err := w.setCell(sheet, boutCol1, w.output.BoutListStartRow+i, d); err != nil {
			return err
		}
	}
	for i, d := range summary.Obj2Durations {
		if err := w.setCell(sheet, boutCol2, w.output.BoutListStartRow+i, d); err != nil {
			return err
		}
	}

	// Headline totals near the top of the sheet.
	if err := w.setCell(sheet, labelCol, 1, "Obj1_Explore_Time"); err != nil {
		return err
	}
	if err := w.setCell(sheet, valueCol, 1, rounded.Obj1Total); err != nil {
		return err
	}
	if err := w.setCell(sheet, boutCol1, 2, "Obj2_Explore_Time"); err != nil {
		return err
	}
	if err := w.setCell(sheet, boutCol2, 2, rounded.Obj2Total); err != nil {
		return err
	}

	w.log.Debug("[Workbook] summary block written to sheet %q at column %d", sheet, labelCol)
	return nil
}

// WriteConsolidated rebuilds the consolidated report sheet: a styled two
// column header, then for each summary a sheet-name row, the four metric
// rows, and a blank separator row.
func (w *Workbook) WriteConsolidated(sheet string, summaries []metrics.SubjectSummary) error {
	if idx, err := w.file.GetSheetIndex(sheet); err == nil && idx >= 0 {
		if err := w.file.DeleteSheet(sheet); err != nil {
			return errors.IOError("failed to reset sheet "+sheet, err)
		}
	}
	if _, err := w.file.NewSheet(sheet); err != nil {
		return errors.IOError("failed to create sheet "+sheet, err)
	}

	if err := w.setCell(sheet, 1, 1, "Sheet Name"); err != nil {
		return err
	}
	if err := w.setCell(sheet, 2, 1, "Values"); err != nil {
		return err
	}
	if err := w.styleHeader(sheet); err != nil {
		return err
	}

	row := 2
	for _, summary := range summaries {
		rounded := summary.Rounded()
		if err := w.setCell(sheet, 1, row, rounded.Sheet); err != nil {
			return err
		}
		row++

		values := [4]interface{}{rounded.Obj1Total, rounded.Obj2Total, rounded.TET, rounded.DI}
		for i, label := range summaryLabels {
			if err := w.setCell(sheet, 1, row, label); err != nil {
				return err
			}
			if err := w.setCell(sheet, 2, row, values[i]); err != nil {
				return err
			}
			row++
		}
		row++ // blank separator row
	}

	w.log.Info("[Workbook] consolidated sheet %q rebuilt with %d entries", sheet, len(summaries))
	return nil
}

// lastUsedColumn returns the widest row length of a sheet.
func (w *Workbook) lastUsedColumn(sheet string) (int, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return 0, errors.IOError("failed to scan sheet "+sheet, err)
	}
	last := 0
	for _, row := range rows {
		if len(row) > last {
			last = len(row)
		}
	}
	return last, nil
}

func (w *Workbook) setCell(sheet string, col, row int, value interface{}) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.IOError("invalid cell coordinates", err)
	}
	if err := w.file.SetCellValue(sheet, ref, value); err != nil {
		return errors.IOError("failed to write cell in sheet "+sheet, err)
	}
	return nil
}

func (w *Workbook) borderRange(sheet string, startCol, startRow, endCol, endRow int) error {
	styleID, err := w.file.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Style: mediumBorderStyle, Color: "000000"},
			{Type: "right", Style: mediumBorderStyle, Color: "000000"},
			{Type: "top", Style: mediumBorderStyle, Color: "000000"},
			{Type: "bottom", Style: mediumBorderStyle, Color: "000000"},
		},
	})
	if err != nil {
		return errors.IOError("failed to build border style", err)
	}
	start, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return errors.IOError("invalid cell coordinates", err)
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return errors.IOError("invalid cell coordinates", err)
	}
	if err := w.file.SetCellStyle(sheet, start, end, styleID); err != nil {
		return errors.IOError("failed to style summary range in sheet "+sheet, err)
	}
	return nil
}

func (w *Workbook) styleHeader(sheet string) error {
	styleID, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return errors.IOError("failed to build header style", err)
	}
	if err := w.file.SetCellStyle(sheet, "A1", "B1", styleID); err != nil {
		return errors.IOError("failed to style header in sheet "+sheet, err)
	}
	return nil
}
