package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"dibatch/domain/table"
	"dibatch/internal"
	"dibatch/internal/config"
	"dibatch/internal/errors"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

// SheetNameForFile derives a sheet name from a CSV filename: the stem,
// truncated to the Excel limit.
func SheetNameForFile(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if len(stem) > maxSheetNameLen {
		stem = stem[:maxSheetNameLen]
	}
	return stem
}

// TempWorkbookPath returns a unique intermediate workbook path in dir.
func TempWorkbookPath(dir, prefix string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", prefix, uuid.NewString()))
}

// ConvertCSVFolder reads every *.csv file in folder into one workbook, one
// sheet per file. Files that cannot be parsed are skipped with a warning; it
// is an error when no file yields a sheet.
func ConvertCSVFolder(folder string, output config.OutputConfig) (*Workbook, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.IOError("failed to list folder "+folder, err)
	}

	var csvFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			csvFiles = append(csvFiles, entry.Name())
		}
	}
	if len(csvFiles) == 0 {
		return nil, errors.NoData("no CSV files found in " + folder)
	}

	log := internal.DefaultLogger
	log.Info("[Convert] found %d CSV files in %s", len(csvFiles), folder)

	wb := NewWorkbook(output)
	written := 0

	for _, name := range csvFiles {
		t, err := readCSVTable(filepath.Join(folder, name))
		if err != nil {
			log.Warn("[Convert] skipping %s: %v", name, err)
			continue
		}

		sheet := SheetNameForFile(name)
		if written == 0 {
			// Reuse the workbook's placeholder sheet for the first file.
			if err := wb.file.SetSheetName(wb.defaultSheet, sheet); err != nil {
				return nil, errors.IOError("failed to name sheet "+sheet, err)
			}
			wb.defaultSheet = ""
		}
		if err := wb.WriteTable(sheet, t); err != nil {
			return nil, err
		}
		written++
		log.Debug("[Convert] added sheet %q with %d rows", sheet, t.NumRows())
	}

	if written == 0 {
		return nil, errors.NoData("no CSV file could be converted")
	}
	return wb, nil
}

func readCSVTable(path string) (table.ObservationTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return table.ObservationTable{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // observation exports are often ragged
	rows, err := reader.ReadAll()
	if err != nil {
		return table.ObservationTable{}, err
	}
	if len(rows) == 0 {
		return table.ObservationTable{}, fmt.Errorf("no data in %s", filepath.Base(path))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return table.ObservationTable{Headers: headers, Rows: rows[1:]}, nil
}
