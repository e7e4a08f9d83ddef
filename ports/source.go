package ports

import "dibatch/domain/table"

// SheetSource provides read access to the sheets of a workbook.
type SheetSource interface {
	// SheetNames returns the workbook's sheet names in workbook order.
	SheetNames() []string
	// ReadSheet reads one sheet into an observation table. The first row
	// becomes the header row.
	ReadSheet(name string) (table.ObservationTable, error)
}
