package ports

// Workbook is a sheet store that is both read and written during a run:
// the format stage fills it with combined sheets, the DI stage reads them
// back and annotates them with summaries.
type Workbook interface {
	SheetSource
	SummarySink
}
