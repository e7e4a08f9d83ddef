package ports

import (
	"dibatch/domain/metrics"
	"dibatch/domain/table"
)

// SummarySink receives the pipeline's outputs. Implementations accumulate
// mutations in memory; persisting them is the caller's explicit final step.
type SummarySink interface {
	// WriteTable writes a table as a sheet, replacing any existing content.
	WriteTable(sheet string, t table.ObservationTable) error
	// WriteSummary writes one sheet's metric block next to its data.
	WriteSummary(sheet string, summary metrics.SubjectSummary) error
	// WriteConsolidated rebuilds the consolidated report sheet from the
	// given summaries, in order.
	WriteConsolidated(sheet string, summaries []metrics.SubjectSummary) error
}
