// Package app orchestrates the per-sheet processing pipeline: grouping,
// combining, layout detection, bout extraction and metric computation.
package app

import (
	"dibatch/adapters/coercer"
	"dibatch/domain/bout"
	"dibatch/domain/metrics"
	"dibatch/domain/table"
	"dibatch/internal"
	"dibatch/internal/config"
	"dibatch/internal/errors"
	"dibatch/ports"
)

// Pipeline runs the observation processing stages over a workbook. Sheets
// are processed strictly in the order given by the caller, which fixes the
// consolidated report order.
type Pipeline struct {
	cfg     config.Config
	coercer *coercer.TimestampCoercer
	log     *internal.Logger
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg config.Config) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		coercer: coercer.NewTimestampCoercer(coercer.DefaultCoercionConfig()),
		log:     internal.DefaultLogger,
	}
}

// Format groups every sheet by object_id and writes the side-by-side
// combined sheet to the sink. Sheets without an object_id column are passed
// over; sheets that fail are skipped with a warning. It is an error when no
// sheet had an object_id column at all.
func (p *Pipeline) Format(source ports.SheetSource, sink ports.SummarySink, sheets []string) (int, error) {
	written := 0
	grouped := false

	for _, name := range sheets {
		t, err := source.ReadSheet(name)
		if err != nil {
			p.log.Warn("[Format] %v", errors.SheetProcessing(name, err))
			continue
		}

		groups, ok, err := table.Group(name, t)
		if !ok {
			// No object_id column: the sheet is forwarded unchanged and
			// will be handled downstream as a legacy layout.
			p.log.Debug("[Format] sheet %q has no %s column, forwarding unchanged", name, table.ObjectColumn)
			if err := sink.WriteTable(name, t); err != nil {
				return written, err
			}
			continue
		}
		grouped = true
		if err != nil {
			p.log.Warn("[Format] %v", errors.SheetProcessing(name, err))
			continue
		}

		combined, err := table.Combine(groups)
		if err != nil {
			p.log.Warn("[Format] %v", errors.SheetProcessing(name, err))
			continue
		}
		if err := sink.WriteTable(name, combined); err != nil {
			return written, err
		}
		written++
		p.log.Info("[Format] combined sheet %q (%d groups, %d rows)", name, len(groups), combined.NumRows())
	}

	if !grouped {
		return 0, errors.NoData("no sheets with an " + table.ObjectColumn + " column found")
	}
	return written, nil
}

// ExtractBouts pulls each object's timestamp column under the detected
// layout and converts it into ordered bout durations.
func (p *Pipeline) ExtractBouts(t table.ObservationTable, layout table.Layout) (durations1, durations2 []float64) {
	raw1, raw2 := table.TimestampColumns(t, layout)
	series1 := p.coercer.CoerceSeries(raw1)
	series2 := p.coercer.CoerceSeries(raw2)
	return bout.PairDurations(series1), bout.PairDurations(series2)
}

// ProcessSheet computes one sheet's exploration metrics.
func (p *Pipeline) ProcessSheet(name string, t table.ObservationTable) metrics.SubjectSummary {
	layout := table.DetectLayout(t)
	p.log.Debug("[DI] sheet %q classified as %s layout", name, layout.Kind)
	durations1, durations2 := p.ExtractBouts(t, layout)
	return metrics.Compute(name, durations1, durations2)
}

// Process chains the format and DI stages of one run: the source's sheets
// are grouped and combined into work, then metrics are computed over work's
// sheets. A source without any object_id column is not an error here — its
// sheets were forwarded unchanged and DI proceeds under the legacy layout.
func (p *Pipeline) Process(source ports.SheetSource, work ports.Workbook, sheets []string) ([]metrics.SubjectSummary, error) {
	if _, err := p.Format(source, work, sheets); err != nil {
		if errors.GetCode(err) != errors.CodeNoData {
			return nil, err
		}
		p.log.Info("[Process] no %s formatting needed, proceeding with DI calculation", table.ObjectColumn)
	}
	return p.ComputeDI(work, work, work.SheetNames())
}

// ComputeDI runs metric computation over every sheet, writes each summary
// block to the sink, and rebuilds the consolidated report. A failing sheet
// is logged and excluded; the batch continues.
func (p *Pipeline) ComputeDI(source ports.SheetSource, sink ports.SummarySink, sheets []string) ([]metrics.SubjectSummary, error) {
	summaries := make([]metrics.SubjectSummary, 0, len(sheets))

	for _, name := range sheets {
		if name == p.cfg.Output.ConsolidatedSheet {
			continue
		}
		t, err := source.ReadSheet(name)
		if err != nil {
			p.log.Warn("[DI] %v", errors.SheetProcessing(name, err))
			continue
		}

		summary := p.ProcessSheet(name, t)
		if err := sink.WriteSummary(name, summary); err != nil {
			p.log.Warn("[DI] %v", errors.SheetProcessing(name, err))
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) > 0 {
		if err := sink.WriteConsolidated(p.cfg.Output.ConsolidatedSheet, summaries); err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}
