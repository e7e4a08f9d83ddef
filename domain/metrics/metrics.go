// Package metrics aggregates bout durations into exploration totals and the
// Discrimination Index.
package metrics

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// SubjectSummary holds one sheet's exploration metrics at full precision.
// Use Rounded for the display/export form.
type SubjectSummary struct {
	Sheet         string
	Obj1Total     float64
	Obj2Total     float64
	TET           float64
	DI            float64
	Obj1Durations []float64
	Obj2Durations []float64
	Obj1Profile   BoutProfile
	Obj2Profile   BoutProfile
}

// BoutProfile summarizes the shape of one object's bout durations.
type BoutProfile struct {
	Count  int
	Mean   float64
	Median float64
	Max    float64
}

// Compute aggregates two bout duration sequences into a SubjectSummary.
// DI = (total1 - total2) / TET, defined as 0 when TET is 0.
func Compute(sheet string, durations1, durations2 []float64) SubjectSummary {
	total1 := sum(durations1)
	total2 := sum(durations2)
	tet := total1 + total2

	di := 0.0
	if tet > 0 {
		di = (total1 - total2) / tet
	}

	return SubjectSummary{
		Sheet:         sheet,
		Obj1Total:     total1,
		Obj2Total:     total2,
		TET:           tet,
		DI:            di,
		Obj1Durations: durations1,
		Obj2Durations: durations2,
		Obj1Profile:   profile(durations1),
		Obj2Profile:   profile(durations2),
	}
}

// Rounded returns a copy with the presentation contract applied: totals and
// TET to 1 decimal place, DI to 2. Duration lists and profiles keep full
// precision.
func (s SubjectSummary) Rounded() SubjectSummary {
	out := s
	out.Obj1Total = round(s.Obj1Total, 1)
	out.Obj2Total = round(s.Obj2Total, 1)
	out.TET = round(s.TET, 1)
	out.DI = round(s.DI, 2)
	return out
}

func sum(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	return floats.Sum(durations)
}

func profile(durations []float64) BoutProfile {
	p := BoutProfile{Count: len(durations)}
	if len(durations) == 0 {
		return p
	}
	// The stats helpers only fail on empty input, which is guarded above.
	p.Mean, _ = stats.Mean(durations)
	p.Median, _ = stats.Median(durations)
	p.Max, _ = stats.Max(durations)
	return p
}

func round(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}
