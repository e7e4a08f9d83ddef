// Package bout reconstructs discrete exploration bouts from a stream of
// alternating start/end timestamps.
package bout

// Bout is one continuous exploration event.
type Bout struct {
	Start float64
	End   float64
}

// Duration is End minus Start. No sign correction is applied; a reversed
// pair yields a negative duration.
func (b Bout) Duration() float64 {
	return b.End - b.Start
}

// Pair folds a timestamp series into bouts, pairing positions (0,1), (2,3)
// and so on. An unmatched trailing timestamp is dropped.
func Pair(timestamps []float64) []Bout {
	bouts := make([]Bout, 0, len(timestamps)/2)
	for i := 0; i+1 < len(timestamps); i += 2 {
		bouts = append(bouts, Bout{Start: timestamps[i], End: timestamps[i+1]})
	}
	return bouts
}

// PairDurations returns the ordered bout durations of a timestamp series.
func PairDurations(timestamps []float64) []float64 {
	bouts := Pair(timestamps)
	durations := make([]float64, len(bouts))
	for i, b := range bouts {
		durations[i] = b.Duration()
	}
	return durations
}
