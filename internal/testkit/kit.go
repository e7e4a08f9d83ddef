// Package testkit builds synthetic exploration-bout fixtures for tests.
package testkit

import (
	"fmt"
	"math/rand"
	"strconv"

	"dibatch/domain/table"
)

// Table builds an observation table from literal rows.
func Table(headers []string, rows ...[]string) table.ObservationTable {
	return table.ObservationTable{Headers: headers, Rows: rows}
}

// BoutTimestamps generates 2*bouts alternating start/end timestamps with
// plausible bout lengths and gaps, formatted as cell strings.
func BoutTimestamps(bouts int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	values := make([]string, 0, 2*bouts)
	clock := rng.Float64() * 10
	for i := 0; i < bouts; i++ {
		start := clock
		end := start + 0.5 + rng.Float64()*4.5
		values = append(values, formatTimestamp(start), formatTimestamp(end))
		clock = end + rng.Float64()*8
	}
	return values
}

// LegacySheet builds a legacy-layout table: object 1 timestamps in column 0
// and object 2 timestamps in column 7, padding columns in between.
func LegacySheet(obj1Bouts, obj2Bouts int, seed int64) table.ObservationTable {
	ts1 := BoutTimestamps(obj1Bouts, seed)
	ts2 := BoutTimestamps(obj2Bouts, seed+1)

	headers := []string{"Trial time", "X", "Y", "Area", "Zone", "Velocity", "Note", "Trial time 2"}
	n := len(ts1)
	if len(ts2) > n {
		n = len(ts2)
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(headers))
		if i < len(ts1) {
			row[0] = ts1[i]
		}
		if i < len(ts2) {
			row[7] = ts2[i]
		}
		rows[i] = row
	}
	return table.ObservationTable{Headers: headers, Rows: rows}
}

// GroupedSheet builds a raw observation table with an object_id column,
// obj1Bouts bouts tagged "1" followed by obj2Bouts bouts tagged "2".
func GroupedSheet(obj1Bouts, obj2Bouts int, seed int64) table.ObservationTable {
	headers := []string{"timestamp", table.ObjectColumn, "zone"}
	var rows [][]string
	for i, ts := range BoutTimestamps(obj1Bouts, seed) {
		rows = append(rows, []string{ts, "1", fmt.Sprintf("z%d", i%3)})
	}
	for i, ts := range BoutTimestamps(obj2Bouts, seed+1) {
		rows = append(rows, []string{ts, "2", fmt.Sprintf("z%d", i%3)})
	}
	return table.ObservationTable{Headers: headers, Rows: rows}
}

func formatTimestamp(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
