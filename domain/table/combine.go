package table

import (
	"fmt"
	"sort"

	"dibatch/internal/errors"
)

// FillerPrefix names the empty separator columns inserted between the two
// object blocks of a combined sheet.
const FillerPrefix = "empty_"

// FillerCount is the number of separator columns between the blocks.
const FillerCount = 4

// Combine aligns the object groups of one stem side by side into a single
// combined table. Keys are sorted lexically so the _obj_1 block always
// precedes the _obj_2 block. A single group passes through unchanged.
//
// With two groups the result is [group1 cols] + [FillerCount empty cols] +
// [group2 cols], aligned strictly by row position: when the groups differ in
// length, the shorter one's missing cells are blank.
func Combine(groups []ObjectGroup) (ObservationTable, error) {
	if len(groups) == 0 {
		return ObservationTable{}, errors.InvalidInput("no object groups to combine")
	}
	if len(groups) > MaxObjects {
		return ObservationTable{}, errors.InvalidInput(fmt.Sprintf(
			"%d object groups, at most %d can be combined", len(groups), MaxObjects))
	}

	sorted := make([]ObjectGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	if len(sorted) == 1 {
		return sorted[0].Table, nil
	}

	left, right := sorted[0].Table, sorted[1].Table

	headers := make([]string, 0, left.NumColumns()+FillerCount+right.NumColumns())
	headers = append(headers, left.Headers...)
	for i := 1; i <= FillerCount; i++ {
		headers = append(headers, fmt.Sprintf("%s%d", FillerPrefix, i))
	}
	headers = append(headers, right.Headers...)

	rowCount := left.NumRows()
	if right.NumRows() > rowCount {
		rowCount = right.NumRows()
	}

	rows := make([][]string, rowCount)
	for i := 0; i < rowCount; i++ {
		row := make([]string, len(headers))
		for c := 0; c < left.NumColumns(); c++ {
			row[c] = left.Cell(i, c)
		}
		offset := left.NumColumns() + FillerCount
		for c := 0; c < right.NumColumns(); c++ {
			row[offset+c] = right.Cell(i, c)
		}
		rows[i] = row
	}

	return ObservationTable{Headers: headers, Rows: rows}, nil
}
