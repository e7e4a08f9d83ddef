package table

import (
	"fmt"
	"strings"

	"dibatch/internal/errors"
)

// ObjectColumn is the column name that triggers per-object grouping.
// The match is exact and case-sensitive.
const ObjectColumn = "object_id"

// MaxObjects is the number of tracked objects supported per sheet.
const MaxObjects = 2

// ObservationTable is one sheet worth of observation data: a header row
// followed by positional data rows. Rows may be ragged; missing cells read
// as empty strings.
type ObservationTable struct {
	Headers []string
	Rows    [][]string
}

// ObjectGroup is the subset of a table whose rows share one object_id
// value, keyed by "<stem>_obj_<id>".
type ObjectGroup struct {
	Key      string
	ObjectID string
	Table    ObservationTable
}

// NumColumns returns the header width of the table.
func (t ObservationTable) NumColumns() int {
	return len(t.Headers)
}

// NumRows returns the number of data rows.
func (t ObservationTable) NumRows() int {
	return len(t.Rows)
}

// Cell returns the value at (row, col), or "" when the row is too short.
func (t ObservationTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Column returns the values of one column across all data rows.
func (t ObservationTable) Column(col int) []string {
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, col)
	}
	return values
}

// ColumnIndex returns the position of the named header, or -1.
func (t ObservationTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Group splits a table into per-object groups by the object_id column,
// preserving row order inside each group. The second return value is false
// when the table has no object_id column, in which case grouping is not
// applicable and the caller should process the table as-is.
//
// More than MaxObjects distinct identifiers is rejected: only the
// _obj_1/_obj_2 pairing is meaningful downstream, and silently dropping
// extra groups would hide data.
func Group(stem string, t ObservationTable) ([]ObjectGroup, bool, error) {
	idCol := t.ColumnIndex(ObjectColumn)
	if idCol < 0 {
		return nil, false, nil
	}

	order := make([]string, 0, MaxObjects)
	byID := make(map[string][][]string)
	for i := range t.Rows {
		id := strings.TrimSpace(t.Cell(i, idCol))
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = append(byID[id], t.Rows[i])
	}

	if len(order) > MaxObjects {
		return nil, true, errors.InvalidInput(fmt.Sprintf(
			"sheet %q: %d distinct %s values (%s), only %d objects are supported",
			stem, len(order), ObjectColumn, strings.Join(order, ", "), MaxObjects))
	}

	groups := make([]ObjectGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, ObjectGroup{
			Key:      fmt.Sprintf("%s_obj_%s", stem, id),
			ObjectID: id,
			Table:    ObservationTable{Headers: t.Headers, Rows: byID[id]},
		})
	}
	return groups, true, nil
}
