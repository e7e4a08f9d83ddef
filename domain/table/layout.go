package table

import "strings"

// LayoutKind classifies how a sheet arranges its two timestamp columns.
type LayoutKind int

const (
	// Legacy sheets carry object 1 timestamps in column 0 and object 2
	// timestamps in column 7, with no separator columns.
	Legacy LayoutKind = iota
	// Formatted sheets are combined side-by-side tables: object 1 block in
	// [0, Split), separator columns, object 2 block from Split+FillerCount.
	Formatted
)

const legacyObj2Column = 7

// Layout is the result of sheet layout detection. Split is only meaningful
// for Formatted layouts and records the index of the first separator or
// blank-header column.
type Layout struct {
	Kind  LayoutKind
	Split int
}

func (k LayoutKind) String() string {
	if k == Formatted {
		return "formatted"
	}
	return "legacy"
}

// DetectLayout classifies a table by scanning its headers: any header with
// the separator prefix or a blank header marks the table as Formatted at
// that index. Everything else is Legacy.
func DetectLayout(t ObservationTable) Layout {
	for i, h := range t.Headers {
		trimmed := strings.TrimSpace(h)
		if trimmed == "" || strings.HasPrefix(trimmed, FillerPrefix) {
			return Layout{Kind: Formatted, Split: i}
		}
	}
	return Layout{Kind: Legacy}
}

// TimestampColumns extracts the raw timestamp column of each object block
// under the given layout. The first column of a block holds its timestamps.
// A block that is empty or falls outside the table yields an empty column.
func TimestampColumns(t ObservationTable, layout Layout) (obj1, obj2 []string) {
	switch layout.Kind {
	case Formatted:
		// Object 1 occupies [0, Split); a separator in column 0 means the
		// block is empty.
		if layout.Split > 0 {
			obj1 = t.Column(0)
		}
		start := layout.Split + FillerCount
		if start < t.NumColumns() {
			obj2 = t.Column(start)
		}
	default:
		obj1 = t.Column(0)
		if t.NumColumns() > legacyObj2Column {
			obj2 = t.Column(legacyObj2Column)
		}
	}
	return obj1, obj2
}
