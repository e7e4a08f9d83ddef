package table

import (
	"testing"

	"dibatch/internal/errors"
)

func TestGroup_SplitsByObjectID(t *testing.T) {
	tbl := ObservationTable{
		Headers: []string{"timestamp", "object_id", "zone"},
		Rows: [][]string{
			{"1.0", "1", "a"},
			{"2.0", "2", "b"},
			{"3.0", "1", "c"},
			{"4.0", "2", "d"},
			{"5.0", "1", "e"},
		},
	}

	groups, ok, err := Group("trial_A", tbl)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if !ok {
		t.Fatal("expected grouping to be applicable")
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Combined row count equals input row count.
	total := groups[0].Table.NumRows() + groups[1].Table.NumRows()
	if total != tbl.NumRows() {
		t.Errorf("groups hold %d rows, input had %d", total, tbl.NumRows())
	}

	if groups[0].Key != "trial_A_obj_1" || groups[1].Key != "trial_A_obj_2" {
		t.Errorf("unexpected group keys: %q, %q", groups[0].Key, groups[1].Key)
	}

	// Original row order preserved inside each group.
	wantObj1 := []string{"1.0", "3.0", "5.0"}
	for i, want := range wantObj1 {
		if got := groups[0].Table.Cell(i, 0); got != want {
			t.Errorf("obj 1 row %d: got %q, want %q", i, got, want)
		}
	}
	wantObj2 := []string{"2.0", "4.0"}
	for i, want := range wantObj2 {
		if got := groups[1].Table.Cell(i, 0); got != want {
			t.Errorf("obj 2 row %d: got %q, want %q", i, got, want)
		}
	}
}

func TestGroup_NotApplicableWithoutObjectColumn(t *testing.T) {
	tbl := ObservationTable{
		Headers: []string{"timestamp", "zone"},
		Rows:    [][]string{{"1.0", "a"}},
	}

	groups, ok, err := Group("trial_A", tbl)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if ok {
		t.Error("expected grouping to be not applicable")
	}
	if groups != nil {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestGroup_RejectsMoreThanTwoObjects(t *testing.T) {
	tbl := ObservationTable{
		Headers: []string{"timestamp", "object_id"},
		Rows: [][]string{
			{"1.0", "1"},
			{"2.0", "2"},
			{"3.0", "3"},
		},
	}

	_, ok, err := Group("trial_A", tbl)
	if !ok {
		t.Fatal("expected grouping to be applicable")
	}
	if err == nil {
		t.Fatal("expected an error for 3 distinct object ids")
	}
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("expected %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
	}
}

func TestGroup_ExactColumnNameMatch(t *testing.T) {
	// Only the exact lowercase name triggers grouping.
	tbl := ObservationTable{
		Headers: []string{"timestamp", "Object_ID"},
		Rows:    [][]string{{"1.0", "1"}},
	}
	_, ok, _ := Group("trial_A", tbl)
	if ok {
		t.Error("grouping should not trigger on differently-cased column names")
	}
}
