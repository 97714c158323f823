package dlx

import "testing"

func toyMatrix() *Matrix {
	// The textbook exact-cover instance: columns A-G, rows as below. The
	// unique exact cover is rows 0 ({C,E,F}), 3 ({A,D}), and 4 ({B,G}),
	// in 0-based order matching the row slice below.
	m := NewMatrix([]string{"A", "B", "C", "D", "E", "F", "G"})
	rows := [][]int{
		{2, 4, 5}, // C E F
		{0, 3, 6}, // A D G
		{1, 2, 5}, // B C F
		{0, 3},    // A D
		{1, 6},    // B G
		{3, 4, 6}, // D E G
	}
	for _, r := range rows {
		m.AddRow(r)
	}
	return m
}

func columnSizes(m *Matrix) map[string]int {
	sizes := make(map[string]int)
	for n := m.root.Right; n != &m.root.Node; n = n.Right {
		sizes[n.Column.Name] = n.Column.Size
	}
	return sizes
}

func TestCoverUncoverRestoresColumnSizes(t *testing.T) {
	m := toyMatrix()
	before := columnSizes(m)

	Cover(m.columns[0]) // A
	Uncover(m.columns[0])

	after := columnSizes(m)
	if len(before) != len(after) {
		t.Fatalf("column count changed: before %d, after %d", len(before), len(after))
	}
	for name, size := range before {
		if after[name] != size {
			t.Errorf("column %s size = %d after cover/uncover, want %d", name, after[name], size)
		}
	}
}

func TestNestedCoverUncoverRestoresState(t *testing.T) {
	m := toyMatrix()
	before := columnSizes(m)

	var covered []*Column
	for n := m.root.Right; n != &m.root.Node && len(covered) < 3; n = n.Right {
		covered = append(covered, n.Column)
	}
	for _, col := range covered {
		Cover(col)
	}
	for i := len(covered) - 1; i >= 0; i-- {
		Uncover(covered[i])
	}

	after := columnSizes(m)
	for name, size := range before {
		if after[name] != size {
			t.Errorf("column %s size = %d after nested cover/uncover, want %d", name, after[name], size)
		}
	}
}

func TestAddRowRejectsEmptyRow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty row")
		}
	}()
	m := NewMatrix([]string{"A"})
	m.AddRow(nil)
}

func TestAddRowRejectsOutOfRangeColumn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range column index")
		}
	}()
	m := NewMatrix([]string{"A"})
	m.AddRow([]int{5})
}

func TestInfoReportsShape(t *testing.T) {
	m := toyMatrix()
	info := m.Info()
	if info.Columns != 7 {
		t.Errorf("Columns = %d, want 7", info.Columns)
	}
	if info.Rows != 6 {
		t.Errorf("Rows = %d, want 6", info.Rows)
	}
	wantNodes := 3 + 3 + 3 + 2 + 2 + 3
	if info.TotalNodes != wantNodes {
		t.Errorf("TotalNodes = %d, want %d", info.TotalNodes, wantNodes)
	}
}
