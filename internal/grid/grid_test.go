package grid

import "testing"

func TestViewsCoverAllCellsExactlyOnce(t *testing.T) {
	g := New()
	rowSeen := make(map[int]int)
	colSeen := make(map[int]int)
	blockSeen := make(map[int]int)

	for i := 0; i < Size; i++ {
		row, col, block := g.Row(i), g.Col(i), g.Block(i)
		for pos := 0; pos < Size; pos++ {
			rowSeen[row.index(pos)]++
			colSeen[col.index(pos)]++
			blockSeen[block.index(pos)]++
		}
	}

	for i := 0; i < Cells; i++ {
		if rowSeen[i] != 1 {
			t.Errorf("cell %d visited %d times by row views, want 1", i, rowSeen[i])
		}
		if colSeen[i] != 1 {
			t.Errorf("cell %d visited %d times by column views, want 1", i, colSeen[i])
		}
		if blockSeen[i] != 1 {
			t.Errorf("cell %d visited %d times by block views, want 1", i, blockSeen[i])
		}
	}
}

func TestViewsAreConsistentWithUnderlyingStorage(t *testing.T) {
	g := New()
	g.Row(2).Set(3, 7)
	if got := g.At(3, 2); got != 7 {
		t.Errorf("write through row view not visible via At: got %d, want 7", got)
	}
	if got := g.Col(3).At(2); got != 7 {
		t.Errorf("write through row view not visible via column view: got %d, want 7", got)
	}

	g.Col(5).Set(1, 4)
	if got := g.At(5, 1); got != 4 {
		t.Errorf("write through column view not visible via At: got %d, want 4", got)
	}
}

func TestBlockOrdering(t *testing.T) {
	g := New()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g.Set(x, y, int8((x+y)%9+1))
		}
	}

	block := g.Block(4) // rows 3-5, cols 3-5
	want := []int8{g.At(3, 3), g.At(4, 3), g.At(5, 3), g.At(3, 4), g.At(4, 4), g.At(5, 4), g.At(3, 5), g.At(4, 5), g.At(5, 5)}
	for pos, v := range want {
		if got := block.At(pos); got != v {
			t.Errorf("block.At(%d) = %d, want %d", pos, got, v)
		}
	}
}

func TestCoordinateOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range coordinate")
		}
	}()
	g := New()
	g.At(9, 0)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	g.Set(0, 0, 5)
	clone := g.Clone()
	clone.Set(0, 0, 9)

	if g.At(0, 0) != 5 {
		t.Error("mutating clone affected original grid")
	}
	if !g.Equal(g.Clone()) {
		t.Error("a grid should equal its own clone")
	}
	if g.Equal(clone) {
		t.Error("grids with differing cells should not be equal")
	}
}

func TestStringIsWireFormat(t *testing.T) {
	g := New()
	g.Set(0, 0, 5)
	s := g.String()
	if len(s) != Cells {
		t.Fatalf("String() length = %d, want %d", len(s), Cells)
	}
	if s[0] != '5' {
		t.Errorf("String()[0] = %q, want '5'", s[0])
	}
	if s[1] != '0' {
		t.Errorf("String()[1] = %q, want '0'", s[1])
	}
}
