package sudoku

import "github.com/kpitt/dlxsudoku/internal/grid"

// fullMask has bits 0..8 set: the mask a row/column/block must match
// exactly, one bit per digit 1..9.
const fullMask = 0b111111111

// Verify reports whether every row, column, and block of g contains each
// digit 1..9 exactly once. A value outside 1..9 anywhere makes Verify
// return false; it never panics.
func Verify(g *grid.Grid) bool {
	for i := 0; i < 9; i++ {
		if !viewIsComplete(g.Row(i)) || !viewIsComplete(g.Col(i)) || !viewIsComplete(g.Block(i)) {
			return false
		}
	}
	return true
}

func viewIsComplete(v grid.View) bool {
	var mask uint
	for pos := 0; pos < v.Len(); pos++ {
		val := v.At(pos)
		if val < 1 || val > 9 {
			return false
		}
		mask |= 1 << uint(val-1)
	}
	return mask == fullMask
}
