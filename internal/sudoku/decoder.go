package sudoku

import "github.com/kpitt/dlxsudoku/internal/grid"

// Decode writes the digit placements named by rows onto a clone of g and
// returns it. Rows corresponding to g's own clues may be included among rows
// (Solve pre-covers them and appends them to the search's rows); writing them
// back is a no-op since they reproduce the same digit already present.
func Decode(g *grid.Grid, rows []int) *grid.Grid {
	out := g.Clone()
	for _, r := range rows {
		d, x, y := decodeRow(r)
		out.Set(x, y, int8(d+1))
	}
	return out
}
