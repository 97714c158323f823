package sudoku

import (
	"github.com/kpitt/dlxsudoku/internal/dlx"
	"github.com/kpitt/dlxsudoku/internal/grid"
)

// Solve returns a grid with g's clues preserved and every other cell filled
// in, if a completion exists. If g has no valid completion, cells that
// could not be determined remain 0; callers that need to know whether the
// result is actually complete should call Verify on it.
func Solve(g *grid.Grid) *grid.Grid {
	m, clues := Encode(g)
	for _, row := range clues.Values() {
		m.CoverRow(row)
	}

	rows, ok := m.Search()
	if !ok {
		return g.Clone()
	}

	allRows := append(rows, clues.Values()...)
	return Decode(g, allRows)
}

// SolveWithStats behaves exactly like Solve, additionally returning the
// dlx.Stats the search gathered along the way (nodes visited, backtracks,
// matrix size, elapsed time). It exists for diagnostics and demos, not for
// the solver contract: nothing in Stats changes what Solve would have
// returned for the same grid.
func SolveWithStats(g *grid.Grid) (*grid.Grid, dlx.Stats) {
	m, clues := Encode(g)
	for _, row := range clues.Values() {
		m.CoverRow(row)
	}

	rows, ok, stats := m.SearchWithStats()
	if !ok {
		return g.Clone(), stats
	}

	allRows := append(rows, clues.Values()...)
	return Decode(g, allRows), stats
}
