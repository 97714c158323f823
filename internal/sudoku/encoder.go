package sudoku

import (
	"github.com/kpitt/dlxsudoku/internal/dlx"
	"github.com/kpitt/dlxsudoku/internal/grid"
	"github.com/kpitt/dlxsudoku/internal/set"
)

// Encode builds the fully-populated exact-cover matrix for g: all 729
// candidate placements, regardless of which ones g's clues already rule
// out. It returns the matrix alongside the set of row indices corresponding
// to g's clues, which the caller pre-covers before searching.
func Encode(g *grid.Grid) (*dlx.Matrix, *set.Set[int]) {
	names := make([]string, numColumns)
	for i := range names {
		names[i] = columnName(i)
	}
	m := dlx.NewMatrix(names)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			for d := 0; d < numDigits; d++ {
				row := m.AddRow(placementColumns(d, x, y))
				if row != placementRow(d, x, y) {
					panic("sudoku: row index out of lockstep with placementRow")
				}
			}
		}
	}

	clues := set.NewSet[int]()
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			val := g.At(x, y)
			if val == 0 {
				continue
			}
			clues.Add(placementRow(int(val)-1, x, y))
		}
	}

	return m, clues
}
