// Package sudoku encodes a 9x9 Sudoku grid as an exact-cover instance,
// solves it with internal/dlx, and decodes the result back onto a grid.
package sudoku

import "fmt"

// There are four families of constraint, 81 columns each: every cell holds
// a digit (cellColumn), every row holds each digit once (rowColumn), every
// column holds each digit once (colColumn), and every 3x3 block holds each
// digit once (blockColumn). d is 0-indexed (0 represents digit 1).

const (
	numDigits     = 9
	numCells      = 81
	numColumns    = 4 * numCells
	numRows       = numDigits * numCells
	cellBase      = 0
	rowBase       = 81
	colBase       = 162
	blockBase     = 243
)

func cellColumn(x, y int) int  { return cellBase + x + 9*y }
func rowColumn(d, y int) int   { return rowBase + d + 9*y }
func colColumn(d, x int) int   { return colBase + d + 9*x }
func blockColumn(d, b int) int { return blockBase + d + 9*b }

// placementRow returns the exact-cover row index for placing digit d (0..8)
// at (x,y), and placementColumns returns the four columns that row covers.
func placementRow(d, x, y int) int { return d + 9*x + 81*y }

func placementColumns(d, x, y int) []int {
	b := (x/3) + 3*(y/3)
	return []int{cellColumn(x, y), rowColumn(d, y), colColumn(d, x), blockColumn(d, b)}
}

// decodeRow recovers (d, x, y) from a row index, inverting placementRow.
func decodeRow(r int) (d, x, y int) {
	return r % 9, (r / 9) % 9, r / 81
}

func columnName(i int) string {
	switch {
	case i < rowBase:
		idx := i - cellBase
		return fmt.Sprintf("cell(%d,%d)", idx%9, idx/9)
	case i < colBase:
		idx := i - rowBase
		return fmt.Sprintf("row(%d,#%d)", idx/9, idx%9+1)
	case i < blockBase:
		idx := i - colBase
		return fmt.Sprintf("col(%d,#%d)", idx/9, idx%9+1)
	default:
		idx := i - blockBase
		return fmt.Sprintf("block(%d,#%d)", idx/9, idx%9+1)
	}
}
