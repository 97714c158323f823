package sudoku

import (
	"testing"

	"github.com/kpitt/dlxsudoku/internal/grid"
)

const samplePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestEncodeProducesTheFullyPopulatedMatrix(t *testing.T) {
	m, _ := Encode(grid.New())
	if m.NumColumns() != numColumns {
		t.Errorf("NumColumns() = %d, want %d", m.NumColumns(), numColumns)
	}
	if m.NumRows() != numRows {
		t.Errorf("NumRows() = %d, want %d", m.NumRows(), numRows)
	}
}

func TestEncodePreCoversExactlyTheClues(t *testing.T) {
	g, err := grid.Parse(samplePuzzle)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	clueCount := 0
	for i := 0; i < grid.Cells; i++ {
		if g.AtIndex(i) != 0 {
			clueCount++
		}
	}

	_, clues := Encode(g)
	if clues.Size() != clueCount {
		t.Errorf("clue set size = %d, want %d", clues.Size(), clueCount)
	}

	for _, r := range clues.Values() {
		d, x, y := decodeRow(r)
		if int(g.At(x, y)) != d+1 {
			t.Errorf("clue row %d decodes to digit %d at (%d,%d), but grid has %d", r, d+1, x, y, g.At(x, y))
		}
	}
}

func TestPlacementRowAndColumnsRoundTrip(t *testing.T) {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			for d := 0; d < numDigits; d++ {
				r := placementRow(d, x, y)
				gotD, gotX, gotY := decodeRow(r)
				if gotD != d || gotX != x || gotY != y {
					t.Fatalf("decodeRow(placementRow(%d,%d,%d)) = (%d,%d,%d)", d, x, y, gotD, gotX, gotY)
				}
			}
		}
	}
}
