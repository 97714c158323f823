// Command dlxdemo demonstrates internal/dlx in two settings: solving a
// handful of Sudoku puzzles (with search statistics and matrix
// introspection) and, separately, running Algorithm X directly against a
// textbook exact-cover instance that has nothing to do with Sudoku at all.
// It carries no weight in the core algorithm's correctness; it exists to
// show that internal/dlx knows nothing about Sudoku.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kpitt/dlxsudoku/internal/dlx"
	"github.com/kpitt/dlxsudoku/internal/grid"
	"github.com/kpitt/dlxsudoku/internal/sudoku"
)

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	runSudokuCases()
	demonstrateAlgorithmDetails()
	runToyExactCover()
}

var testCases = []struct {
	name   string
	puzzle string
}{
	{
		name:   "Easy Puzzle",
		puzzle: "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
	},
	{
		name:   "Minimal (17-clue) Puzzle",
		puzzle: ".......1.4.........2...........5.4.7..8...3....1.9....3..4..2...5.1........8.6...",
	},
}

func runSudokuCases() {
	for i, tc := range testCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))

		g, err := grid.Parse(tc.puzzle)
		if err != nil {
			fmt.Println(color.HiRedString("  skipped: %v", err))
			continue
		}

		fmt.Println(color.HiBlueString("Original Puzzle:"))
		g.Print(color.Output, nil)

		fmt.Println(color.HiGreenString("\nSolving with Dancing Links Algorithm..."))
		solved, stats := sudoku.SolveWithStats(g)

		if sudoku.Verify(solved) {
			fmt.Printf("%s\n", color.HiGreenString("✓ Solved successfully! (%v)", stats.TimeElapsed))
			fmt.Println(color.HiBlueString("Solution:"))
			solved.Print(color.Output, g)
			fmt.Println(color.HiGreenString("✓ Solution verified as correct!"))
		} else {
			fmt.Printf("%s\n", color.HiRedString("✗ Failed to solve (%v)", stats.TimeElapsed))
		}
		stats.PrintStats()

		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}
}

func demonstrateAlgorithmDetails() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Algorithm Details"))
	fmt.Println(color.HiCyanString("================================"))

	fmt.Println("\nAlgorithm X, run over a Dancing Links matrix, solves exact cover")
	fmt.Println("problems efficiently. For Sudoku we model the puzzle as an exact")
	fmt.Println("cover problem with four constraint families:")

	fmt.Printf("\n%s\n", color.HiYellowString("1. Constraint Matrix Structure:"))
	fmt.Println("   • 324 columns representing all constraints")
	fmt.Println("   • 81 cell constraints: each cell must hold exactly one digit")
	fmt.Println("   • 81 row constraints: each row must contain each digit exactly once")
	fmt.Println("   • 81 column constraints: each column must contain each digit exactly once")
	fmt.Println("   • 81 block constraints: each 3x3 block must contain each digit exactly once")

	fmt.Printf("\n%s\n", color.HiYellowString("2. Matrix Rows:"))
	fmt.Println("   • 729 rows (9x9x9) representing every (digit, column, row) placement")
	fmt.Println("   • Each row has exactly 4 nodes, one per constraint family")
	fmt.Println("   • Rows for the puzzle's clues are pre-covered before search begins")

	fmt.Printf("\n%s\n", color.HiYellowString("3. Dancing Links Operations:"))
	fmt.Println("   • Cover: remove a column and every row intersecting it")
	fmt.Println("   • Uncover: restore exactly what the matching Cover removed")
	fmt.Println("   • Search: recursively choose a row and cover/uncover around it")

	fmt.Printf("\n%s\n", color.HiYellowString("4. Key optimization:"))
	fmt.Println("   • Minimum remaining values (S-heuristic): always branch on the column")
	fmt.Println("     with the fewest live rows, so dead ends are found as early as possible")
}

// runToyExactCover exercises internal/dlx directly, independent of any
// Sudoku concept: the classic 7-column exact cover instance used to
// introduce Algorithm X, with a known unique solution.
func runToyExactCover() {
	fmt.Printf("\n%s\n", color.HiCyanString("Generic Exact Cover (non-Sudoku)"))
	fmt.Println(color.HiCyanString("================================="))
	fmt.Println("Columns A-G; rows are subsets of {A..G}. This is Knuth's own textbook")
	fmt.Println("example; its unique exact cover is {A,D} + {C,E,F} + {B,G}.")

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	m := dlx.NewMatrix(columns)

	rows := [][]int{
		{0, 3, 6}, // A D G
		{0, 3},    // A D
		{3, 4, 6}, // D E G
		{2, 4, 5}, // C E F
		{1, 2, 5}, // B C F
		{1, 6},    // B G
	}
	for _, cols := range rows {
		m.AddRow(cols)
	}

	m.PrintMatrix()

	solution, ok := m.Search()
	if !ok {
		fmt.Println(color.HiRedString("✗ No exact cover exists"))
		return
	}

	fmt.Print(color.HiGreenString("✓ Exact cover found, rows: "))
	for i, r := range solution {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(r)
	}
	fmt.Println()
}
