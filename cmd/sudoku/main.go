// Command sudoku solves one or more Sudoku puzzles read from a file, one
// 81-character line per puzzle, and prints one solved line per puzzle to
// standard output.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/dlxsudoku/internal/grid"
	"github.com/kpitt/dlxsudoku/internal/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sudoku <puzzle-file>")
		os.Exit(1)
	}

	grids, err := grid.ReadFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, g := range grids {
		solved := sudoku.Solve(g)
		if isStderrTTY() && !sudoku.Verify(solved) {
			color.New(color.FgHiRed).Fprintln(os.Stderr, "warning: puzzle has no completion; unknown cells left as 0")
		}
		fmt.Fprintln(out, solved.String())
	}
}

func isStderrTTY() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
