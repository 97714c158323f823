package grid

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───────┬───────┬───────┐"
	borderBot    = "└───────┴───────┴───────┘"
	dividerMajor = "├───────┼───────┼───────┤"
	edgeMajor    = "│"
)

var (
	solvedColor = color.New(color.Bold, color.FgHiGreen)
	givenColor  = color.New(color.Bold, color.FgHiBlue)
	blankColor  = color.New(color.FgHiBlack)
)

// Print renders g to w as a colorized box-drawn grid, for terminal use.
// given, if non-nil, marks which cells were part of the original puzzle
// (rendered in a different color than cells filled in by the solver); it
// may be nil to render every filled cell the same way. This is purely a
// display convenience: it never feeds back into parsing, solving, or the
// plain wire format produced by String.
func (g *Grid) Print(w io.Writer, given *Grid) {
	fmt.Fprintln(w, borderTop)
	for y := 0; y < Size; y++ {
		if y != 0 && y%3 == 0 {
			fmt.Fprintln(w, dividerMajor)
		}
		fmt.Fprint(w, edgeMajor, " ")
		for x := 0; x < Size; x++ {
			if x != 0 && x%3 == 0 {
				fmt.Fprint(w, edgeMajor, " ")
			}
			printCell(w, g.At(x, y), given != nil && given.At(x, y) != 0)
		}
		fmt.Fprintln(w, edgeMajor)
	}
	fmt.Fprintln(w, borderBot)
}

func printCell(w io.Writer, val int8, isGiven bool) {
	switch {
	case val == 0:
		blankColor.Fprint(w, "· ")
	case isGiven:
		givenColor.Fprintf(w, "%d ", val)
	default:
		solvedColor.Fprintf(w, "%d ", val)
	}
}
