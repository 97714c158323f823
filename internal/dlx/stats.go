package dlx

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// MatrixInfo describes the shape of a Matrix: how many columns and rows it
// has, how many nodes that produces, and what fraction of the theoretical
// dense Columns x Rows grid those nodes occupy.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage
}

// Stats reports what SearchWithStats observed while solving. It carries no
// weight in whether a solution is found; it exists for diagnostics and
// demos.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// Info computes a MatrixInfo snapshot for m as it currently stands. Covered
// columns are not counted, so calling this mid-search reports only the live
// columns; Rows and TotalNodes always count every row added, covered or not.
func (m *Matrix) Info() MatrixInfo {
	info := MatrixInfo{Rows: len(m.rows)}
	for n := m.root.Right; n != &m.root.Node; n = n.Right {
		info.Columns++
	}

	for _, nodes := range m.rows {
		info.TotalNodes += len(nodes)
	}

	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// SearchWithStats runs the same search as Search, additionally counting
// nodes visited and backtracks taken and timing the call. It performs no
// cancellation and no timeout: a pathological instance will run to
// completion or exhaust the call stack exactly as Search would.
func (m *Matrix) SearchWithStats() ([]int, bool, Stats) {
	stats := Stats{MatrixSize: m.Info()}

	start := time.Now()
	solution := make([]int, 0, len(m.columns))
	ok := searchWithStats(m.root, &solution, &stats)
	stats.TimeElapsed = time.Since(start)

	return solution, ok, stats
}

func searchWithStats(root *Column, solution *[]int, stats *Stats) bool {
	stats.NodesVisited++

	if root.Right == &root.Node {
		stats.SolutionsFound++
		return true
	}

	col := chooseColumn(root)
	Cover(col)

	for r := col.Down; r != &col.Node; r = r.Down {
		*solution = append(*solution, r.Row)

		for j := r.Right; j != r; j = j.Right {
			Cover(j.Column)
		}

		if searchWithStats(root, solution, stats) {
			return true
		}

		for j := r.Left; j != r; j = j.Left {
			Uncover(j.Column)
		}
		*solution = (*solution)[:len(*solution)-1]
		stats.BacktrackCount++
	}

	Uncover(col)
	return false
}

// PrintStats writes a colorized summary of s to stdout.
func (s Stats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Println("Matrix Info:")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", s.MatrixSize.Columns))
	fmt.Printf("  Rows:        %s\n", color.HiYellowString("%d", s.MatrixSize.Rows))
	fmt.Printf("  Total Nodes: %s\n", color.HiYellowString("%d", s.MatrixSize.TotalNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", s.MatrixSize.Density))

	fmt.Println("\nSearch Statistics:")
	fmt.Printf("  Nodes Visited:   %s\n", color.HiGreenString("%d", s.NodesVisited))
	fmt.Printf("  Backtracks:      %s\n", color.HiRedString("%d", s.BacktrackCount))
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", s.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", s.TimeElapsed))

	if s.TimeElapsed > 0 {
		nodesPerSec := float64(s.NodesVisited) / s.TimeElapsed.Seconds()
		fmt.Printf("  Nodes/Second:    %s\n", color.HiMagentaString("%.0f", nodesPerSec))
	}
}

// PrintMatrix writes a truncated, colorized view of m's columns and first
// few rows to stdout, for interactive debugging of a matrix under
// construction.
func (m *Matrix) PrintMatrix() {
	fmt.Printf("\n%s\n", color.HiCyanString("Constraint Matrix Structure"))
	fmt.Printf("%s\n", color.HiCyanString("==========================="))

	fmt.Print("Columns: ")
	count := 0
	for n := m.root.Right; n != &m.root.Node && count < 10; n = n.Right {
		fmt.Printf("%s ", color.HiYellowString(n.Column.Name))
		count++
	}
	if count == 10 {
		fmt.Printf("... (%d more)", m.Info().Columns-10)
	}
	fmt.Println()

	fmt.Printf("Rows (%d total):\n", len(m.rows))
	for i, nodes := range m.rows {
		if i >= 5 {
			fmt.Printf("... (%d more rows)\n", len(m.rows)-5)
			break
		}
		fmt.Printf("  Row %d: ", i)
		for _, n := range nodes {
			fmt.Printf("%s ", n.Column.Name)
		}
		fmt.Println()
	}
}
