// Package dlx implements Knuth's Algorithm X over a toroidal Dancing Links
// matrix. It knows nothing about Sudoku or any other specific exact-cover
// problem: callers build a Matrix from column names and 0/1 rows, then call
// Search.
package dlx

import "fmt"

// Node is one cell of the toroidal matrix: a single 1-entry shared between a
// row and a column, linked to its four neighbors.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *Column
	Row                   int // index into Matrix.rows, shared by all nodes in this row
}

// Column is a column header: a Node plus bookkeeping for Algorithm X's
// minimum-remaining-values heuristic.
type Column struct {
	Node
	Size int // number of rows currently intersecting this column
	Name string
}

// Matrix is a toroidal Dancing Links matrix under construction or search.
// The zero value is not usable; build one with NewMatrix.
type Matrix struct {
	root    *Column
	columns []*Column
	rows    [][]*Node // rows[i] holds i's nodes in the order AddRow received them
}

// NewMatrix builds an empty matrix with one column per entry in columnNames,
// in left-to-right order. Rows are added afterward with AddRow.
func NewMatrix(columnNames []string) *Matrix {
	root := &Column{Name: "root"}
	root.Left = &root.Node
	root.Right = &root.Node

	m := &Matrix{root: root, columns: make([]*Column, len(columnNames))}
	for i, name := range columnNames {
		col := &Column{Name: name}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col
		m.columns[i] = col

		col.Left = root.Left
		col.Right = &root.Node
		root.Left.Right = &col.Node
		root.Left = &col.Node
	}
	return m
}

// AddRow adds a row covering the given column indices and returns its row
// index (0-based, in the order rows are added). columns must be non-empty
// and each index must be within range, or AddRow panics.
func (m *Matrix) AddRow(columns []int) int {
	if len(columns) == 0 {
		panic("dlx: row must cover at least one column")
	}

	rowIndex := len(m.rows)
	nodes := make([]*Node, len(columns))
	for i, c := range columns {
		if c < 0 || c >= len(m.columns) {
			panic(fmt.Sprintf("dlx: column index %d out of range", c))
		}
		col := m.columns[c]
		node := &Node{Column: col, Row: rowIndex}
		nodes[i] = node

		node.Down = &col.Node
		node.Up = col.Up
		col.Up.Down = node
		col.Up = node
		col.Size++
	}

	for i := range nodes {
		nodes[i].Left = nodes[(i+len(nodes)-1)%len(nodes)]
		nodes[i].Right = nodes[(i+1)%len(nodes)]
	}

	m.rows = append(m.rows, nodes)
	return rowIndex
}

// NumColumns reports the number of columns the matrix was built with.
func (m *Matrix) NumColumns() int { return len(m.columns) }

// NumRows reports the number of rows added so far.
func (m *Matrix) NumRows() int { return len(m.rows) }

// Cover removes col from the column list and detaches every row that
// intersects it, without freeing any nodes. Uncover, called on the same
// column in reverse order, restores exactly what Cover removed.
func Cover(col *Column) {
	col.Right.Left = col.Left
	col.Left.Right = col.Right

	for i := col.Down; i != &col.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

// Uncover reverses the effect of the matching Cover call. Cover/Uncover
// pairs must nest like parentheses: the most recently covered column must
// be the next one uncovered.
func Uncover(col *Column) {
	for i := col.Up; i != &col.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	col.Right.Left = &col.Node
	col.Left.Right = &col.Node
}

// CoverRow covers the column of every node in the given row, as if that row
// had just been selected. It is used to pre-commit known values (clues)
// before search begins. A column that an earlier CoverRow already covered
// (two conflicting clues sharing a constraint) is left as it is.
func (m *Matrix) CoverRow(rowIndex int) {
	for _, n := range m.rows[rowIndex] {
		if n.Column.Left.Right == &n.Column.Node {
			Cover(n.Column)
		}
	}
}
