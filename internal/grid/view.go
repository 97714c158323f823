package grid

// View is a forward-iterable window onto 9 of a Grid's cells: a row, a
// column, or a 3x3 block. All three kinds of view read and write through
// the same backing storage as the Grid they were created from, so a write
// through one view is immediately visible through any other view over the
// same cell.
type View struct {
	g     *Grid
	index func(pos int) int // maps 0..8 within the view to a linear grid index
}

// Len is the number of cells in a view; always 9.
func (v View) Len() int { return Size }

// At returns the value at position pos (0..8) within the view.
func (v View) At(pos int) int8 {
	return v.g.cells[v.index(pos)]
}

// Set stores val at position pos (0..8) within the view.
func (v View) Set(pos int, val int8) {
	v.g.SetIndex(v.index(pos), val)
}

// Each calls fn once per cell in forward order.
func (v View) Each(fn func(pos int, val int8)) {
	for pos := 0; pos < Size; pos++ {
		fn(pos, v.At(pos))
	}
}

// Row returns a view over row y (0..8): cells (0,y)..(8,y), stride 1.
func (g *Grid) Row(y int) View {
	return View{g: g, index: func(x int) int { return index(x, y) }}
}

// Col returns a view over column x (0..8): cells (x,0)..(x,8), stride 9.
func (g *Grid) Col(x int) View {
	return View{g: g, index: func(y int) int { return index(x, y) }}
}

// Block returns a view over the 3x3 block b (0..8), numbered left-to-right
// then top-to-bottom, in row-major order within the block.
func (g *Grid) Block(b int) View {
	top, left := 3*(b/3), 3*(b%3)
	return View{g: g, index: func(pos int) int {
		return index(left+pos%3, top+pos/3)
	}}
}
