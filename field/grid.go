package field

// Grid is a fixed-size field of cells stored row by row.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether (x, y) lies on the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Off-grid positions read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.Contains(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell. Off-grid writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.Contains(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Replace turns every cell of kind from into kind to.
func (g *Grid) Replace(from, to Cell) {
	for i, c := range g.cells {
		if c == from {
			g.cells[i] = to
		}
	}
}

// Clear empties the whole grid.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Count returns how many cells are of kind c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the cells in y*width+x order.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
