package field

import "fmt"

// Verify checks that the bricks on the field are exactly the figure's cells
// at its origin, less any that sit on wall. After the game is over no
// bricks may remain.
func (e *Engine) Verify() error {
	want := NewGrid(e.grid.Width(), e.grid.Height())
	if !e.gameOver {
		for x := range FigureSize {
			for y := range FigureSize {
				fx, fy := e.figure.X+x, e.figure.Y+y
				if e.figure.Cells[x][y] && e.grid.Contains(fx, fy) && e.grid.At(fx, fy) != Wall {
					want.Set(fx, fy, Brick)
				}
			}
		}
	}

	for y := range e.grid.Height() {
		for x := range e.grid.Width() {
			got := e.grid.At(x, y)
			if got > Wall {
				return fmt.Errorf("cell (%d, %d) has unknown kind %d", x, y, got)
			}
			if (got == Brick) != (want.At(x, y) == Brick) {
				return fmt.Errorf("cell (%d, %d) is %s, figure %s at (%d, %d) disagrees",
					x, y, got, e.catalog[e.figure.Shape].Name, e.figure.X, e.figure.Y)
			}
		}
	}
	return nil
}
