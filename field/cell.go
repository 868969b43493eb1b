package field

import "image/color"

// Cell is the content of one field position.
type Cell uint8

const (
	// Empty is a vacant cell.
	Empty Cell = iota
	// Brick is a cell occupied by the falling figure.
	Brick
	// Wall is settled material that no longer belongs to a figure.
	Wall
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Brick:
		return "Brick"
	case Wall:
		return "Wall"
	}
	return "Cell(?)"
}

// Palette maps each cell kind to the color it is drawn with.
type Palette [3]color.RGBA

// DefaultPalette is dark blue for empty cells, red for the falling figure and green for walls.
var DefaultPalette = Palette{
	Empty: {R: 0x00, G: 0x00, B: 0x55, A: 0xff},
	Brick: {R: 0x99, G: 0x00, B: 0x00, A: 0xff},
	Wall:  {R: 0x00, G: 0x66, B: 0x00, A: 0xff},
}

// Color returns the palette entry for c.
func (p Palette) Color(c Cell) color.RGBA {
	if int(c) >= len(p) {
		return p[Empty]
	}
	return p[c]
}

// Direction is a one-cell translation of the figure.
type Direction uint8

const (
	Down Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Direction(?)"
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 1
}

// Rotation is a quarter turn of the figure mask.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	if r == Clockwise {
		return "Clockwise"
	}
	return "CounterClockwise"
}
