package field

import "fmt"

// FigureSize is the width and height of a figure's bounding box.
const FigureSize = 4

// Mask is a figure occupancy mask indexed [x][y].
type Mask [FigureSize][FigureSize]bool

// Rotate returns the mask turned a quarter in the given direction.
func (m Mask) Rotate(dir Rotation) Mask {
	var rotated Mask
	for x := range FigureSize {
		for y := range FigureSize {
			if dir == Clockwise {
				rotated[x][y] = m[y][FigureSize-x-1]
			} else {
				rotated[x][y] = m[FigureSize-y-1][x]
			}
		}
	}
	return rotated
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for x := range FigureSize {
		for y := range FigureSize {
			if m[x][y] {
				n++
			}
		}
	}
	return n
}

// String renders the mask one row per line, '#' for occupied cells.
func (m Mask) String() string {
	buf := make([]byte, 0, FigureSize*(FigureSize+1))
	for y := range FigureSize {
		for x := range FigureSize {
			if m[x][y] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		if y < FigureSize-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}

// ParseMask builds a mask from FigureSize rows of FigureSize characters,
// where '#' marks an occupied cell and anything else a vacant one.
func ParseMask(rows ...string) (Mask, error) {
	var m Mask
	if len(rows) != FigureSize {
		return m, fmt.Errorf("mask needs %d rows, got %d", FigureSize, len(rows))
	}
	for y, row := range rows {
		if len(row) != FigureSize {
			return m, fmt.Errorf("mask row %d: needs %d columns, got %d", y, FigureSize, len(row))
		}
		for x := range FigureSize {
			m[x][y] = row[x] == '#'
		}
	}
	return m, nil
}

func mustMask(rows ...string) Mask {
	m, err := ParseMask(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Shape is a named figure in its canonical orientation.
type Shape struct {
	Name string
	Mask Mask
}

// Catalog is an immutable list of shapes a figure is picked from.
type Catalog []Shape

// ClassicCatalog holds the three shapes of the classic field: L, I and S.
var ClassicCatalog = Catalog{
	{Name: "L", Mask: mustMask(
		"....",
		".#..",
		".#..",
		".##.",
	)},
	{Name: "I", Mask: mustMask(
		".#..",
		".#..",
		".#..",
		".#..",
	)},
	{Name: "S", Mask: mustMask(
		"..#.",
		".##.",
		".#..",
		"....",
	)},
}

// StandardCatalog holds the seven tetrominoes.
var StandardCatalog = Catalog{
	{Name: "I", Mask: mustMask(
		"....",
		"####",
		"....",
		"....",
	)},
	{Name: "O", Mask: mustMask(
		"....",
		".##.",
		".##.",
		"....",
	)},
	{Name: "T", Mask: mustMask(
		"....",
		".#..",
		"###.",
		"....",
	)},
	{Name: "S", Mask: mustMask(
		"....",
		".##.",
		"##..",
		"....",
	)},
	{Name: "Z", Mask: mustMask(
		"....",
		"##..",
		".##.",
		"....",
	)},
	{Name: "J", Mask: mustMask(
		"....",
		"#...",
		"###.",
		"....",
	)},
	{Name: "L", Mask: mustMask(
		"....",
		"..#.",
		"###.",
		"....",
	)},
}

// CatalogByName returns a built-in catalog: "classic" or "standard".
func CatalogByName(name string) (Catalog, bool) {
	switch name {
	case "", "classic":
		return ClassicCatalog, true
	case "standard":
		return StandardCatalog, true
	}
	return nil, false
}
