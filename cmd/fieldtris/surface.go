package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/fieldtris/config"
)

// boardSurface draws field cells into an offscreen image that is kept
// between frames and only repainted when the field changed.
type boardSurface struct {
	image    *ebiten.Image
	cellSize int
	gap      int
	offsetX  int
}

func newBoardSurface(cfg config.Config) *boardSurface {
	cellSize := cfg.Window.Height / cfg.Field.Height
	if cellSize <= cfg.Window.CellGap {
		cellSize = cfg.Window.CellGap + 1
	}
	width := cellSize * cfg.Field.Width
	return &boardSurface{
		image:    ebiten.NewImage(width, cellSize*cfg.Field.Height),
		cellSize: cellSize,
		gap:      cfg.Window.CellGap,
		offsetX:  max(0, cfg.Window.Width/2-width/2),
	}
}

func (s *boardSurface) clear() {
	s.image.Clear()
}

func (s *boardSurface) DrawFilledCell(x, y int, c color.RGBA) {
	size := float32(s.cellSize - s.gap)
	vector.DrawFilledRect(s.image,
		float32(x*s.cellSize), float32(y*s.cellSize),
		size, size, c, false)
}
