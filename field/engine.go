// Package field implements the falling-block playing field: the grid of cells,
// the figure currently falling through it, and the commands and gravity that
// move that figure until it settles into wall.
//
// An Engine is not safe for concurrent use. Hosts call HandleKey, Advance and
// Render from a single goroutine, once per frame.
package field

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 15
	DefaultStepMS = 500
)

var ErrInvalidOptions = errors.New("field: invalid options")

// Surface is the drawing target of Render.
type Surface interface {
	DrawFilledCell(x, y int, c color.RGBA)
}

// Input reports the last key pressed and whether it went down this frame.
type Input interface {
	ReadKey() (key Key, newlyPressed bool)
}

// Clock reports the milliseconds elapsed since the previous frame.
type Clock interface {
	ElapsedMS() int
}

// Options configure an Engine. The zero value of every field selects its default.
type Options struct {
	Width   int
	Height  int
	StepMS  int
	Catalog Catalog
	Source  Source
	Keymap  *Keymap
	Palette *Palette

	// EndOnSpawnCollision ends the game when a new figure would overlap wall.
	// When false the overlapping cells are dropped and play continues.
	EndOnSpawnCollision bool

	// CatchUp runs one gravity step per elapsed StepMS instead of at most one per Advance.
	CatchUp bool

	// OnRedraw is called whenever the field changed and should be shown.
	OnRedraw func()
}

// Figure is the piece currently falling.
type Figure struct {
	Shape int
	X, Y  int
	Cells Mask
}

// Stats counts what happened since the engine was created or reset.
type Stats struct {
	Spawns            int
	GravityTicks      int
	Landings          int
	RejectedRotations int
	DegradedSpawns    int
}

// Engine owns the field and its falling figure.
type Engine struct {
	grid     *Grid
	figure   Figure
	catalog  Catalog
	source   Source
	keymap   *Keymap
	palette  Palette
	stepMS   int
	catchUp  bool
	endOnHit bool
	onRedraw func()

	accumulatedMS int
	gameOver      bool
	stats         Stats
}

// New creates an engine and spawns its first figure.
func New(opts Options) (*Engine, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.StepMS == 0 {
		opts.StepMS = DefaultStepMS
	}
	if opts.Width < FigureSize || opts.Height < FigureSize {
		return nil, fmt.Errorf("%w: field %dx%d is smaller than a %dx%d figure",
			ErrInvalidOptions, opts.Width, opts.Height, FigureSize, FigureSize)
	}
	if opts.StepMS < 0 {
		return nil, fmt.Errorf("%w: negative step %dms", ErrInvalidOptions, opts.StepMS)
	}
	if opts.Catalog == nil {
		opts.Catalog = ClassicCatalog
	}
	if len(opts.Catalog) == 0 {
		return nil, fmt.Errorf("%w: empty shape catalog", ErrInvalidOptions)
	}
	for _, s := range opts.Catalog {
		if s.Mask.Count() == 0 {
			return nil, fmt.Errorf("%w: shape %q has no cells", ErrInvalidOptions, s.Name)
		}
	}
	if opts.Source == nil {
		opts.Source = NewSource(0)
	}
	if opts.Keymap == nil {
		opts.Keymap = DefaultKeymap()
	}
	palette := DefaultPalette
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	e := &Engine{
		grid:     NewGrid(opts.Width, opts.Height),
		catalog:  opts.Catalog,
		source:   opts.Source,
		keymap:   opts.Keymap,
		palette:  palette,
		stepMS:   opts.StepMS,
		catchUp:  opts.CatchUp,
		endOnHit: opts.EndOnSpawnCollision,
		onRedraw: opts.OnRedraw,
	}
	e.SpawnNextFigure()
	return e, nil
}

// Reset empties the field, clears the game over state and spawns a new figure.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.figure = Figure{}
	e.accumulatedMS = 0
	e.gameOver = false
	e.stats = Stats{}
	e.SpawnNextFigure()
	e.redraw()
}

func (e *Engine) Width() int       { return e.grid.Width() }
func (e *Engine) Height() int      { return e.grid.Height() }
func (e *Engine) Cells() []Cell    { return e.grid.Snapshot() }
func (e *Engine) Figure() Figure   { return e.figure }
func (e *Engine) Catalog() Catalog { return e.catalog }
func (e *Engine) Keymap() *Keymap  { return e.keymap }
func (e *Engine) GameOver() bool   { return e.gameOver }
func (e *Engine) Stats() Stats     { return e.stats }

// Cell returns the cell at (x, y), or Empty for off-field positions.
func (e *Engine) Cell(x, y int) Cell {
	if !e.grid.Contains(x, y) {
		return Empty
	}
	return e.grid.At(x, y)
}

// AccumulatedMS returns the time gathered towards the next gravity step.
func (e *Engine) AccumulatedMS() int { return e.accumulatedMS }

// StepMS returns the gravity step length.
func (e *Engine) StepMS() int { return e.stepMS }

// SpawnNextFigure settles the current figure into wall and places a new
// random figure at the top of the field, turned a quarter at random half of
// the time.
func (e *Engine) SpawnNextFigure() {
	e.grid.Replace(Brick, Wall)

	shape := int(e.source.NextU32() % uint32(len(e.catalog)))
	e.figure = Figure{
		Shape: shape,
		X:     e.grid.Width()/2 - FigureSize/2,
		Y:     0,
		Cells: e.catalog[shape].Mask,
	}
	e.stats.Spawns++

	if e.overlapsWall() {
		e.stats.DegradedSpawns++
		if e.endOnHit {
			e.gameOver = true
			return
		}
	}
	e.stamp()

	lr := e.source.NextU32() % 2
	rr := e.source.NextU32() % 2
	if lr > 0 {
		e.turn(Clockwise)
	} else if rr > 0 {
		e.turn(CounterClockwise)
	}
}

// IsBlocked reports whether moving the figure one cell in dir would leave
// the field or hit wall.
func (e *Engine) IsBlocked(dir Direction) bool {
	dx, dy := dir.delta()
	for x := range FigureSize {
		for y := range FigureSize {
			if !e.figure.Cells[x][y] {
				continue
			}
			fx, fy := e.figure.X+x+dx, e.figure.Y+y+dy
			if !e.grid.Contains(fx, fy) || e.grid.At(fx, fy) == Wall {
				return true
			}
		}
	}
	return false
}

// Move shifts the figure one cell. A blocked downward move lands the
// figure and spawns the next one; other blocked moves do nothing.
// It reports whether the field changed.
func (e *Engine) Move(dir Direction) bool {
	if e.gameOver {
		return false
	}
	if e.IsBlocked(dir) {
		if dir == Down {
			e.stats.Landings++
			e.SpawnNextFigure()
			return true
		}
		return false
	}

	dx, dy := dir.delta()
	e.figure.X += dx
	e.figure.Y += dy
	e.grid.Replace(Brick, Empty)
	e.stamp()
	return true
}

// Rotate turns the figure a quarter in place. The turn is refused when any
// cell of the turned figure would leave the field or cover an occupied
// cell. It reports whether the turn was taken.
func (e *Engine) Rotate(dir Rotation) bool {
	if e.gameOver {
		return false
	}
	ok := e.turn(dir)
	if !ok {
		e.stats.RejectedRotations++
	}
	return ok
}

func (e *Engine) turn(dir Rotation) bool {
	candidate := e.figure.Cells.Rotate(dir)

	e.grid.Replace(Brick, Empty)
	ok := e.fits(candidate)
	if ok {
		e.figure.Cells = candidate
	}
	e.stamp()
	return ok
}

// HardDrop moves the figure down until it rests, then lands it.
func (e *Engine) HardDrop() bool {
	if e.gameOver {
		return false
	}
	for !e.IsBlocked(Down) {
		e.Move(Down)
	}
	return e.Move(Down)
}

// Advance feeds elapsed time to the gravity clock. Once StepMS has gathered
// the figure falls one row and the clock restarts from zero; time beyond the
// step is dropped unless the engine was built with CatchUp. The clock
// saturates rather than wrapping on huge inputs.
// It returns the number of gravity steps taken.
func (e *Engine) Advance(elapsedMS int) int {
	if e.gameOver || elapsedMS < 0 {
		return 0
	}
	if !e.catchUp {
		elapsedMS = min(elapsedMS, e.stepMS)
	}
	if elapsedMS > math.MaxInt-e.accumulatedMS {
		e.accumulatedMS = math.MaxInt
	} else {
		e.accumulatedMS += elapsedMS
	}
	if e.accumulatedMS < e.stepMS {
		return 0
	}

	steps := 1
	if e.catchUp && e.stepMS > 0 {
		steps = e.accumulatedMS / e.stepMS
		e.accumulatedMS %= e.stepMS
	} else {
		e.accumulatedMS = 0
	}
	taken := 0
	for ; taken < steps && !e.gameOver; taken++ {
		e.stats.GravityTicks++
		e.Move(Down)
	}
	e.redraw()
	return taken
}

// HandleKey runs the action bound to key and reports whether the field changed.
func (e *Engine) HandleKey(key Key) bool {
	return e.Do(e.keymap.Lookup(key))
}

// Do runs a single action and reports whether the field changed.
func (e *Engine) Do(a Action) bool {
	var changed bool
	switch a {
	case ActionRotateClockwise:
		changed = e.Rotate(Clockwise)
	case ActionRotateCounterClockwise:
		changed = e.Rotate(CounterClockwise)
	case ActionMoveLeft:
		changed = e.Move(Left)
	case ActionMoveRight:
		changed = e.Move(Right)
	case ActionSoftDrop:
		changed = e.Move(Down)
	case ActionHardDrop:
		changed = e.HardDrop()
	}
	if changed {
		e.redraw()
	}
	return changed
}

// Update runs one host frame: a newly pressed key is handled first, then
// the clock's elapsed time is applied.
func (e *Engine) Update(in Input, clock Clock) {
	if in != nil {
		if key, pressed := in.ReadKey(); pressed {
			e.HandleKey(key)
		}
	}
	if clock != nil {
		e.Advance(clock.ElapsedMS())
	}
}

// Render draws every cell, row by row from the spawn row down.
func (e *Engine) Render(s Surface) {
	for y := range e.grid.Height() {
		for x := range e.grid.Width() {
			s.DrawFilledCell(x, y, e.palette.Color(e.grid.At(x, y)))
		}
	}
}

// stamp writes the figure into every empty cell it covers.
func (e *Engine) stamp() {
	for x := range FigureSize {
		for y := range FigureSize {
			if !e.figure.Cells[x][y] {
				continue
			}
			fx, fy := e.figure.X+x, e.figure.Y+y
			if e.grid.Contains(fx, fy) && e.grid.At(fx, fy) == Empty {
				e.grid.Set(fx, fy, Brick)
			}
		}
	}
}

func (e *Engine) fits(m Mask) bool {
	for x := range FigureSize {
		for y := range FigureSize {
			if !m[x][y] {
				continue
			}
			fx, fy := e.figure.X+x, e.figure.Y+y
			if !e.grid.Contains(fx, fy) || e.grid.At(fx, fy) != Empty {
				return false
			}
		}
	}
	return true
}

func (e *Engine) overlapsWall() bool {
	for x := range FigureSize {
		for y := range FigureSize {
			if e.figure.Cells[x][y] && e.grid.At(e.figure.X+x, e.figure.Y+y) == Wall {
				return true
			}
		}
	}
	return false
}

func (e *Engine) redraw() {
	if e.onRedraw != nil {
		e.onRedraw()
	}
}
