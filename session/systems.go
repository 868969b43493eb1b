package session

import (
	"time"

	"github.com/plus3/fieldtris/field"
	"github.com/plus3/fieldtris/frame"
)

// InputSystem hands a newly pressed key to the engine.
type InputSystem struct {
	Engine *field.Engine
	Input  field.Input
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	if s.Input == nil {
		return
	}
	if key, pressed := s.Input.ReadKey(); pressed {
		s.Engine.HandleKey(key)
	}
}

// GravitySystem feeds frame time to the engine in whole milliseconds,
// carrying the sub-millisecond remainder to the next frame.
type GravitySystem struct {
	Engine *field.Engine
	carry  time.Duration
}

func (s *GravitySystem) Execute(f *frame.UpdateFrame) {
	elapsed := f.Elapsed + s.carry
	ms := elapsed.Milliseconds()
	s.carry = elapsed - time.Duration(ms)*time.Millisecond
	s.Engine.Advance(int(ms))
}

// RenderSystem draws the field when the engine asked for a redraw.
type RenderSystem struct {
	Session *Session
	Surface field.Surface
	// Present is called after the field was drawn.
	Present func()
}

func (s *RenderSystem) Execute(f *frame.UpdateFrame) {
	if !s.Session.Dirty() {
		return
	}
	s.Session.Render(s.Surface)
	if s.Present != nil {
		s.Present()
	}
}
