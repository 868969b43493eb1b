// Package session assembles an engine and the per-frame systems that drive
// it from a host's input, clock and drawing surface.
package session

import (
	"fmt"
	"time"

	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/field"
	"github.com/plus3/fieldtris/frame"
)

// Session is one running game.
type Session struct {
	Engine    *field.Engine
	Scheduler *frame.Scheduler

	dirty bool
}

// Option adjusts a session while it is being built.
type Option func(*options)

type options struct {
	surface field.Surface
	present func()
	source  field.Source
	systems []frame.System
}

// WithSurface registers a RenderSystem drawing onto surface each frame the
// field changed, followed by present when it is not nil.
func WithSurface(surface field.Surface, present func()) Option {
	return func(o *options) {
		o.surface = surface
		o.present = present
	}
}

// WithSource overrides the figure generator chosen by the config.
func WithSource(src field.Source) Option {
	return func(o *options) { o.source = src }
}

// WithSystems registers extra systems after the game's own.
func WithSystems(systems ...frame.System) Option {
	return func(o *options) { o.systems = append(o.systems, systems...) }
}

// New builds a session from cfg reading keys from input.
func New(cfg config.Config, input field.Input, opts ...Option) (*Session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	if o.source != nil {
		engineOpts.Source = o.source
	}

	s := &Session{dirty: true}
	engineOpts.OnRedraw = s.markDirty

	s.Engine, err = field.New(engineOpts)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	s.Scheduler = frame.NewScheduler()
	s.Scheduler.Register(&InputSystem{Engine: s.Engine, Input: input})
	s.Scheduler.Register(&GravitySystem{Engine: s.Engine})
	if o.surface != nil {
		s.Scheduler.Register(&RenderSystem{Session: s, Surface: o.surface, Present: o.present})
	}
	for _, system := range o.systems {
		s.Scheduler.Register(system)
	}
	return s, nil
}

// Step runs one frame.
func (s *Session) Step(elapsed time.Duration) {
	s.Scheduler.Once(elapsed)
}

// Reset starts a new game on the same session.
func (s *Session) Reset() {
	s.Engine.Reset()
}

// Dirty reports whether the field changed since it was last rendered.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Render draws the field onto surface and clears the dirty flag.
func (s *Session) Render(surface field.Surface) {
	s.Engine.Render(surface)
	s.dirty = false
}

func (s *Session) markDirty() {
	s.dirty = true
}
