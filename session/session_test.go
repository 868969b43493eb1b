package session_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/field"
	"github.com/plus3/fieldtris/frame"
	"github.com/plus3/fieldtris/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSurface struct {
	cells int
}

func (s *countingSurface) DrawFilledCell(int, int, color.RGBA) { s.cells++ }

func newSession(t *testing.T, input field.Input, opts ...session.Option) *session.Session {
	t.Helper()
	opts = append([]session.Option{session.WithSource(field.NewSequence(1, 0, 0))}, opts...)
	s, err := session.New(config.Default(), input, opts...)
	require.NoError(t, err)
	return s
}

func TestKeyQueue(t *testing.T) {
	q := session.NewKeyQueue(2)
	_, ok := q.ReadKey()
	assert.False(t, ok)

	assert.True(t, q.Push('a'))
	assert.True(t, q.Push('d'))
	assert.False(t, q.Push('s'), "full queue drops")
	assert.Equal(t, 2, q.Pending())

	k, ok := q.ReadKey()
	assert.True(t, ok)
	assert.Equal(t, field.Key('a'), k)
}

func TestSessionInput(t *testing.T) {
	q := session.NewKeyQueue(8)
	s := newSession(t, q)

	q.Push('a')
	q.Push('a')
	s.Step(time.Millisecond)
	assert.Equal(t, 2, s.Engine.Figure().X, "one key per frame")
	s.Step(time.Millisecond)
	assert.Equal(t, 1, s.Engine.Figure().X)
}

func TestSessionGravity(t *testing.T) {
	s := newSession(t, nil)

	// 31 frames of 16.666ms cross 500ms only if the remainder is carried
	for range 31 {
		s.Step(time.Second / 60)
	}
	assert.Equal(t, 1, s.Engine.Figure().Y)
	assert.Equal(t, 1, s.Engine.Stats().GravityTicks)
}

func TestSessionRender(t *testing.T) {
	surface := &countingSurface{}
	presented := 0
	s := newSession(t, nil, session.WithSurface(surface, func() { presented++ }))

	require.True(t, s.Dirty())
	s.Step(time.Millisecond)
	assert.Equal(t, 150, surface.cells)
	assert.Equal(t, 1, presented)
	assert.False(t, s.Dirty())

	s.Step(time.Millisecond)
	assert.Equal(t, 1, presented, "clean field is not redrawn")

	s.Step(500 * time.Millisecond)
	assert.Equal(t, 2, presented)

	s.Reset()
	assert.True(t, s.Dirty())
}

func TestSessionExtraSystems(t *testing.T) {
	var frames []uint64
	s := newSession(t, nil, session.WithSystems(frame.SystemFunc(func(f *frame.UpdateFrame) {
		frames = append(frames, f.Number)
	})))
	s.Step(0)
	s.Step(0)
	assert.Equal(t, []uint64{1, 2}, frames)
	assert.Equal(t, 3, s.Scheduler.Stats().SystemCount)
}

func TestSessionConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Field.Catalog = "unknown"
	_, err := session.New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
