package main

import (
	"context"
	"fmt"
	"image/color"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/field"
	"github.com/plus3/fieldtris/frame"
	"github.com/plus3/fieldtris/session"
)

// terminal runs a session on a tcell screen. Events are read on their own
// goroutine; everything that touches the engine runs in the frame loop.
type terminal struct {
	screen  tcell.Screen
	session *session.Session
	keys    *session.KeyQueue
	control chan func()
	styles  map[color.RGBA]tcell.Style
}

func newTerminal(cfg config.Config) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.HideCursor()

	t := &terminal{
		screen:  screen,
		keys:    session.NewKeyQueue(16),
		control: make(chan func(), 4),
		styles:  make(map[color.RGBA]tcell.Style),
	}

	t.session, err = session.New(cfg, t.keys,
		session.WithSystems(&controlSystem{control: t.control}),
		session.WithSurface(t, t.present),
	)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

// Run drives frames until ctx is done, then restores the terminal.
func (t *terminal) Run(ctx context.Context, cancel context.CancelFunc, interval time.Duration) {
	defer t.screen.Fini()

	go t.pollEvents(ctx, cancel)
	t.session.Scheduler.Run(ctx, interval)
}

func (t *terminal) pollEvents(ctx context.Context, cancel context.CancelFunc) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.send(ctx, func() {
				t.screen.Clear()
				t.screen.Sync()
				t.session.Render(t)
				t.present()
			})
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				cancel()
				return
			case ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'r':
				t.send(ctx, t.session.Reset)
			default:
				if key, ok := translateKey(ev); ok {
					t.keys.Push(key)
				}
			}
		}
	}
}

func (t *terminal) send(ctx context.Context, fn func()) {
	select {
	case t.control <- fn:
	case <-ctx.Done():
	}
}

// DrawFilledCell paints one field cell as two terminal columns.
func (t *terminal) DrawFilledCell(x, y int, c color.RGBA) {
	style, ok := t.styles[c]
	if !ok {
		style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		t.styles[c] = style
	}
	t.screen.SetContent(2*x+1, y+1, ' ', nil, style)
	t.screen.SetContent(2*x+2, y+1, ' ', nil, style)
}

func (t *terminal) present() {
	engine := t.session.Engine
	x := 2*engine.Width() + 4
	t.drawText(x, 1, "w/g rotate  h rotate back")
	t.drawText(x, 2, "a/d move    s drop one")
	t.drawText(x, 3, "space drop  r restart  esc quit")
	t.drawText(x, 5, fmt.Sprintf("figures %-6d", engine.Stats().Spawns))
	if engine.GameOver() {
		t.drawText(x, 7, "GAME OVER")
	} else {
		t.drawText(x, 7, "         ")
	}
	t.screen.Show()
}

func (t *terminal) drawText(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
}

func translateKey(ev *tcell.EventKey) (field.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return field.KeyUp, true
	case tcell.KeyDown:
		return field.KeyDown, true
	case tcell.KeyLeft:
		return field.KeyLeft, true
	case tcell.KeyRight:
		return field.KeyRight, true
	case tcell.KeyRune:
		return field.Key(unicode.ToLower(ev.Rune())), true
	}
	return field.KeyNone, false
}

// controlSystem runs host requests such as restart or resize inside the frame loop.
type controlSystem struct {
	control <-chan func()
}

func (s *controlSystem) Execute(f *frame.UpdateFrame) {
	for {
		select {
		case fn := <-s.control:
			fn()
		default:
			return
		}
	}
}
