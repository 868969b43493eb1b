package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/debugui"
	debugui_ebiten "github.com/plus3/fieldtris/debugui/ebiten"
	"github.com/plus3/fieldtris/session"
)

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}

// Game implements ebiten.Game on top of a session.
type Game struct {
	cfg     config.Config
	session *session.Session
	keys    *session.KeyQueue
	pressed []ebiten.Key

	board   *ebiten.Image
	surface *boardSurface

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	if g.overlay == nil || !g.overlay.InputState.WantCaptureKeyboard {
		g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
		for _, k := range g.pressed {
			if key, ok := translateKey(k); ok {
				g.keys.Push(key)
			}
		}
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}
	g.session.Step(time.Second / time.Duration(ebiten.TPS()))
	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.board == nil {
		g.surface = newBoardSurface(g.cfg)
		g.board = g.surface.image
	}
	if g.session.Dirty() {
		g.surface.clear()
		g.session.Render(g.surface)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.surface.offsetX), 0)
	screen.DrawImage(g.board, op)

	engine := g.session.Engine
	textX := g.surface.offsetX + g.board.Bounds().Dx() + 16
	ebitenutil.DebugPrintAt(screen, "W/G  rotate cw\nH    rotate ccw\nA/D  move\nS    drop one\nSPC  drop\nR    restart", textX, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("figures %d", engine.Stats().Spawns), textX, 120)
	if engine.GameOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", textX, 140)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}
