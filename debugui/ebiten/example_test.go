package ebiten_test

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/debugui"
	debugui_ebiten "github.com/plus3/fieldtris/debugui/ebiten"
	"github.com/plus3/fieldtris/session"
)

type Game struct {
	session *session.Session
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// systems that build windows must run between BeginFrame and EndFrame
	g.backend.BeginFrame()
	g.session.Step(time.Second / 60)
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Field Debug", 1280, 720)

	overlay := &debugui.ImguiSystem{}
	s, err := session.New(config.Default(), nil, session.WithSystems(overlay))
	if err != nil {
		panic(err)
	}

	overlay.Add(debugui.NewFieldInspector(s.Engine).Render)
	overlay.Add(func() {
		imgui.Begin("Hello")
		imgui.Text("frames are scheduled by the session")
		imgui.End()
	})

	if err := ebiten.RunGame(&Game{session: s, backend: backend}); err != nil {
		panic(err)
	}
}
