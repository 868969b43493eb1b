package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fieldtris/field"
)

// FieldInspector shows the falling figure, the gravity clock and the engine counters.
type FieldInspector struct {
	engine *field.Engine
}

func NewFieldInspector(engine *field.Engine) *FieldInspector {
	return &FieldInspector{engine: engine}
}

func (fi *FieldInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 380), imgui.CondOnce)

	if !imgui.BeginV("Field", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	e := fi.engine
	if e.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	fig := e.Figure()
	catalog := e.Catalog()
	name := "?"
	if fig.Shape >= 0 && fig.Shape < len(catalog) {
		name = catalog[fig.Shape].Name
	}
	imgui.Text(fmt.Sprintf("Field: %dx%d", e.Width(), e.Height()))
	imgui.Text(fmt.Sprintf("Figure: %s at (%d, %d)", name, fig.X, fig.Y))
	imgui.Text(fig.Cells.String())

	imgui.Separator()
	step := e.StepMS()
	if step > 0 {
		progress := float32(e.AccumulatedMS()) / float32(step)
		imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d ms", e.AccumulatedMS(), step))
	}

	stats := e.Stats()
	imgui.Text(fmt.Sprintf("Spawns: %d", stats.Spawns))
	imgui.Text(fmt.Sprintf("Landings: %d", stats.Landings))
	imgui.Text(fmt.Sprintf("Gravity ticks: %d", stats.GravityTicks))
	imgui.Text(fmt.Sprintf("Rejected rotations: %d", stats.RejectedRotations))
	imgui.Text(fmt.Sprintf("Degraded spawns: %d", stats.DegradedSpawns))

	imgui.Separator()
	if imgui.Button("Reset") {
		e.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		e.Do(field.ActionHardDrop)
	}

	imgui.End()
}
