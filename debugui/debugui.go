// Package debugui provides a Dear ImGui overlay for inspecting a running
// field engine and the frame scheduler driving it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fieldtris/frame"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts check it before handing keys to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState ImguiInputState
}

// Add registers an item and returns it.
func (i *ImguiSystem) Add(render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	i.Items = append(i.Items, item)
	return item
}

func (i *ImguiSystem) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			f.Commands.Defer(item.Render)
		}
	}
}
