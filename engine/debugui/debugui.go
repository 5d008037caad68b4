// Package debugui renders Dear ImGui debug windows over a running engine.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/engine"
)

// Panel renders one ImGui window. Render runs after every other system of
// the frame has executed.
type Panel interface {
	Render(frame *engine.UpdateFrame)
}

// ImguiInputState tracks whether Dear ImGui is consuming input. Hosts use it
// to keep game keys from firing while a widget has focus.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers each panel's Render.
type ImguiSystem struct {
	Panels     []Panel
	InputState engine.Slot[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	i.InputState.Set(ImguiInputState{
		WantCaptureMouse:    imgui.CurrentIO().WantCaptureMouse(),
		WantCaptureKeyboard: imgui.CurrentIO().WantCaptureKeyboard(),
	})

	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(frame)
		})
	}
}
