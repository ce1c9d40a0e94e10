// Package debugui provides a Dear ImGui debug overlay for blockfall sessions.
// Panels are submitted by a scheduler system so that they see the same frame
// the game does.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// Items is the list of panels drawn each frame.
type Items struct {
	List []Item
}

func (i *Items) Add(render func()) {
	i.List = append(i.List, Item{Render: render})
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// PanelSystem updates InputState and defers every item's render function to
// the end of the frame.
type PanelSystem struct {
	Items      loop.Resource[Items]
	InputState loop.Resource[InputState]
}

func (p *PanelSystem) Execute(frame *loop.UpdateFrame) {
	state := p.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range p.Items.Get().List {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the standard panels to s: scheduler performance and the game
// inspector.
func Install(s *session.Session) *Items {
	resources := s.Scheduler.Resources()
	items := loop.NewResource[Items](resources).Get()
	loop.NewResource[InputState](resources)

	perf := NewPerformanceStats(120)
	inspector := NewInspector(s)
	items.Add(func() { perf.Render(s.Scheduler.GetStats()) })
	items.Add(inspector.Render)

	s.Scheduler.Register(&PanelSystem{})
	return items
}
