package session

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// DispatchSystem delivers the events published during the previous frame.
type DispatchSystem struct {
	Bus loop.Resource[loop.Bus]
}

func (s *DispatchSystem) Execute(frame *loop.UpdateFrame) {
	bus := s.Bus.Get()
	bus.SwapBuffers()
	bus.DispatchAll()
}

// InputSystem applies queued player actions to the game.
type InputSystem struct {
	Game  loop.Resource[tetris.Game]
	Input loop.Resource[InputQueue]

	Applied int64
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	game := s.Game.Get()
	n := s.Input.Get().Drain(game.Apply)
	s.Applied += int64(n)
}

// GravitySystem advances the drop timer by the frame's delta.
type GravitySystem struct {
	Game loop.Resource[tetris.Game]
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Get().Tick(frame.Elapsed())
}

// EventSystem moves engine events onto the bus.
type EventSystem struct {
	Game loop.Resource[tetris.Game]
	Bus  loop.Resource[loop.Bus]
}

func (s *EventSystem) Execute(frame *loop.UpdateFrame) {
	bus := s.Bus.Get()
	for _, ev := range s.Game.Get().Events() {
		switch ev := ev.(type) {
		case tetris.ScoreChanged:
			loop.Emit(bus, ev)
		case tetris.LinesCleared:
			loop.Emit(bus, ev)
		case tetris.PieceLocked:
			loop.Emit(bus, ev)
		case tetris.GameOver:
			loop.Emit(bus, ev)
		}
	}
}

// RenderSystem presents a snapshot of the game once all other systems have
// run for the frame.
type RenderSystem struct {
	Game     loop.Resource[tetris.Game]
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	if s.Renderer == nil {
		return
	}
	snap := s.Game.Get().Snapshot()
	frame.Commands.Defer(func() {
		s.Renderer.Render(snap)
	})
}
