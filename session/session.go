// Package session runs a tetris.Game on a loop.Scheduler.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Renderer presents a frame. It is called on the scheduler goroutine.
type Renderer interface {
	Render(snap tetris.Snapshot)
}

// Display shows score changes and the end of a round.
type Display interface {
	ShowScore(score int)
	ShowGameOver(score int)
}

type Session struct {
	Game      *tetris.Game
	Input     *InputQueue
	Bus       *loop.Bus
	Scheduler *loop.Scheduler

	inputs *InputSystem
	log    *zap.Logger
}

// New wires game into a scheduler running, in order, event dispatch, input,
// gravity, event publication and rendering. renderer may be nil.
func New(game *tetris.Game, renderer Renderer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	resources := loop.NewResources()
	input := NewInputQueue(DefaultInputBuffer)
	bus := loop.NewBus()
	loop.Provide(resources, game)
	loop.Provide(resources, input)
	loop.Provide(resources, bus)

	s := &Session{
		Game:      game,
		Input:     input,
		Bus:       bus,
		Scheduler: loop.NewScheduler(resources),
		inputs:    &InputSystem{},
		log:       log,
	}

	s.Scheduler.Register(&DispatchSystem{})
	s.Scheduler.Register(s.inputs)
	s.Scheduler.Register(&GravitySystem{})
	s.Scheduler.Register(&EventSystem{})
	s.Scheduler.Register(&RenderSystem{Renderer: renderer})

	loop.Subscribe(bus, func(ev tetris.GameOver) {
		log.Info("game over", zap.Int("score", ev.Score), zap.Int("best", game.Totals().BestScore))
	})
	loop.Subscribe(bus, func(ev tetris.LinesCleared) {
		log.Debug("lines cleared", zap.Int("lines", ev.Lines), zap.Int("points", ev.Points))
	})

	return s
}

// Attach subscribes d to score changes and game-over events.
func (s *Session) Attach(d Display) {
	loop.Subscribe(s.Bus, func(ev tetris.ScoreChanged) { d.ShowScore(ev.Score) })
	loop.Subscribe(s.Bus, func(ev tetris.GameOver) { d.ShowGameOver(ev.Score) })
}

// Step runs a single frame of dt seconds.
func (s *Session) Step(dt float64) {
	s.Scheduler.Once(dt)
}

// Run steps the session at interval until ctx is done.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.log.Info("session started",
		zap.Int("width", s.Game.Arena().Width()),
		zap.Int("height", s.Game.Arena().Height()),
		zap.Duration("drop_interval", s.Game.DropInterval()),
		zap.Duration("frame_interval", interval))

	s.Scheduler.Run(ctx, interval)

	stats := s.Scheduler.GetStats()
	s.log.Info("session stopped",
		zap.Int64("frames", stats.Frames),
		zap.Int64("inputs", s.inputs.Applied),
		zap.Int("best_score", s.Game.Totals().BestScore))
}

// Inputs returns the number of actions applied so far.
func (s *Session) Inputs() int64 {
	return s.inputs.Applied
}
