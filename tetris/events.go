package tetris

// Event is something the game reports to its owner. Events are buffered in
// emission order until drained with Game.Events.
type Event interface {
	event()
}

// ScoreChanged carries the score after a sweep, a reset or a restart.
type ScoreChanged struct {
	Score int
}

// LinesCleared is emitted when a sweep removes at least one row.
type LinesCleared struct {
	Lines  int
	Points int
}

// PieceLocked is emitted when the current piece merges into the arena.
type PieceLocked struct {
	Shape ShapeID
	X, Y  int
}

// GameOver is emitted when a freshly promoted piece collides at its spawn
// position. Score is the final score of the round that just ended.
type GameOver struct {
	Score int
}

func (ScoreChanged) event() {}
func (LinesCleared) event() {}
func (PieceLocked) event()  {}
func (GameOver) event()     {}
