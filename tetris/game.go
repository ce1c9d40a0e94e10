package tetris

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultDropInterval = time.Second
)

// Action is a player request. Unknown actions are ignored by Game.Apply.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotate:
		return "rotate"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

// Options configures a Game. Zero fields take the defaults.
type Options struct {
	Width        int
	Height       int
	DropInterval time.Duration
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64
}

// Totals are lifetime counters across rounds.
type Totals struct {
	Rounds    int
	Pieces    int
	Lines     int
	BestScore int
}

// Game owns the arena, the current and next pieces, and the score. It is not
// safe for concurrent use; a single owner drives it.
type Game struct {
	width        int
	height       int
	dropInterval time.Duration
	dropCounter  time.Duration

	arena   *Arena
	current Piece
	next    Piece
	score   int
	totals  Totals

	rng    *rand.Rand
	events []Event
}

// NewGame creates a game and starts the first round.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.DropInterval <= 0 {
		opts.DropInterval = DefaultDropInterval
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g := &Game{
		width:        opts.Width,
		height:       opts.Height,
		dropInterval: opts.DropInterval,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	g.Start()
	return g
}

// Start begins a new round on an empty arena with a zero score.
func (g *Game) Start() {
	g.arena = NewArena(g.width, g.height)
	g.score = 0
	g.dropCounter = 0
	g.current = g.spawn()
	g.next = g.spawn()
	g.totals.Rounds++
	g.emit(ScoreChanged{Score: g.score})
}

// Reset promotes the next piece and draws a new one. If the promoted piece
// collides where it spawns the round is over: the arena is cleared, GameOver
// reports the final score, and the score drops to zero.
func (g *Game) Reset() {
	g.current = g.next
	g.next = g.spawn()

	if Collides(g.arena, &g.current) {
		g.arena.Clear()
		g.emit(GameOver{Score: g.score})
		g.score = 0
		g.totals.Rounds++
	}

	g.emit(ScoreChanged{Score: g.score})
}

// Drop moves the current piece down one row. When that is blocked the piece
// locks, full rows are swept and the next piece spawns. It reports whether
// the piece locked.
func (g *Game) Drop() bool {
	g.current.Y++
	if !Collides(g.arena, &g.current) {
		return false
	}
	g.current.Y--

	g.arena.Merge(&g.current)
	g.totals.Pieces++
	g.emit(PieceLocked{Shape: g.current.Color, X: g.current.X, Y: g.current.Y})

	lines, points := g.arena.Sweep()
	if lines > 0 {
		g.score += points
		g.totals.Lines += lines
		g.totals.BestScore = max(g.totals.BestScore, g.score)
		g.emit(LinesCleared{Lines: lines, Points: points})
		g.emit(ScoreChanged{Score: g.score})
	}

	g.Reset()
	return true
}

// Move shifts the current piece by dir columns, or not at all if the target
// position collides.
func (g *Game) Move(dir int) bool {
	g.current.X += dir
	if Collides(g.arena, &g.current) {
		g.current.X -= dir
		return false
	}
	return true
}

// Rotate turns the current piece clockwise, kicking it sideways by 1, -2,
// 3, -4 columns in turn while it collides. The search gives up as soon as
// the next kick would exceed MatrixSize, so the last shift is never tested:
// the positions that can stick are x, x+1, x-1 and x+2. If none fits the
// rotation is undone and the piece keeps its original orientation and
// column. It reports whether the rotation stuck.
func (g *Game) Rotate() bool {
	x := g.current.X
	offset := 1
	g.current.Matrix.Rotate(true)

	for Collides(g.arena, &g.current) {
		g.current.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}

		if offset > MatrixSize {
			g.current.Matrix.Rotate(false)
			g.current.X = x
			return false
		}
	}

	return true
}

// Apply performs a player action.
func (g *Game) Apply(action Action) {
	switch action {
	case ActionMoveLeft:
		g.Move(-1)
	case ActionMoveRight:
		g.Move(1)
	case ActionSoftDrop:
		g.Drop()
	case ActionRotate:
		g.Rotate()
	case ActionRestart:
		g.Start()
	}
}

// Tick advances the drop timer. Once more than the drop interval has
// accumulated the piece drops and the timer restarts from zero.
func (g *Game) Tick(elapsed time.Duration) {
	g.dropCounter += elapsed
	if g.dropCounter > g.dropInterval {
		g.Drop()
		g.dropCounter = 0
	}
}

// Events returns the events emitted since the last call and clears the
// buffer.
func (g *Game) Events() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) Arena() *Arena               { return g.arena }
func (g *Game) Current() Piece              { return g.current }
func (g *Game) Next() Piece                 { return g.next }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Totals() Totals              { return g.totals }
func (g *Game) DropInterval() time.Duration { return g.dropInterval }

// Snapshot is a copy of the visible game state for renderers.
type Snapshot struct {
	Width   int
	Height  int
	Cells   [][]ShapeID
	Current Piece
	Next    Piece
	Score   int
	Totals  Totals
}

// Snapshot copies the state a renderer needs. The result shares no memory
// with the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:   g.width,
		Height:  g.height,
		Cells:   g.arena.Rows(),
		Current: g.current,
		Next:    g.next,
		Score:   g.score,
		Totals:  g.totals,
	}
}

// At returns the value shown at column x, row y: the current piece where it
// covers the cell, otherwise the locked arena cell.
func (s Snapshot) At(x, y int) ShapeID {
	r, c := y-s.Current.Y, x-s.Current.X
	if r >= 0 && r < MatrixSize && c >= 0 && c < MatrixSize {
		if v := s.Current.Matrix[r][c]; v != Empty {
			return s.Current.Color
		}
	}
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return Empty
	}
	return s.Cells[y][x]
}

func (g *Game) spawn() Piece {
	return NewPiece(ShapeID(g.rng.IntN(ShapeCount)+1), g.width)
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

