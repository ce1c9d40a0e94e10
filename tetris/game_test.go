package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(Options{Seed: 42})
	require.Equal(t, []Event{ScoreChanged{Score: 0}}, g.Events())
	return g
}

func dropUntilLocked(t *testing.T, g *Game) int {
	t.Helper()
	for n := 1; n <= g.Arena().Height()+1; n++ {
		if g.Drop() {
			return n
		}
	}
	t.Fatal("piece never locked")
	return 0
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, DefaultWidth, g.Arena().Width())
	assert.Equal(t, DefaultHeight, g.Arena().Height())
	assert.Equal(t, DefaultDropInterval, g.DropInterval())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Arena().Filled())
	assert.Equal(t, 1, g.Totals().Rounds)

	for _, p := range []Piece{g.Current(), g.Next()} {
		assert.True(t, p.Color.Valid())
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, Shape(p.Color), p.Matrix)
	}
}

func TestSeedDeterminesSequence(t *testing.T) {
	a := NewGame(Options{Seed: 7})
	b := NewGame(Options{Seed: 7})

	for range 50 {
		require.Equal(t, a.Current().Color, b.Current().Color)
		require.Equal(t, a.Next().Color, b.Next().Color)
		a.Reset()
		b.Reset()
	}
}

func TestDropOnEmptyArenaLocksAtBottom(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeI, g.width)
	next := g.Next()

	locked := dropUntilLocked(t, g)

	assert.Equal(t, 17, locked)
	for y := 16; y < 20; y++ {
		assert.Equal(t, ShapeI, g.Arena().Cell(4, y), "row %d", y)
	}
	assert.Equal(t, 4, g.Arena().Filled())

	assert.Equal(t, next, g.Current(), "next piece is promoted")
	assert.Equal(t, 0, g.Current().Y)
	assert.Equal(t, []Event{
		PieceLocked{Shape: ShapeI, X: 3, Y: 16},
		ScoreChanged{Score: 0},
	}, g.Events())

	g.Drop()
	g.Drop()
	assert.Equal(t, 2, g.Current().Y)
	assert.Empty(t, g.Events())
}

func TestDropClearsLinesAndScores(t *testing.T) {
	g := newTestGame(t)
	for y := 16; y < 20; y++ {
		fillRow(g.arena, y, ShapeO)
		g.arena.Set(4, y, Empty)
	}
	g.current = NewPiece(ShapeI, g.width)

	dropUntilLocked(t, g)

	assert.Equal(t, 150, g.Score())
	assert.Zero(t, g.Arena().Filled())
	assert.Equal(t, Totals{Rounds: 1, Pieces: 1, Lines: 4, BestScore: 150}, g.Totals())
	assert.Equal(t, []Event{
		PieceLocked{Shape: ShapeI, X: 3, Y: 16},
		LinesCleared{Lines: 4, Points: 150},
		ScoreChanged{Score: 150},
		ScoreChanged{Score: 150},
	}, g.Events())
}

func TestResetOnStackedArenaEndsRound(t *testing.T) {
	g := newTestGame(t)
	for y := range 4 {
		fillRow(g.arena, y, ShapeJ)
	}
	g.score = 120

	g.Reset()

	assert.Zero(t, g.Score())
	assert.Zero(t, g.Arena().Filled())
	assert.Equal(t, 2, g.Totals().Rounds)
	assert.Equal(t, []Event{
		GameOver{Score: 120},
		ScoreChanged{Score: 0},
	}, g.Events())
}

func TestDropIntoStackedArenaEndsRound(t *testing.T) {
	g := newTestGame(t)
	for y := 2; y < 20; y++ {
		fillRow(g.arena, y, ShapeZ)
		g.arena.Set(0, y, Empty)
	}
	g.current = NewPiece(ShapeO, g.width)
	g.score = 70

	require.True(t, g.Drop())

	events := g.Events()
	require.Len(t, events, 3)
	assert.Equal(t, PieceLocked{Shape: ShapeO, X: 3, Y: 0}, events[0])
	assert.Equal(t, GameOver{Score: 70}, events[1])
	assert.Equal(t, ScoreChanged{Score: 0}, events[2])
	assert.Zero(t, g.Arena().Filled())
	assert.Zero(t, g.Score())
}

func TestMove(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeO, g.width)

	assert.True(t, g.Move(-1))
	assert.Equal(t, 2, g.Current().X)

	for g.Move(-1) {
	}
	assert.Equal(t, 0, g.Current().X)

	for g.Move(1) {
	}
	assert.Equal(t, 8, g.Current().X)
	assert.False(t, g.Move(1))
	assert.Equal(t, 8, g.Current().X)
}

func TestMoveBlockedByLockedCells(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeO, g.width)
	g.arena.Set(2, 1, ShapeT)

	assert.False(t, g.Move(-1))
	assert.Equal(t, 3, g.Current().X)
}

func TestRotateInOpenSpace(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeT, g.width)
	want := Shape(ShapeT)
	want.Rotate(true)

	assert.True(t, g.Rotate())
	assert.Equal(t, want, g.Current().Matrix)
	assert.Equal(t, 3, g.Current().X)
}

func TestRotateKicksOffWalls(t *testing.T) {
	horizontal := Shape(ShapeI)
	horizontal.Rotate(true)

	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		{"left wall", -1, 0},
		{"near right wall", 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.current = NewPiece(ShapeI, g.width)
			g.current.X, g.current.Y = tt.x, 5
			require.False(t, Collides(g.arena, &g.current))

			assert.True(t, g.Rotate())
			assert.Equal(t, tt.wantX, g.Current().X)
			assert.Equal(t, horizontal, g.Current().Matrix)
			assert.False(t, Collides(g.arena, &g.current))
		})
	}
}

// A vertical I flush against the right wall only fits two columns left,
// which is the untested last kick, so the rotation is refused.
func TestRotateFlushRightWallReverts(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeI, g.width)
	g.current.X, g.current.Y = 8, 5
	require.False(t, Collides(g.arena, &g.current))
	before := g.Current()

	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Current())
}

func TestRotateKickSequence(t *testing.T) {
	// A lone cell at the matrix origin turns into column 3 of row 0, so the
	// rotated cell lands at column X+3.
	var lone Matrix
	lone[0][0] = ShapeT
	rotated := lone
	rotated.Rotate(true)

	tests := []struct {
		name    string
		blocked []int
		wantOK  bool
		wantX   int
	}{
		{"no kick", nil, true, 2},
		{"kick right", []int{5}, true, 3},
		{"kick left", []int{5, 6}, true, 1},
		{"kick right twice", []int{4, 5, 6}, true, 4},
		{"last kick is not tried", []int{4, 5, 6, 7}, false, 2},
		{"all blocked", []int{3, 4, 5, 6, 7}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.current = Piece{X: 2, Y: 5, Matrix: lone, Color: ShapeT}
			for _, x := range tt.blocked {
				g.arena.Set(x, 5, ShapeZ)
			}
			require.False(t, Collides(g.arena, &g.current))

			assert.Equal(t, tt.wantOK, g.Rotate())
			assert.Equal(t, tt.wantX, g.Current().X)
			if tt.wantOK {
				assert.Equal(t, rotated, g.Current().Matrix)
				assert.False(t, Collides(g.arena, &g.current))
			} else {
				assert.Equal(t, lone, g.Current().Matrix)
			}
		})
	}
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	g := newTestGame(t)
	for y := 16; y < 20; y++ {
		fillRow(g.arena, y, ShapeL)
		g.arena.Set(4, y, Empty)
	}
	g.current = NewPiece(ShapeI, g.width)
	g.current.Y = 16
	before := g.Current()

	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Current())
	assert.False(t, Collides(g.arena, &g.current))
}

func TestTick(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeT, g.width)

	g.Tick(999 * time.Millisecond)
	assert.Equal(t, 0, g.Current().Y)

	g.Tick(time.Millisecond)
	assert.Equal(t, 0, g.Current().Y, "drop needs strictly more than the interval")

	g.Tick(time.Millisecond)
	assert.Equal(t, 1, g.Current().Y)

	g.Tick(time.Second)
	assert.Equal(t, 1, g.Current().Y, "counter restarts from zero after a drop")

	g.Tick(time.Millisecond)
	assert.Equal(t, 2, g.Current().Y)
}

func TestApply(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeT, g.width)

	g.Apply(ActionMoveLeft)
	assert.Equal(t, 2, g.Current().X)

	g.Apply(ActionMoveRight)
	g.Apply(ActionMoveRight)
	assert.Equal(t, 4, g.Current().X)

	g.Apply(ActionSoftDrop)
	assert.Equal(t, 1, g.Current().Y)

	g.Apply(ActionRotate)
	assert.NotEqual(t, Shape(ShapeT), g.Current().Matrix)

	before := g.Current()
	g.Apply(ActionNone)
	g.Apply(Action(99))
	assert.Equal(t, before, g.Current())
}

func TestApplyRestart(t *testing.T) {
	g := newTestGame(t)
	fillRow(g.arena, 19, ShapeS)
	g.arena.Set(0, 19, Empty)
	g.score = 30

	g.Apply(ActionRestart)

	assert.Zero(t, g.Score())
	assert.Zero(t, g.Arena().Filled())
	assert.Equal(t, 2, g.Totals().Rounds)
	assert.Equal(t, []Event{ScoreChanged{Score: 0}}, g.Events())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "move-left", ActionMoveLeft.String())
	assert.Equal(t, "rotate", ActionRotate.String())
	assert.Equal(t, "none", Action(99).String())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(ShapeO, g.width)
	g.arena.Set(0, 19, ShapeZ)

	snap := g.Snapshot()

	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, ShapeO, snap.At(3, 0))
	assert.Equal(t, ShapeO, snap.At(4, 1))
	assert.Equal(t, Empty, snap.At(5, 0))
	assert.Equal(t, ShapeZ, snap.At(0, 19))
	assert.Equal(t, Empty, snap.At(-1, 19))
	assert.Equal(t, Empty, snap.At(0, 20))

	snap.Cells[19][0] = Empty
	assert.Equal(t, ShapeZ, g.Arena().Cell(0, 19))
}
