// Package gui is the windowed front-end, built on ebiten.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
)

const (
	DefaultTileSize = 30
	BannerDuration  = 2 * time.Second

	// panelTiles is the width of the side panel, in tiles.
	panelTiles = 6
	margin     = 10
)

var Palette = [tetris.ShapeCount + 1]color.RGBA{
	{0, 0, 0, 0},
	{0, 255, 255, 255}, // I cyan
	{0, 0, 255, 255},   // J blue
	{255, 165, 0, 255}, // L orange
	{255, 255, 0, 255}, // O yellow
	{0, 255, 0, 255},   // S lime
	{128, 0, 128, 255}, // T purple
	{255, 0, 0, 255},   // Z red
}

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	arenaColor      = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{40, 40, 48, 255}
	outlineColor    = color.RGBA{255, 255, 255, 90}
	bannerColor     = color.RGBA{160, 0, 0, 220}
)

// View keeps the latest snapshot and draws it. It implements
// session.Renderer and session.Display.
type View struct {
	tileSize int
	now      func() time.Time

	snap        tetris.Snapshot
	score       int
	bannerScore int
	bannerUntil time.Time
}

func NewView(tileSize int) *View {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &View{tileSize: tileSize, now: time.Now}
}

func (v *View) Render(snap tetris.Snapshot) {
	v.snap = snap
}

func (v *View) ShowScore(score int) {
	v.score = score
}

func (v *View) ShowGameOver(score int) {
	v.bannerScore = score
	v.bannerUntil = v.now().Add(BannerDuration)
}

// ScreenSize is the window size needed for an arena of w by h cells.
func (v *View) ScreenSize(w, h int) (int, int) {
	return (w+panelTiles)*v.tileSize + 3*margin, h*v.tileSize + 2*margin
}

// tileRect returns the top-left corner and side of the tile at column x,
// row y.
func (v *View) tileRect(x, y int) (float32, float32, float32) {
	ts := float32(v.tileSize)
	return margin + float32(x)*ts, margin + float32(y)*ts, ts
}

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := v.snap
	if snap.Width == 0 {
		return
	}

	ts := float32(v.tileSize)
	vector.DrawFilledRect(screen, margin, margin, float32(snap.Width)*ts, float32(snap.Height)*ts, arenaColor, false)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			px, py, side := v.tileRect(x, y)
			id := snap.At(x, y)
			if id == tetris.Empty {
				vector.StrokeRect(screen, px, py, side, side, 1, gridColor, false)
				continue
			}
			v.drawTile(screen, px, py, side, id)
		}
	}

	panelX := margin*2 + float32(snap.Width)*ts
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", v.score), int(panelX), margin)
	ebitenutil.DebugPrintAt(screen, "NEXT", int(panelX), margin+3*v.tileSize/2)

	for row, cells := range snap.Next.Matrix {
		for col, c := range cells {
			if c == tetris.Empty {
				continue
			}
			px := panelX + float32(col)*ts
			py := float32(margin+2*v.tileSize) + float32(row)*ts
			v.drawTile(screen, px, py, ts, snap.Next.Color)
		}
	}

	stats := fmt.Sprintf("LINES %d\nBEST  %d\nROUND %d", snap.Totals.Lines, snap.Totals.BestScore, snap.Totals.Rounds)
	ebitenutil.DebugPrintAt(screen, stats, int(panelX), margin+7*v.tileSize)

	if v.now().Before(v.bannerUntil) {
		by := margin + float32(snap.Height)*ts/2 - ts
		vector.DrawFilledRect(screen, margin, by, float32(snap.Width)*ts, 2*ts, bannerColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER\nscore %d", v.bannerScore), margin+v.tileSize/2, int(by)+v.tileSize/2)
	}
}

func (v *View) drawTile(screen *ebiten.Image, x, y, side float32, id tetris.ShapeID) {
	vector.DrawFilledRect(screen, x, y, side, side, Palette[id], false)
	vector.StrokeRect(screen, x, y, side, side, 1, outlineColor, false)
}
