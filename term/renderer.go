// Package term is the terminal front-end: a tcell renderer, key bindings and
// the input polling client.
package term

import (
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

// BannerDuration is how long the game-over banner stays up.
const BannerDuration = 2 * time.Second

const (
	originX    = 1
	originY    = 1
	cellWidth  = 2
	panelSpace = 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	valueStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	bannerStyle = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
)

// Renderer draws snapshots on a tcell screen. Each arena cell takes two
// columns so tiles come out roughly square.
type Renderer struct {
	screen tcell.Screen
	now    func() time.Time

	score       int
	bannerScore int
	bannerUntil time.Time
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, now: time.Now}
}

// ShowScore records the score printed in the side panel.
func (r *Renderer) ShowScore(score int) {
	r.score = score
}

// ShowGameOver raises the game-over banner for BannerDuration.
func (r *Renderer) ShowGameOver(score int) {
	r.bannerScore = score
	r.bannerUntil = r.now().Add(BannerDuration)
}

func (r *Renderer) Render(snap tetris.Snapshot) {
	r.screen.Clear()

	r.drawBorder(snap.Width, snap.Height)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			r.drawTile(arenaX(x), originY+1+y, snap.At(x, y))
		}
	}

	panel := arenaX(snap.Width) + panelSpace
	r.drawText(panel, originY+1, labelStyle, "SCORE")
	r.drawText(panel, originY+2, valueStyle, strconv.Itoa(r.score))
	r.drawText(panel, originY+4, labelStyle, "NEXT")
	for row, cells := range snap.Next.Matrix {
		for col, v := range cells {
			id := tetris.Empty
			if v != tetris.Empty {
				id = snap.Next.Color
			}
			r.drawTile(panel+col*cellWidth, originY+5+row, id)
		}
	}
	r.drawText(panel, originY+10, labelStyle, "LINES")
	r.drawText(panel, originY+11, valueStyle, strconv.Itoa(snap.Totals.Lines))
	r.drawText(panel, originY+13, labelStyle, "BEST")
	r.drawText(panel, originY+14, valueStyle, strconv.Itoa(snap.Totals.BestScore))

	if r.now().Before(r.bannerUntil) {
		r.drawBanner(snap.Width, snap.Height)
	}

	r.screen.Show()
}

func arenaX(x int) int {
	return originX + 1 + x*cellWidth
}

func (r *Renderer) drawBorder(w, h int) {
	left, right := originX, arenaX(w)
	top, bottom := originY, originY+h+1

	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawTile(x, y int, id tetris.ShapeID) {
	style := tileStyle(id)
	for i := range cellWidth {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) drawBanner(w, h int) {
	lines := []string{"GAME OVER", "score " + strconv.Itoa(r.bannerScore)}
	inner := w * cellWidth
	y := originY + 1 + h/2 - 1

	for i, line := range lines {
		if len(line) > inner {
			line = line[:inner]
		}
		pad := (inner - len(line)) / 2
		for x := range inner {
			r.screen.SetContent(arenaX(0)+x, y+i, ' ', nil, bannerStyle)
		}
		r.drawText(arenaX(0)+pad, y+i, bannerStyle, line)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
