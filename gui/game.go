package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/session"
)

// Overlay is drawn on top of the game, such as a debug UI. Its frame spans
// the session step so that systems can submit widgets.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game. Each Update reads the keyboard into the input
// queue and steps the session by one tick.
type Game struct {
	session *session.Session
	view    *View
	keys    *Keymap
	overlay Overlay
	log     *zap.Logger
}

func NewGame(s *session.Session, view *View, keys *Keymap, log *zap.Logger) *Game {
	if keys == nil {
		keys = DefaultKeymap()
	}
	if log == nil {
		log = zap.NewNop()
	}
	s.Attach(view)
	return &Game{session: s, view: view, keys: keys, log: log}
}

// SetOverlay installs o, or removes the overlay when o is nil.
func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
}

func (g *Game) Update() error {
	for _, key := range g.keys.Keys() {
		b, _ := g.keys.Lookup(key)
		if !fires(b, inpututil.KeyPressDuration(key)) {
			continue
		}
		if b.Quit {
			g.log.Info("quit requested")
			return ebiten.Termination
		}
		if !g.session.Input.Push(b.Action) {
			g.log.Debug("input queue full, action dropped", zap.Stringer("action", b.Action))
		}
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.session.Step(1.0 / float64(ebiten.TPS()))

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
