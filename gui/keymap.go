package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/tetris"
)

// Ticks before a held key starts repeating, and between repeats.
const (
	RepeatDelay    = 12
	RepeatInterval = 4
)

type Binding struct {
	Action tetris.Action
	Quit   bool
	// Repeat makes the action fire again while the key is held.
	Repeat bool
}

type Keymap struct {
	bindings *intmap.Map[ebiten.Key, Binding]
	keys     []ebiten.Key
}

func NewKeymap() *Keymap {
	return &Keymap{bindings: intmap.New[ebiten.Key, Binding](16)}
}

func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(ebiten.KeyArrowLeft, Binding{Action: tetris.ActionMoveLeft, Repeat: true})
	k.Bind(ebiten.KeyArrowRight, Binding{Action: tetris.ActionMoveRight, Repeat: true})
	k.Bind(ebiten.KeyArrowDown, Binding{Action: tetris.ActionSoftDrop, Repeat: true})
	k.Bind(ebiten.KeyArrowUp, Binding{Action: tetris.ActionRotate})
	k.Bind(ebiten.KeySpace, Binding{Action: tetris.ActionRotate})
	k.Bind(ebiten.KeyR, Binding{Action: tetris.ActionRestart})
	k.Bind(ebiten.KeyQ, Binding{Quit: true})
	k.Bind(ebiten.KeyEscape, Binding{Quit: true})
	return k
}

func (k *Keymap) Bind(key ebiten.Key, b Binding) {
	if _, ok := k.bindings.Get(key); !ok {
		k.keys = append(k.keys, key)
	}
	k.bindings.Put(key, b)
}

func (k *Keymap) Lookup(key ebiten.Key) (Binding, bool) {
	return k.bindings.Get(key)
}

// Keys returns the bound keys in binding order.
func (k *Keymap) Keys() []ebiten.Key {
	return k.keys
}

// fires reports whether a key held for the given number of ticks triggers
// its binding this tick.
func fires(b Binding, ticks int) bool {
	if ticks == 1 {
		return true
	}
	if !b.Repeat || ticks < RepeatDelay {
		return false
	}
	return (ticks-RepeatDelay)%RepeatInterval == 0
}
