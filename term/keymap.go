package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/tetris"
)

// Binding is what a key does: either a game action or quitting the client.
type Binding struct {
	Action tetris.Action
	Quit   bool
}

// Keymap resolves terminal key events to bindings. Special keys and printable
// runes are kept in separate tables since tcell reports them differently.
type Keymap struct {
	keys  *intmap.Map[tcell.Key, Binding]
	runes *intmap.Map[rune, Binding]
}

func NewKeymap() *Keymap {
	return &Keymap{
		keys:  intmap.New[tcell.Key, Binding](16),
		runes: intmap.New[rune, Binding](16),
	}
}

// DefaultKeymap binds the arrow keys and space to the game, q and Esc to
// quit and r to restart.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.BindKey(tcell.KeyLeft, Binding{Action: tetris.ActionMoveLeft})
	k.BindKey(tcell.KeyRight, Binding{Action: tetris.ActionMoveRight})
	k.BindKey(tcell.KeyDown, Binding{Action: tetris.ActionSoftDrop})
	k.BindKey(tcell.KeyUp, Binding{Action: tetris.ActionRotate})
	k.BindRune(' ', Binding{Action: tetris.ActionRotate})

	k.BindKey(tcell.KeyEscape, Binding{Quit: true})
	k.BindKey(tcell.KeyCtrlC, Binding{Quit: true})
	k.BindRune('q', Binding{Quit: true})
	k.BindRune('Q', Binding{Quit: true})
	k.BindRune('r', Binding{Action: tetris.ActionRestart})
	k.BindRune('R', Binding{Action: tetris.ActionRestart})
	return k
}

func (k *Keymap) BindKey(key tcell.Key, b Binding) {
	k.keys.Put(key, b)
}

func (k *Keymap) BindRune(r rune, b Binding) {
	k.runes.Put(r, b)
}

func (k *Keymap) UnbindRune(r rune) {
	k.runes.Del(r)
}

// Lookup returns the binding for ev, if any.
func (k *Keymap) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		return k.runes.Get(ev.Rune())
	}
	return k.keys.Get(ev.Key())
}

// Len returns the number of bound keys and runes.
func (k *Keymap) Len() int {
	return k.keys.Len() + k.runes.Len()
}
