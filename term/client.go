package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// Client turns terminal events into queued game actions.
type Client struct {
	screen tcell.Screen
	keys   *Keymap
	input  *session.InputQueue
	log    *zap.Logger
}

func NewClient(screen tcell.Screen, keys *Keymap, input *session.InputQueue, log *zap.Logger) *Client {
	if keys == nil {
		keys = DefaultKeymap()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{screen: screen, keys: keys, input: input, log: log}
}

// Poll reads screen events until a quit key is pressed, ctx is done or the
// screen is finalized. A quit key calls cancel. Poll blocks and is meant to
// run on its own goroutine.
func (c *Client) Poll(ctx context.Context, cancel context.CancelFunc) {
	for ctx.Err() == nil {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			binding, ok := c.keys.Lookup(ev)
			if !ok {
				continue
			}
			if binding.Quit {
				c.log.Info("quit requested")
				cancel()
				return
			}
			if binding.Action == tetris.ActionNone {
				continue
			}
			if !c.input.Push(binding.Action) {
				c.log.Debug("input queue full, action dropped", zap.Stringer("action", binding.Action))
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}
