package session

import "github.com/plus3/blockfall/tetris"

// DefaultInputBuffer is the queue capacity used by New.
const DefaultInputBuffer = 64

// InputQueue carries player actions from an input goroutine to the goroutine
// running the scheduler. It is safe for concurrent use.
type InputQueue struct {
	actions chan tetris.Action
}

func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultInputBuffer
	}
	return &InputQueue{actions: make(chan tetris.Action, size)}
}

// Push queues an action without blocking. It returns false, dropping the
// action, when the queue is full.
func (q *InputQueue) Push(action tetris.Action) bool {
	select {
	case q.actions <- action:
		return true
	default:
		return false
	}
}

// Drain hands every action queued at the time of the call to fn, in order,
// and returns how many there were.
func (q *InputQueue) Drain(fn func(tetris.Action)) int {
	n := len(q.actions)
	for i := 0; i < n; i++ {
		fn(<-q.actions)
	}
	return n
}

func (q *InputQueue) Len() int {
	return len(q.actions)
}
