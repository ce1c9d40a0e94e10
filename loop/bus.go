package loop

import (
	"reflect"
	"sync"
)

type queuedEvent struct {
	typ   reflect.Type
	event any
}

// Bus is a double-buffered event bus. Events emitted during frame N are
// delivered during frame N+1, after SwapBuffers. Delivery keeps emission
// order across event types. Emitting and dispatching belong to the frame
// goroutine; Subscribe may be called from anywhere, including a handler.
type Bus struct {
	mu       sync.Mutex // guards handlers
	front    []queuedEvent
	back     []queuedEvent
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, queuedEvent{typ: typeOf[T](), event: event})
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := typeOf[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers makes the events emitted so far deliverable and starts an
// empty back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// DispatchAll delivers every front-buffer event to its handlers. Events a
// handler emits land in the back buffer.
func (b *Bus) DispatchAll() {
	for _, q := range b.front {
		for _, h := range b.handlersFor(q.typ) {
			h(q.event)
		}
	}
	b.front = b.front[:0]
}

// handlersFor returns the handlers registered for typ. The lock is released
// before they run so a handler can subscribe.
func (b *Bus) handlersFor(typ reflect.Type) []func(any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handlers[typ]
}

// Pending returns the number of events waiting for the next swap.
func (b *Bus) Pending() int {
	return len(b.back)
}
